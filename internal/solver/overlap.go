// apps/go-solver/internal/solver/overlap.go
//
// Overlap summarizes how much one word's letters coincide with another word
// or with a whole candidate pool.
//
//   - Total:   letter+position coincidences.
//   - Partial: shared distinct letters, regardless of position.
//
// Overlaps add component-wise; the zero value is the identity.

package solver

import (
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// Overlap is a pair of coincidence counters.
type Overlap struct {
	Total   int `json:"total"`
	Partial int `json:"partial"`
}

// Add returns the component-wise sum of o and other.
func (o Overlap) Add(other Overlap) Overlap {
	return Overlap{Total: o.Total + other.Total, Partial: o.Partial + other.Partial}
}

// Sum folds any number of overlaps with Add.
func Sum(overlaps ...Overlap) Overlap {
	var out Overlap
	for _, o := range overlaps {
		out = out.Add(o)
	}
	return out
}

// FromPair measures source against a single target word of the same length.
// Total counts positions where both words carry the same letter; Partial
// counts distinct letters of target that also occur in source.
// Words are compared in lowercase.
func FromPair(source, target string) Overlap {
	src := []rune(source)
	tgt := []rune(target)
	if len(src) != len(tgt) {
		panic("solver: FromPair called with words of different length")
	}

	inSource := make(map[rune]struct{}, len(src))
	for i, r := range src {
		src[i] = unicode.ToLower(r)
		inSource[src[i]] = struct{}{}
	}

	var out Overlap
	seen := bitset.New(uint(len(tgt)))
	for i, r := range tgt {
		r = unicode.ToLower(r)
		if r == src[i] {
			out.Total++
		}
		if _, ok := inSource[r]; !ok || seenBefore(tgt[:i], r) {
			continue
		}
		seen.Set(uint(i))
	}
	out.Partial = int(seen.Count())
	return out
}

// seenBefore reports whether r already occurs (case-insensitively) in prefix.
func seenBefore(prefix []rune, r rune) bool {
	for _, p := range prefix {
		if unicode.ToLower(p) == r {
			return true
		}
	}
	return false
}

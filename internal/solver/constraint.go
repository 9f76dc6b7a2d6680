// apps/go-solver/internal/solver/constraint.go
//
// Constraint is a single predicate over a candidate word, derived from one
// piece of tile feedback. There are six kinds:
//
//   - AbsentGlobal: the letter does not occur anywhere.
//   - AbsentLocal:  the letter is not at Position (it may occur elsewhere).
//   - Present:      the letter occurs, but not at Position.
//   - Correct:      the letter is at Position.
//   - Count:        the letter occurs exactly N times.
//   - AtLeast:      the letter occurs at least N times.
//
// Constraints are plain comparable values; two constraints with identical
// fields are the same constraint, which is what lets Set collapse duplicates.

package solver

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind selects the predicate a Constraint applies.
type Kind uint8

const (
	AbsentGlobal Kind = iota
	AbsentLocal
	Present
	Correct
	Count
	AtLeast
)

var kindNames = [...]string{
	AbsentGlobal: "absent_global",
	AbsentLocal:  "absent_local",
	Present:      "present",
	Correct:      "correct",
	Count:        "count",
	AtLeast:      "at_least",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText renders the kind by name (used for JSON output).
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Global reports whether the kind ignores Position.
func (k Kind) Global() bool {
	return k == AbsentGlobal || k == Count || k == AtLeast
}

// Constraint is one logical predicate. For global kinds Position is always 0;
// N is only meaningful for Count and AtLeast.
type Constraint struct {
	Char     rune
	Position int
	Kind     Kind
	N        int
}

// MarshalJSON writes Char as a one-letter string rather than a code point.
func (c Constraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char     string `json:"char"`
		Position int    `json:"position"`
		Kind     Kind   `json:"kind"`
		N        int    `json:"n,omitempty"`
	}{string(c.Char), c.Position, c.Kind, c.N})
}

// Set is a deduplicated collection of constraints.
type Set = mapset.Set[Constraint]

// NewSet returns a request-scoped constraint set holding cs.
func NewSet(cs ...Constraint) Set {
	return mapset.NewThreadUnsafeSet(cs...)
}

// Positional builds a Correct, Present or AbsentLocal constraint.
func Positional(c rune, pos int, kind Kind) Constraint {
	if kind.Global() {
		panic(fmt.Sprintf("solver: %s is not a positional kind", kind))
	}
	return Constraint{Char: unicode.ToLower(c), Position: pos, Kind: kind}
}

// Absent builds the AbsentGlobal constraint for c.
func Absent(c rune) Constraint {
	return Constraint{Char: unicode.ToLower(c), Kind: AbsentGlobal}
}

// Exactly builds Count(n) for c.
func Exactly(c rune, n int) Constraint {
	return Constraint{Char: unicode.ToLower(c), Kind: Count, N: n}
}

// Minimum builds AtLeast(n) for c.
func Minimum(c rune, n int) Constraint {
	return Constraint{Char: unicode.ToLower(c), Kind: AtLeast, N: n}
}

func (c Constraint) String() string {
	switch c.Kind {
	case AbsentGlobal:
		return fmt.Sprintf("%s(%c)", c.Kind, c.Char)
	case Count, AtLeast:
		return fmt.Sprintf("%s(%c, %d)", c.Kind, c.Char, c.N)
	default:
		return fmt.Sprintf("%s(%c@%d)", c.Kind, c.Char, c.Position)
	}
}

// Satisfies reports whether word matches the constraint. The word is compared
// in lowercase. It panics if a positional constraint points past the end of
// word.
func (c Constraint) Satisfies(word string) bool {
	rs := []rune(word)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return c.match(rs)
}

func (c Constraint) match(w []rune) bool {
	switch c.Kind {
	case AbsentGlobal:
		return occurrences(w, c.Char) == 0
	case AbsentLocal:
		return c.at(w) != c.Char
	case Present:
		return c.at(w) != c.Char && occurrences(w, c.Char) > 0
	case Correct:
		return c.at(w) == c.Char
	case Count:
		return occurrences(w, c.Char) == c.N
	case AtLeast:
		return occurrences(w, c.Char) >= c.N
	}
	panic(fmt.Sprintf("solver: unknown constraint kind %d", c.Kind))
}

func (c Constraint) at(w []rune) rune {
	if c.Position < 0 || c.Position >= len(w) {
		panic(fmt.Sprintf("solver: constraint %s out of range for word of length %d", c, len(w)))
	}
	return w[c.Position]
}

func occurrences(w []rune, c rune) int {
	n := 0
	for _, r := range w {
		if r == c {
			n++
		}
	}
	return n
}

// SatisfiesAll reports whether word matches every constraint in set.
func SatisfiesAll(set Set, word string) bool {
	rs := []rune(word)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return matchAll(set.ToSlice(), rs)
}

func matchAll(cs []Constraint, w []rune) bool {
	for _, c := range cs {
		if !c.match(w) {
			return false
		}
	}
	return true
}

// Sorted returns the set's constraints in a stable order: by letter, then
// kind, then position, then bound.
func Sorted(set Set) []Constraint {
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Char != b.Char {
			return a.Char < b.Char
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.N < b.N
	})
	return out
}

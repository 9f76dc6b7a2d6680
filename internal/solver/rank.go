// apps/go-solver/internal/solver/rank.go

package solver

import "sort"

// DefaultTopK is the suggestion count used when none is configured.
const DefaultTopK = 20

// Key is the scalar rank of an overlap: Total + Partial/3.
func Key(o Overlap) int { return o.Total + o.Partial/3 }

// SortScored orders scored in place by Key descending, then word ascending.
func SortScored(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		ki, kj := Key(scored[i].Overlap), Key(scored[j].Overlap)
		if ki != kj {
			return ki > kj
		}
		return scored[i].Word < scored[j].Word
	})
}

// Rank returns the first k words of scored in rank order. scored is not
// modified. It panics if k is not positive.
func Rank(scored []Scored, k int) []string {
	if k <= 0 {
		panic("solver: Rank requires a positive k")
	}
	ordered := append([]Scored(nil), scored...)
	SortScored(ordered)
	if len(ordered) > k {
		ordered = ordered[:k]
	}
	out := make([]string, len(ordered))
	for i, s := range ordered {
		out[i] = s.Word
	}
	return out
}

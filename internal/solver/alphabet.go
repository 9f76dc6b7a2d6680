// apps/go-solver/internal/solver/alphabet.go
//
// Alphabet maps letters to dense bucket indexes so histograms can be plain
// slices sized by the alphabet instead of fixed 26-entry arrays.

package solver

import (
	"fmt"
	"unicode"
)

// Alphabet is an ordered, immutable set of lowercase letters.
type Alphabet struct {
	letters []rune
	index   map[rune]int
}

// English is the lowercase ASCII alphabet a–z.
var English = NewAlphabet("abcdefghijklmnopqrstuvwxyz")

// NewAlphabet builds an alphabet from the distinct letters of s, lowercased,
// in order of first appearance. It panics if s contains a non-letter.
func NewAlphabet(s string) *Alphabet {
	a := &Alphabet{index: make(map[rune]int, len(s))}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			panic(fmt.Sprintf("solver: alphabet contains non-letter %q", r))
		}
		r = unicode.ToLower(r)
		if _, ok := a.index[r]; ok {
			continue
		}
		a.index[r] = len(a.letters)
		a.letters = append(a.letters, r)
	}
	return a
}

// Size is the number of letters (histogram buckets).
func (a *Alphabet) Size() int { return len(a.letters) }

// Index returns the bucket for r (case-insensitive).
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[unicode.ToLower(r)]
	return i, ok
}

// Letter returns the letter stored in bucket i.
func (a *Alphabet) Letter(i int) rune { return a.letters[i] }

// Contains reports whether r (case-insensitive) is in the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// encode lowercases w and maps it to bucket indexes. ok is false if any
// letter falls outside the alphabet.
func (a *Alphabet) encode(w string) (idx []int, ok bool) {
	idx = make([]int, 0, len(w))
	for _, r := range w {
		i, found := a.Index(r)
		if !found {
			return nil, false
		}
		idx = append(idx, i)
	}
	return idx, true
}

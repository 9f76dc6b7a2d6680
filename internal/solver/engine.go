// apps/go-solver/internal/solver/engine.go
//
// Candidate engine: filters a fixed word pool against a constraint set and
// scores each survivor by its overlap with the rest of the survivors.
//
// Scoring uses two histograms built over the valid words only:
//   - positional[p][c]: valid words with letter c at position p.
//   - byLetter[c]:      valid words containing c at least once.
//
// A word's Total is the sum of positional[p][w[p]] over its positions (its
// own entry included, so Total >= L whenever it survives). Its Partial is the
// sum of byLetter[c] over its distinct letters.
//
// The engine is immutable after NewEngine and safe for concurrent use.

package solver

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// Scored pairs a surviving word with its overlap against the valid pool.
type Scored struct {
	Word    string  `json:"word"`
	Overlap Overlap `json:"overlap"`
}

type entry struct {
	word  string
	runes []rune // lowercase letters
	idx   []int  // alphabet buckets, parallel to runes
}

// Engine holds the candidate pool for one word length and alphabet.
type Engine struct {
	alpha  *Alphabet
	length int
	words  []entry
}

// NewEngine restricts words to those of exactly length letters drawn from
// alpha. Words are lowercased; duplicates are dropped and the pool is kept
// in lexical order.
func NewEngine(alpha *Alphabet, length int, words []string) *Engine {
	if length <= 0 {
		panic(fmt.Sprintf("solver: word length must be positive, got %d", length))
	}
	e := &Engine{alpha: alpha, length: length}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		rs := []rune(w)
		if len(rs) != length {
			continue
		}
		for i, r := range rs {
			rs[i] = unicode.ToLower(r)
		}
		lw := string(rs)
		if _, dup := seen[lw]; dup {
			continue
		}
		idx, ok := alpha.encode(lw)
		if !ok {
			continue
		}
		seen[lw] = struct{}{}
		e.words = append(e.words, entry{word: lw, runes: rs, idx: idx})
	}
	sort.Slice(e.words, func(i, j int) bool { return e.words[i].word < e.words[j].word })
	return e
}

// Length is the fixed word length L.
func (e *Engine) Length() int { return e.length }

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() *Alphabet { return e.alpha }

// Size is the number of words in the pool.
func (e *Engine) Size() int { return len(e.words) }

// Pool returns a copy of the candidate pool.
func (e *Engine) Pool() []string {
	out := make([]string, len(e.words))
	for i, w := range e.words {
		out[i] = w.word
	}
	return out
}

// Filter returns the pool words that satisfy every constraint in set.
func (e *Engine) Filter(set Set) []string {
	valid := e.filter(set)
	out := make([]string, len(valid))
	for i, w := range valid {
		out[i] = w.word
	}
	return out
}

func (e *Engine) filter(set Set) []entry {
	cs := set.ToSlice()
	e.check(cs)
	valid := make([]entry, 0, len(e.words))
	for _, w := range e.words {
		if matchAll(cs, w.runes) {
			valid = append(valid, w)
		}
	}
	return valid
}

// check panics on constraints that cannot apply to words of length L.
func (e *Engine) check(cs []Constraint) {
	for _, c := range cs {
		if c.Position < 0 || c.Position >= e.length {
			panic(fmt.Sprintf("solver: constraint %s position outside [0,%d)", c, e.length))
		}
		if c.N < 0 || c.N > e.length {
			panic(fmt.Sprintf("solver: constraint %s bound outside [0,%d]", c, e.length))
		}
	}
}

// Evaluate filters the pool by set and scores every survivor. The result
// follows pool order; use Rank for the suggestion order.
func (e *Engine) Evaluate(set Set) []Scored {
	valid := e.filter(set)
	if len(valid) == 0 {
		return nil
	}

	size := e.alpha.Size()
	byLetter := make([]int, size)
	positional := make([][]int, e.length)
	for p := range positional {
		positional[p] = make([]int, size)
	}

	seen := bitset.New(uint(size))
	for _, w := range valid {
		seen.ClearAll()
		for p, c := range w.idx {
			positional[p][c]++
			if !seen.Test(uint(c)) {
				seen.Set(uint(c))
				byLetter[c]++
			}
		}
	}

	out := make([]Scored, 0, len(valid))
	for _, w := range valid {
		var o Overlap
		seen.ClearAll()
		for p, c := range w.idx {
			o.Total += positional[p][c]
			if !seen.Test(uint(c)) {
				seen.Set(uint(c))
				o.Partial += byLetter[c]
			}
		}
		out = append(out, Scored{Word: w.word, Overlap: o})
	}
	return out
}

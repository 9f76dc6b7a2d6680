// apps/go-solver/internal/solver/derive.go
//
// Derive turns a guess history into a constraint set.
//
// Each board is read on its own:
//   1. Every lettered tile yields a positional constraint
//      (correct → Correct, present → Present, absent → AbsentLocal).
//   2. The row's tiles are grouped by letter.
//   3. A letter that is only ever absent in the row yields AbsentGlobal.
//      Otherwise k = correct+present tiles for it; the row proves Count(k)
//      when it also has an absent tile for that letter, else AtLeast(k).
//
// Results from all rows are unioned. A weaker bound from one row never
// replaces a stronger one from another; both stay in the set.

package solver

import "unicode"

// letterTally counts one row's tiles for a single letter.
type letterTally struct {
	correct, present, absent int
}

// Derive returns the constraints implied by history. It is a pure function
// of its input: boards may be processed in any order.
func Derive(history []Board) Set {
	set := NewSet()
	for _, b := range history {
		deriveBoard(b, set)
	}
	return set
}

func deriveBoard(b Board, set Set) {
	tallies := make(map[rune]*letterTally)
	for i, t := range b.Tiles {
		if !t.Set() {
			continue
		}
		c := unicode.ToLower(t.Letter)
		tally, ok := tallies[c]
		if !ok {
			tally = &letterTally{}
			tallies[c] = tally
		}
		switch t.Status {
		case StatusCorrect:
			set.Add(Positional(c, i, Correct))
			tally.correct++
		case StatusPresent:
			set.Add(Positional(c, i, Present))
			tally.present++
		default:
			set.Add(Positional(c, i, AbsentLocal))
			tally.absent++
		}
	}

	for c, tally := range tallies {
		k := tally.correct + tally.present
		switch {
		case k == 0:
			set.Add(Absent(c))
		case tally.absent > 0:
			set.Add(Exactly(c, k))
		default:
			set.Add(Minimum(c, k))
		}
	}
}

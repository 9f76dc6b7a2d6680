// apps/go-solver/internal/game/engine.go
//
// Game engine used to replay the solver against a known answer.
// Responsibilities:
//   - Score guesses using the classic two‑pass Wordle algorithm, producing the
//     same solver.Board rows a player would type in by hand.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Letter counts use a map, so any alphabet works.
//   - Validation here is about the game (length, finished); dictionary
//     membership is the caller's concern.
package game

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const DefaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a game for answer with the given row limit (DefaultRows if
// rows is not positive).
func New(answer string, rows int) *Game {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{Answer: strings.ToLower(answer), Rows: rows}
}

// ApplyGuess scores a guess and appends the resulting board.
//
// State transitions:
//   - If all tiles are correct → Won.
//   - Else if the number of boards reaches g.Rows → lost.
func (g *Game) ApplyGuess(guess string) (solver.Board, State, error) {
	if g.State() != StatePlaying {
		return solver.Board{}, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(g.Answer) {
		return solver.Board{}, g.State(), ErrInvalidGuess
	}

	b := Score(g.Answer, guess)
	g.Boards = append(g.Boards, b)
	if b.Solved() {
		g.Won = true
	}
	return b, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	switch {
	case g.Won:
		return StateWon
	case len(g.Boards) >= g.Rows:
		return StateLost
	default:
		return StatePlaying
	}
}

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non‑hit) answer letters.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark present and decrement the count; otherwise mark absent.
//
// This ensures correct behavior with repeated letters in both answer and guess.
// Both words must have the same number of letters.
func Score(answer, guess string) solver.Board {
	a := []rune(strings.ToLower(answer))
	gr := []rune(strings.ToLower(guess))
	b := solver.Board{Tiles: make([]solver.Tile, len(gr))}

	// First pass: mark hits and collect counts for remaining answer letters.
	remaining := make(map[rune]int, len(a))
	for i := range gr {
		b.Tiles[i].Letter = gr[i]
		if i < len(a) && gr[i] == a[i] {
			b.Tiles[i].Status = solver.StatusCorrect
		} else if i < len(a) {
			remaining[a[i]]++
		}
	}

	// Second pass: resolve presents/misses for non‑hit tiles.
	for i := range gr {
		if b.Tiles[i].Status == solver.StatusCorrect {
			continue
		}
		if remaining[gr[i]] > 0 {
			b.Tiles[i].Status = solver.StatusPresent
			remaining[gr[i]]--
		} else {
			b.Tiles[i].Status = solver.StatusAbsent
		}
	}
	return b
}

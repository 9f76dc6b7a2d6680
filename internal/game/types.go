// apps/go-solver/internal/game/types.go
//
// Core type definitions for a played-out game.
// Defines:
//   - State: coarse game state (playing/won/lost).
//   - Game:  answer plus the feedback rows produced so far.

package game

import "github.com/robalobadob/wordle/apps/go-solver/internal/solver"

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds one answer and the boards scored against it.
type Game struct {
	Answer string         // The solution word (always lowercase).
	Rows   int            // Maximum number of guesses allowed (typically 6).
	Boards []solver.Board // Feedback rows, oldest first.
	Won    bool           // True once a guess matched the answer.
}

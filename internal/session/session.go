// apps/go-solver/internal/session/session.go
//
// A Session is the server-side copy of a player's board: every submitted row
// plus one editable row at the end, edited the same way the grid UI does.
//
// Editing rules:
//   - SetLetter/Toggle only touch the editable (last) row.
//   - Toggle cycles a tile present → correct → absent → present.
//   - A tile is locked when the previous row has a correct tile at the same
//     position; that letter is already known.
//   - Next appends a new editable row, but only once the current one is fully
//     lettered. Correct tiles carry over; every other tile resets to an
//     unset absent tile.

package session

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	ErrPosition   = errors.New("tile position out of range")
	ErrLocked     = errors.New("tile is locked by a correct tile above")
	ErrIncomplete = errors.New("current row is not filled")
)

// Session holds one board history. The last row is always editable.
type Session struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"ownerId,omitempty"`
	Boards    []solver.Board `json:"boards"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// New starts a session with a single empty row of width tiles.
func New(ownerID string, width int) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Boards:    []solver.Board{solver.EmptyBoard(width)},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Width is the number of tiles per row.
func (s *Session) Width() int { return len(s.Boards[0].Tiles) }

func (s *Session) current() *solver.Board { return &s.Boards[len(s.Boards)-1] }

// Locked reports whether tile i of the editable row is fixed by the row above.
func (s *Session) Locked(i int) bool {
	if len(s.Boards) < 2 || i < 0 || i >= s.Width() {
		return false
	}
	return s.Boards[len(s.Boards)-2].Tiles[i].Status == solver.StatusCorrect
}

func (s *Session) editable(i int) error {
	if i < 0 || i >= s.Width() {
		return fmt.Errorf("%w: %d", ErrPosition, i)
	}
	if s.Locked(i) {
		return fmt.Errorf("%w: %d", ErrLocked, i)
	}
	return nil
}

// SetLetter sets (or clears, with r == 0) the letter of tile i.
func (s *Session) SetLetter(i int, r rune) error {
	if err := s.editable(i); err != nil {
		return err
	}
	s.current().Tiles[i].Letter = unicode.ToLower(r)
	s.touch()
	return nil
}

// Toggle advances the status of tile i and returns the new status.
func (s *Session) Toggle(i int) (solver.Status, error) {
	if err := s.editable(i); err != nil {
		return "", err
	}
	t := &s.current().Tiles[i]
	t.Status = t.Status.Next()
	s.touch()
	return t.Status, nil
}

// Next submits the editable row and opens a new one.
func (s *Session) Next() error {
	cur := s.current()
	if !cur.Filled() {
		return ErrIncomplete
	}
	next := cur.Clone()
	for i := range next.Tiles {
		if next.Tiles[i].Status != solver.StatusCorrect {
			next.Tiles[i] = solver.Tile{Status: solver.StatusAbsent}
		}
	}
	s.Boards = append(s.Boards, next)
	s.touch()
	return nil
}

// History returns a copy of the rows, editable row included, for solving.
func (s *Session) History() []solver.Board {
	out := make([]solver.Board, len(s.Boards))
	for i, b := range s.Boards {
		out[i] = b.Clone()
	}
	return out
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	c.Boards = s.History()
	return &c
}

func (s *Session) touch() { s.UpdatedAt = time.Now().UTC() }

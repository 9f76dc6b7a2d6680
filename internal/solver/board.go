// apps/go-solver/internal/solver/board.go
//
// Board types describe a submitted guess row and its per-tile feedback.
// Defines:
//   - Status: feedback for one tile (correct/present/absent).
//   - Tile:   an optional letter plus its status.
//   - Board:  one row of exactly L tiles.
//
// Also holds the boundary checks (ValidateHistory) and the compact feedback
// notation used by the CLI (ParseBoard).

package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status is the feedback colour of one tile.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusCorrect || s == StatusPresent || s == StatusAbsent
}

// Next cycles present → correct → absent → present, the order a player
// clicks through when marking a tile.
func (s Status) Next() Status {
	switch s {
	case StatusPresent:
		return StatusCorrect
	case StatusCorrect:
		return StatusAbsent
	default:
		return StatusPresent
	}
}

// Tile is one cell of a guess row. Letter 0 means the tile is unset.
type Tile struct {
	Letter rune
	Status Status
}

// Set reports whether the tile carries a letter.
func (t Tile) Set() bool { return t.Letter != 0 }

type tileJSON struct {
	Letter string `json:"letter,omitempty"`
	Status Status `json:"status"`
}

func (t Tile) MarshalJSON() ([]byte, error) {
	v := tileJSON{Status: t.Status}
	if t.Set() {
		v.Letter = string(t.Letter)
	}
	return json.Marshal(v)
}

func (t *Tile) UnmarshalJSON(b []byte) error {
	var v tileJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if utf8.RuneCountInString(v.Letter) > 1 {
		return fmt.Errorf("%w: tile letter %q", ErrLetter, v.Letter)
	}
	t.Letter = 0
	if v.Letter != "" {
		r, _ := utf8.DecodeRuneInString(v.Letter)
		t.Letter = unicode.ToLower(r)
	}
	t.Status = v.Status
	if t.Status == "" {
		t.Status = StatusAbsent
	}
	return nil
}

// Board is one submitted guess row.
type Board struct {
	Tiles []Tile `json:"tiles"`
}

// EmptyBoard returns a row of n unset, absent tiles.
func EmptyBoard(n int) Board {
	b := Board{Tiles: make([]Tile, n)}
	for i := range b.Tiles {
		b.Tiles[i].Status = StatusAbsent
	}
	return b
}

// Filled reports whether every tile carries a letter.
func (b Board) Filled() bool {
	for _, t := range b.Tiles {
		if !t.Set() {
			return false
		}
	}
	return true
}

// Word returns the row's letters; unset tiles render as '_'.
func (b Board) Word() string {
	var sb strings.Builder
	for _, t := range b.Tiles {
		if t.Set() {
			sb.WriteRune(t.Letter)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Solved reports whether every tile is set and correct.
func (b Board) Solved() bool {
	if len(b.Tiles) == 0 {
		return false
	}
	for _, t := range b.Tiles {
		if !t.Set() || t.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	return Board{Tiles: append([]Tile(nil), b.Tiles...)}
}

var (
	// ErrBoardWidth is returned when a row does not have exactly L tiles.
	ErrBoardWidth = errors.New("board has wrong width")
	// ErrLetter is returned for letters outside the engine's alphabet.
	ErrLetter = errors.New("letter not in alphabet")
	// ErrStatus is returned for an unknown tile status.
	ErrStatus = errors.New("unknown tile status")
)

// ValidateHistory checks that every board has exactly length tiles, each
// with a known status and a letter from alpha (or no letter).
func ValidateHistory(history []Board, alpha *Alphabet, length int) error {
	for row, b := range history {
		if len(b.Tiles) != length {
			return fmt.Errorf("row %d: %w: got %d tiles, want %d", row, ErrBoardWidth, len(b.Tiles), length)
		}
		for col, t := range b.Tiles {
			if !t.Status.Valid() {
				return fmt.Errorf("row %d col %d: %w %q", row, col, ErrStatus, t.Status)
			}
			if t.Set() && !alpha.Contains(t.Letter) {
				return fmt.Errorf("row %d col %d: %w: %q", row, col, ErrLetter, t.Letter)
			}
		}
	}
	return nil
}

// ParseBoard builds a Board from a guess and a marks string of equal length.
// Marks: g or c = correct, y or p = present, '.', x, a or b = absent.
// A '_' or ' ' in guess leaves that tile unset.
func ParseBoard(guess, marks string) (Board, error) {
	g := []rune(guess)
	m := []rune(strings.ToLower(marks))
	if len(g) != len(m) {
		return Board{}, fmt.Errorf("%w: guess %q has %d letters but marks %q has %d",
			ErrBoardWidth, guess, len(g), marks, len(m))
	}
	b := Board{Tiles: make([]Tile, len(g))}
	for i := range g {
		switch m[i] {
		case 'g', 'c':
			b.Tiles[i].Status = StatusCorrect
		case 'y', 'p':
			b.Tiles[i].Status = StatusPresent
		case '.', 'x', 'a', 'b':
			b.Tiles[i].Status = StatusAbsent
		default:
			return Board{}, fmt.Errorf("%w: mark %q at %d", ErrStatus, m[i], i)
		}
		if g[i] != '_' && g[i] != ' ' {
			b.Tiles[i].Letter = unicode.ToLower(g[i])
		}
	}
	return b, nil
}

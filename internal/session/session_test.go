package session

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func fill(t *testing.T, s *Session, word string) {
	t.Helper()
	for i, r := range word {
		if s.Locked(i) {
			continue
		}
		if err := s.SetLetter(i, r); err != nil {
			t.Fatalf("SetLetter(%d): %v", i, err)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := New("", 5)
	if s.ID == "" || len(s.Boards) != 1 || s.Width() != 5 {
		t.Fatalf("unexpected session %+v", s)
	}
	if s.Boards[0].Filled() {
		t.Error("fresh row must be empty")
	}
}

func TestToggleCycle(t *testing.T) {
	s := New("", 5)
	want := []solver.Status{solver.StatusPresent, solver.StatusCorrect, solver.StatusAbsent, solver.StatusPresent}
	for i, w := range want {
		got, err := s.Toggle(0)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("toggle %d = %s, want %s", i, got, w)
		}
	}
}

func TestNextRequiresFilledRow(t *testing.T) {
	s := New("", 5)
	fill(t, s, "cra")
	if err := s.Next(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v, want ErrIncomplete", err)
	}
}

func TestNextCarriesCorrectTiles(t *testing.T) {
	s := New("", 5)
	fill(t, s, "Crane")
	s.Toggle(0) // present
	s.Toggle(0) // correct
	s.Toggle(2) // present
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if len(s.Boards) != 2 {
		t.Fatalf("rows = %d", len(s.Boards))
	}
	row := s.Boards[1]
	if row.Tiles[0] != (solver.Tile{Letter: 'c', Status: solver.StatusCorrect}) {
		t.Errorf("tile 0 = %+v, want carried correct c", row.Tiles[0])
	}
	for i := 1; i < 5; i++ {
		if row.Tiles[i].Set() || row.Tiles[i].Status != solver.StatusAbsent {
			t.Errorf("tile %d = %+v, want cleared", i, row.Tiles[i])
		}
	}
	if !s.Locked(0) || s.Locked(2) {
		t.Error("lock state wrong")
	}
	if err := s.SetLetter(0, 'x'); !errors.Is(err, ErrLocked) {
		t.Errorf("SetLetter on locked tile: %v", err)
	}
	if _, err := s.Toggle(0); !errors.Is(err, ErrLocked) {
		t.Errorf("Toggle on locked tile: %v", err)
	}
	// submitted rows are not touched by edits
	fill(t, s, "cloud")
	if s.Boards[0].Word() != "crane" {
		t.Errorf("first row changed to %q", s.Boards[0].Word())
	}
}

func TestPositionOutOfRange(t *testing.T) {
	s := New("", 5)
	if err := s.SetLetter(5, 'a'); !errors.Is(err, ErrPosition) {
		t.Errorf("got %v", err)
	}
	if _, err := s.Toggle(-1); !errors.Is(err, ErrPosition) {
		t.Errorf("got %v", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	s := New("u1", 5)
	if err := st.Save(ctx, s); err != nil {
		t.Fatal(err)
	}
	s.SetLetter(0, 'z')

	got, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Boards[0].Tiles[0].Set() {
		t.Error("store shares state with caller")
	}
	if got.OwnerID != "u1" {
		t.Errorf("OwnerID = %q", got.OwnerID)
	}
}

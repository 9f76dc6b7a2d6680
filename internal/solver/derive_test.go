package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustBoard(t *testing.T, guess, marks string) Board {
	t.Helper()
	b, err := ParseBoard(guess, marks)
	if err != nil {
		t.Fatalf("ParseBoard(%q, %q): %v", guess, marks, err)
	}
	return b
}

func TestDeriveExactCount(t *testing.T) {
	// 'a' correct at 0 and absent at 3 in the same row.
	set := Derive([]Board{mustBoard(t, "abcad", "g....")})

	want := Sorted(NewSet(
		Positional('a', 0, Correct),
		Positional('b', 1, AbsentLocal),
		Positional('c', 2, AbsentLocal),
		Positional('a', 3, AbsentLocal),
		Positional('d', 4, AbsentLocal),
		Exactly('a', 1),
		Absent('b'),
		Absent('c'),
		Absent('d'),
	))
	if diff := cmp.Diff(want, Sorted(set)); diff != "" {
		t.Errorf("Derive mismatch (-want +got):\n%s", diff)
	}
	if set.Contains(Minimum('a', 1)) {
		t.Error("row with an absent 'a' must not produce AtLeast")
	}
}

func TestDeriveAbsentGlobal(t *testing.T) {
	set := Derive([]Board{mustBoard(t, "bobby", ".y...")})
	if !set.Contains(Absent('b')) {
		t.Errorf("expected AbsentGlobal(b), got %v", Sorted(set))
	}
	if !set.Contains(Minimum('o', 1)) {
		t.Errorf("expected AtLeast(o, 1), got %v", Sorted(set))
	}
	for _, c := range Sorted(set) {
		if c.Char == 'b' && (c.Kind == Count || c.Kind == AtLeast) {
			t.Errorf("unexpected bound for b: %s", c)
		}
	}
}

func TestDeriveLowerBound(t *testing.T) {
	set := Derive([]Board{mustBoard(t, "eerie", "gy.y.")})
	// e: correct@0, present@1, absent@4 → Count(2); i present only → AtLeast(1).
	for _, c := range []Constraint{Exactly('e', 2), Minimum('i', 1), Absent('r')} {
		if !set.Contains(c) {
			t.Errorf("missing %s in %v", c, Sorted(set))
		}
	}
}

func TestDeriveSkipsUnsetTiles(t *testing.T) {
	b := EmptyBoard(5)
	b.Tiles[2] = Tile{Letter: 'R', Status: StatusCorrect}
	set := Derive([]Board{b})
	want := Sorted(NewSet(Positional('r', 2, Correct), Minimum('r', 1)))
	if diff := cmp.Diff(want, Sorted(set)); diff != "" {
		t.Errorf("Derive mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveOrderIndependent(t *testing.T) {
	rows := []Board{
		mustBoard(t, "crane", ".y..g"),
		mustBoard(t, "shore", "..yyg"),
		mustBoard(t, "error", "y.y.."),
	}
	forward := Sorted(Derive(rows))
	reversed := Sorted(Derive([]Board{rows[2], rows[1], rows[0]}))
	if diff := cmp.Diff(forward, reversed); diff != "" {
		t.Errorf("history order changed the set (-fwd +rev):\n%s", diff)
	}
}

func TestDeriveKeepsBothBounds(t *testing.T) {
	rows := []Board{
		mustBoard(t, "speed", "..y.."), // e: present@2, absent@3 → Count(1)
		mustBoard(t, "eight", "y...."), // e: present only → AtLeast(1)
	}
	set := Derive(rows)
	if !set.Contains(Exactly('e', 1)) || !set.Contains(Minimum('e', 1)) {
		t.Errorf("expected both Count(e,1) and AtLeast(e,1), got %v", Sorted(set))
	}
}

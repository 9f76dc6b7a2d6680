package solver

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("CrAnE", "g.yxb")
	if err != nil {
		t.Fatal(err)
	}
	want := Board{Tiles: []Tile{
		{'c', StatusCorrect},
		{'r', StatusAbsent},
		{'a', StatusPresent},
		{'n', StatusAbsent},
		{'e', StatusAbsent},
	}}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("ParseBoard (-want +got):\n%s", diff)
	}
}

func TestParseBoardErrors(t *testing.T) {
	if _, err := ParseBoard("crane", "g.."); !errors.Is(err, ErrBoardWidth) {
		t.Errorf("length mismatch: got %v, want ErrBoardWidth", err)
	}
	if _, err := ParseBoard("crane", "g..?."); !errors.Is(err, ErrStatus) {
		t.Errorf("bad mark: got %v, want ErrStatus", err)
	}
}

func TestParseBoardUnsetLetter(t *testing.T) {
	b, err := ParseBoard("c_ane", "g....")
	if err != nil {
		t.Fatal(err)
	}
	if b.Tiles[1].Set() {
		t.Error("'_' must leave the tile unset")
	}
	if got := b.Word(); got != "c_ane" {
		t.Errorf("Word() = %q", got)
	}
}

func TestValidateHistory(t *testing.T) {
	good, _ := ParseBoard("crane", "g.y..")
	short, _ := ParseBoard("cran", "g.y.")
	digit, _ := ParseBoard("cr4ne", "g.y..")
	bad := EmptyBoard(5)
	bad.Tiles[0].Status = "purple"

	tests := []struct {
		name    string
		history []Board
		want    error
	}{
		{"ok", []Board{good, EmptyBoard(5)}, nil},
		{"empty history", nil, nil},
		{"width", []Board{good, short}, ErrBoardWidth},
		{"letter", []Board{digit}, ErrLetter},
		{"status", []Board{bad}, ErrStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHistory(tt.history, English, 5)
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTileJSON(t *testing.T) {
	var b Board
	in := `{"tiles":[{"letter":"C","status":"correct"},{"status":"absent"},{"letter":"a"}]}`
	if err := json.Unmarshal([]byte(in), &b); err != nil {
		t.Fatal(err)
	}
	want := Board{Tiles: []Tile{
		{'c', StatusCorrect},
		{0, StatusAbsent},
		{'a', StatusAbsent},
	}}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("unmarshal (-want +got):\n%s", diff)
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	wantOut := `{"tiles":[{"letter":"c","status":"correct"},{"status":"absent"},{"letter":"a","status":"absent"}]}`
	if string(out) != wantOut {
		t.Errorf("marshal = %s, want %s", out, wantOut)
	}
	if err := json.Unmarshal([]byte(`{"tiles":[{"letter":"ab"}]}`), &b); !errors.Is(err, ErrLetter) {
		t.Errorf("two-letter tile: got %v, want ErrLetter", err)
	}
}

func TestStatusNext(t *testing.T) {
	s := StatusPresent
	want := []Status{StatusCorrect, StatusAbsent, StatusPresent}
	for _, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("Next() = %s, want %s", s, w)
		}
	}
}

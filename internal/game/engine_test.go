package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func marks(b solver.Board) string {
	out := make([]byte, len(b.Tiles))
	for i, t := range b.Tiles {
		switch t.Status {
		case solver.StatusCorrect:
			out[i] = 'g'
		case solver.StatusPresent:
			out[i] = 'y'
		default:
			out[i] = '.'
		}
	}
	return string(out)
}

func TestScore(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "ggggg"},
		{"crane", "nacre", "yyyyg"},
		{"abbey", "babes", "yygg."},
		{"apple", "paper", "yygy."},
		{"eerie", "speed", "..yy."},
		{"lemon", "melon", "ygygg"},
		{"light", "hotel", "y.y.y"},
	}
	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			b := Score(tt.answer, tt.guess)
			if got := marks(b); got != tt.want {
				t.Errorf("Score(%q, %q) = %s, want %s", tt.answer, tt.guess, got, tt.want)
			}
			if b.Word() != tt.guess {
				t.Errorf("board word = %q", b.Word())
			}
		})
	}
}

func TestApplyGuess(t *testing.T) {
	g := New("Crane", 2)
	if _, _, err := g.ApplyGuess("cran"); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("short guess: got %v", err)
	}
	_, st, err := g.ApplyGuess("slate")
	if err != nil || st != StatePlaying {
		t.Fatalf("first guess: state=%s err=%v", st, err)
	}
	_, st, err = g.ApplyGuess("trace")
	if err != nil || st != StateLost {
		t.Fatalf("second guess: state=%s err=%v", st, err)
	}
	if _, _, err := g.ApplyGuess("crane"); !errors.Is(err, ErrFinished) {
		t.Fatalf("after loss: got %v", err)
	}

	g = New("crane", 0)
	if g.Rows != DefaultRows {
		t.Errorf("Rows = %d, want %d", g.Rows, DefaultRows)
	}
	b, st, err := g.ApplyGuess("CRANE")
	if err != nil || st != StateWon || !b.Solved() {
		t.Fatalf("win: state=%s err=%v", st, err)
	}
}

// The constraints derived from honest feedback must always admit the answer.
func TestDerivedConstraintsAdmitAnswer(t *testing.T) {
	pool := words.Default().Words(5)
	if len(pool) > 120 {
		pool = pool[:120]
	}
	for _, answer := range pool {
		for _, guess := range pool[:30] {
			set := solver.Derive([]solver.Board{Score(answer, guess)})
			if !solver.SatisfiesAll(set, answer) {
				t.Fatalf("answer %q rejected after guess %q: %v", answer, guess, solver.Sorted(set))
			}
		}
	}
}

func TestScoreFeedsSolver(t *testing.T) {
	e := solver.NewEngine(solver.English, 5, []string{"crane", "crate", "trace", "slate"})
	set := solver.Derive([]solver.Board{Score("crate", "crane")})
	if diff := cmp.Diff([]string{"crate"}, e.Filter(set)); diff != "" {
		t.Errorf("filter (-want +got):\n%s", diff)
	}
}

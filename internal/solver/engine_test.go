package solver

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var samplePool = []string{"apple", "banan", "taple", "agora", "doggo"}

func scoreMap(scored []Scored) map[string]Overlap {
	m := make(map[string]Overlap, len(scored))
	for _, s := range scored {
		m[s.Word] = s.Overlap
	}
	return m
}

func TestEvaluatePresentA(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	scored := e.Evaluate(NewSet(Positional('a', 2, Present)))

	got := scoreMap(scored)
	if len(got) != 4 {
		t.Fatalf("expected 4 survivors, got %d: %v", len(got), scored)
	}
	if _, ok := got["doggo"]; ok {
		t.Error("doggo has no 'a' and must be filtered out")
	}
	if diff := cmp.Diff(Overlap{Total: 9, Partial: 10}, got["apple"]); diff != "" {
		t.Errorf("apple overlap (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Overlap{Total: 6, Partial: 6}, got["banan"]); diff != "" {
		t.Errorf("banan overlap (-want +got):\n%s", diff)
	}
}

func TestEvaluateTotalIncludesSelf(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	for _, s := range e.Evaluate(NewSet()) {
		if s.Overlap.Total < e.Length() {
			t.Errorf("%s: total %d < L", s.Word, s.Overlap.Total)
		}
	}
}

func TestEvaluatePartialCountsDistinctLetters(t *testing.T) {
	e := NewEngine(English, 5, []string{"aabbc"})
	got := scoreMap(e.Evaluate(NewSet()))
	// a, b and c each contribute byLetter = 1 once.
	if diff := cmp.Diff(Overlap{Total: 5, Partial: 3}, got["aabbc"]); diff != "" {
		t.Errorf("aabbc overlap (-want +got):\n%s", diff)
	}
}

func TestFilterIdentity(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	if diff := cmp.Diff(e.Pool(), e.Filter(NewSet())); diff != "" {
		t.Errorf("empty set must keep the pool (-pool +got):\n%s", diff)
	}
}

func TestFilterMonotone(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	steps := []Constraint{
		Minimum('a', 1),
		Positional('a', 0, AbsentLocal),
		Positional('n', 2, Correct),
	}
	set := NewSet()
	prev := len(e.Filter(set))
	for _, c := range steps {
		set.Add(c)
		n := len(e.Filter(set))
		if n > prev {
			t.Fatalf("adding %s grew the valid set from %d to %d", c, prev, n)
		}
		prev = n
	}
	if diff := cmp.Diff([]string{"banan"}, e.Filter(set)); diff != "" {
		t.Errorf("final filter (-want +got):\n%s", diff)
	}
}

func TestFilterContradiction(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	for p := 0; p < 5; p++ {
		set := NewSet(Absent('a'), Positional('a', p, Present))
		if got := e.Filter(set); len(got) != 0 {
			t.Errorf("p=%d: expected no survivors, got %v", p, got)
		}
		if got := e.Evaluate(set); len(got) != 0 {
			t.Errorf("p=%d: expected no scored words, got %v", p, got)
		}
	}
}

func TestNewEngineRestrictsPool(t *testing.T) {
	e := NewEngine(English, 5, []string{"Crane", "crane", "cranes", "cran", "cr4ne", "slate"})
	if diff := cmp.Diff([]string{"crane", "slate"}, e.Pool()); diff != "" {
		t.Errorf("pool (-want +got):\n%s", diff)
	}
}

func TestEvaluatePanicsOnOutOfRangeConstraint(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a position past L")
		}
	}()
	e.Evaluate(NewSet(Positional('a', 5, Correct)))
}

func TestEngineCustomAlphabet(t *testing.T) {
	alpha := NewAlphabet("abcdefghijklmnopqrstuvwxyzäöü")
	e := NewEngine(alpha, 5, []string{"größe", "äpfel", "katze"})
	// ß is outside the alphabet.
	if diff := cmp.Diff([]string{"katze", "äpfel"}, e.Pool()); diff != "" {
		t.Errorf("pool (-want +got):\n%s", diff)
	}
	got := e.Filter(NewSet(Positional('ä', 0, Correct)))
	if diff := cmp.Diff([]string{"äpfel"}, got); diff != "" {
		t.Errorf("filter (-want +got):\n%s", diff)
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	e := NewEngine(English, 5, samplePool)
	want := e.Evaluate(NewSet(Positional('a', 2, Present)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.Evaluate(NewSet(Positional('a', 2, Present)))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent evaluate (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

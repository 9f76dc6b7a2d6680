// apps/go-solver/internal/solver/solver.go
//
// Solver wires the pipeline together: validate → derive → evaluate → rank.
// It is the entry point used by the HTTP server, the IPC worker, the CLI and
// the simulator. A Solver holds no per-request state and may be shared.

package solver

import "fmt"

// Solver answers suggestion requests against one engine.
type Solver struct {
	engine *Engine
	topK   int
}

// New returns a Solver that suggests up to topK words (DefaultTopK if topK
// is not positive).
func New(engine *Engine, topK int) *Solver {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Solver{engine: engine, topK: topK}
}

// Engine exposes the underlying engine.
func (s *Solver) Engine() *Engine { return s.engine }

// TopK is the configured suggestion count.
func (s *Solver) TopK() int { return s.topK }

// Solve returns the ranked suggestions for history using the configured k.
func (s *Solver) Solve(history []Board) ([]string, error) {
	return s.SolveK(history, s.topK)
}

// SolveK is Solve with an explicit k; k <= 0 falls back to the configured k.
// An empty result is not an error: the history may rule out every word.
func (s *Solver) SolveK(history []Board, k int) ([]string, error) {
	if k <= 0 {
		k = s.topK
	}
	if err := ValidateHistory(history, s.engine.alpha, s.engine.length); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return Rank(s.engine.Evaluate(Derive(history)), k), nil
}

// Report is the detailed view of one solve.
type Report struct {
	Constraints []Constraint `json:"constraints"`
	Survivors   int          `json:"survivors"`
	Top         []Scored     `json:"top"`
}

// Explain returns the constraints, survivor count and top-k scored words.
func (s *Solver) Explain(history []Board, k int) (Report, error) {
	if k <= 0 {
		k = s.topK
	}
	if err := ValidateHistory(history, s.engine.alpha, s.engine.length); err != nil {
		return Report{}, fmt.Errorf("explain: %w", err)
	}
	set := Derive(history)
	scored := s.engine.Evaluate(set)
	SortScored(scored)
	rep := Report{Constraints: Sorted(set), Survivors: len(scored), Top: scored}
	if len(rep.Top) > k {
		rep.Top = rep.Top[:k]
	}
	if rep.Top == nil {
		rep.Top = []Scored{}
	}
	return rep, nil
}

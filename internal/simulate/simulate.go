// apps/go-solver/internal/simulate/simulate.go
//
// Replays the solver against a known answer: each turn the top suggestion is
// played, scored with the two-pass algorithm, and appended to the history.
// Useful for judging the ranking heuristic across a whole word list.

package simulate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrUnknownAnswer is returned when the answer is not in the solver's pool.
var ErrUnknownAnswer = errors.New("answer not in word pool")

// Result describes one simulated game.
type Result struct {
	Answer  string         `json:"answer"`
	Guesses []string       `json:"guesses"`
	Boards  []solver.Board `json:"boards"`
	Won     bool           `json:"won"`
}

// Play runs a game for answer with at most rows guesses.
func Play(s *solver.Solver, answer string, rows int) (Result, error) {
	answer = strings.ToLower(answer)
	pool := s.Engine().Pool()
	if i := sort.SearchStrings(pool, answer); i == len(pool) || pool[i] != answer {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAnswer, answer)
	}

	g := game.New(answer, rows)
	res := Result{Answer: g.Answer}
	for g.State() == game.StatePlaying {
		next, err := s.SolveK(g.Boards, 1)
		if err != nil {
			return res, err
		}
		if len(next) == 0 {
			// Only possible if the feedback contradicts itself.
			return res, fmt.Errorf("no candidates left after %d guesses", len(g.Boards))
		}
		if _, _, err := g.ApplyGuess(next[0]); err != nil {
			return res, err
		}
		res.Guesses = append(res.Guesses, next[0])
	}
	res.Boards = g.Boards
	res.Won = g.Won
	return res, nil
}

// Summary aggregates many games.
type Summary struct {
	Games        int         `json:"games"`
	Wins         int         `json:"wins"`
	Distribution map[int]int `json:"distribution"` // guesses → wins
	Failed       []string    `json:"failed,omitempty"`
}

// Average is the mean guess count over won games.
func (s Summary) Average() float64 {
	if s.Wins == 0 {
		return 0
	}
	total := 0
	for n, c := range s.Distribution {
		total += n * c
	}
	return float64(total) / float64(s.Wins)
}

// All plays every answer in turn. progress, if non-nil, is called after each
// game.
func All(s *solver.Solver, answers []string, rows int, progress func()) (Summary, error) {
	sum := Summary{Distribution: make(map[int]int)}
	for _, a := range answers {
		r, err := Play(s, a, rows)
		if err != nil {
			return sum, err
		}
		sum.Games++
		if r.Won {
			sum.Wins++
			sum.Distribution[len(r.Guesses)]++
		} else {
			sum.Failed = append(sum.Failed, a)
		}
		if progress != nil {
			progress()
		}
	}
	return sum, nil
}

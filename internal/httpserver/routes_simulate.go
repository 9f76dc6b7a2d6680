// apps/go-solver/internal/httpserver/routes_simulate.go
//
// Simulation routes, mounted under /simulate:
//   - GET /simulate?answer=crane → replay the solver against a chosen answer
//   - GET /simulate/daily        → replay against today's answer (?date=YYYY-MM-DD)
//
// The daily answer is picked deterministically from the solver's word pool
// with HMAC(salt, date), so every instance sharing a salt agrees on it.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/simulate"
)

// mountSimulate registers all /simulate routes.
func (s *Server) mountSimulate(r chi.Router) {
	r.Route("/simulate", func(r chi.Router) {
		r.Get("/", s.handleSimulate)
		r.Get("/daily", s.handleSimulateDaily)
	})
}

type dailyRes struct {
	Date   string          `json:"date"`
	Result simulate.Result `json:"result"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	answer := strings.TrimSpace(r.URL.Query().Get("answer"))
	if answer == "" {
		writeError(w, http.StatusBadRequest, "missing_answer", "")
		return
	}
	res, ok := s.play(w, answer)
	if ok {
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handleSimulateDaily(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", v)
			return
		}
		day = d
	}
	answer := simulate.DailyAnswer(day, s.cfg.Solver.DailySalt, s.solver.Engine().Pool())
	if answer == "" {
		writeError(w, http.StatusServiceUnavailable, "empty_pool", "")
		return
	}
	res, ok := s.play(w, answer)
	if ok {
		writeJSON(w, http.StatusOK, dailyRes{Date: simulate.DateKey(day), Result: res})
	}
}

func (s *Server) play(w http.ResponseWriter, answer string) (simulate.Result, bool) {
	start := time.Now()
	res, err := simulate.Play(s.solver, answer, s.cfg.Solver.MaxRows)
	if err != nil {
		if errors.Is(err, simulate.ErrUnknownAnswer) {
			writeError(w, http.StatusBadRequest, "unknown_answer", answer)
		} else {
			log.Error().Err(err).Str("answer", answer).Msg("simulate")
			writeError(w, http.StatusInternalServerError, "simulate_failed", "")
		}
		return res, false
	}
	log.Debug().Int("guesses", len(res.Guesses)).Bool("won", res.Won).Dur("took", time.Since(start)).Msg("simulate")
	return res, true
}

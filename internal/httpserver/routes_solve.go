// apps/go-solver/internal/httpserver/routes_solve.go
//
// Stateless solver endpoints:
//   - POST /solve   → ranked suggestions for a board history.
//   - POST /explain → constraints, survivor count and scored top list.
//
// Bodies are JSON ({"boards":[{"tiles":[...]}], "k": n}) by default. A
// Content-Type of application/msgpack switches /solve to the IPC wire format
// in both directions.

package httpserver

import (
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/ipc"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const msgpackType = "application/msgpack"

// solveReq is the JSON body shared by /solve and /explain.
type solveReq struct {
	Boards []solver.Board `json:"boards"`
	K      int            `json:"k"`
}

type solveRes struct {
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

func isMsgpack(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && (mt == msgpackType || mt == "application/x-msgpack")
}

// boardError maps solver validation errors to a 400 and reports whether it
// handled err.
func boardError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, solver.ErrBoardWidth),
		errors.Is(err, solver.ErrLetter),
		errors.Is(err, solver.ErrStatus):
		writeError(w, http.StatusBadRequest, "invalid_board", err.Error())
		return true
	}
	return false
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if isMsgpack(r) {
		s.handleSolveMsgpack(w, r)
		return
	}
	var req solveReq
	if !decodeJSON(w, r, &req) {
		return
	}
	start := time.Now()
	out, err := s.solver.SolveK(req.Boards, req.K)
	if err != nil {
		if !boardError(w, err) {
			writeError(w, http.StatusInternalServerError, "solve_failed", "")
		}
		return
	}
	if out == nil {
		out = []string{}
	}
	log.Debug().Int("rows", len(req.Boards)).Int("count", len(out)).Dur("took", time.Since(start)).Msg("solve")
	writeJSON(w, http.StatusOK, solveRes{Suggestions: out, Count: len(out)})
}

// handleSolveMsgpack serves /solve with ipc.Request / ipc.Response bodies.
func (s *Server) handleSolveMsgpack(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", msgpackType)
	var req ipc.Request
	if err := msgpack.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeMsgpack(w, http.StatusBadRequest, ipc.Error{E: "malformed request", Code: http.StatusBadRequest})
		return
	}
	history, err := ipc.ToBoards(req.Boards)
	if err != nil {
		writeMsgpack(w, http.StatusBadRequest, ipc.Error{ID: req.ID, E: err.Error(), Code: http.StatusBadRequest})
		return
	}
	start := time.Now()
	out, err := s.solver.SolveK(history, req.K)
	if err != nil {
		writeMsgpack(w, http.StatusBadRequest, ipc.Error{ID: req.ID, E: err.Error(), Code: http.StatusBadRequest})
		return
	}
	if out == nil {
		out = []string{}
	}
	writeMsgpack(w, http.StatusOK, ipc.Response{
		ID:     req.ID,
		Values: out,
		Count:  len(out),
		T:      time.Since(start).Microseconds(),
	})
}

func writeMsgpack(w http.ResponseWriter, status int, v any) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("msgpack encode")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeJSON(w, r, &req) {
		return
	}
	rep, err := s.solver.Explain(req.Boards, req.K)
	if err != nil {
		if !boardError(w, err) {
			writeError(w, http.StatusInternalServerError, "explain_failed", "")
		}
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// apps/go-solver/internal/httpserver/routes_sessions.go
//
// Board-session routes, mounted under /sessions:
//   - POST /sessions                  → start a session (one empty row)
//   - GET  /sessions/{id}             → current rows
//   - POST /sessions/{id}/letter      → {"index":i,"letter":"c"} ("" clears)
//   - POST /sessions/{id}/toggle      → {"index":i} cycles the tile status
//   - POST /sessions/{id}/next        → submit the row, open a new one
//   - GET  /sessions/{id}/suggestions → ranked suggestions for the rows (?k=)
//
// A session started by a signed-in user is only visible to that user.
// Suggestions are logged to the solves table (best effort).

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/auth"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/storage"
)

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/letter", s.handleSetLetter)
			r.Post("/toggle", s.handleToggle)
			r.Post("/next", s.handleNext)
			r.Get("/suggestions", s.handleSuggestions)
		})
	})
}

type tileReq struct {
	Index  int    `json:"index"`
	Letter string `json:"letter"`
}

type suggestionsRes struct {
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
	Survivors   int      `json:"survivors"`
}

func ownerOf(ctx context.Context) string {
	if me := auth.FromContext(ctx); me != nil {
		return me.ID
	}
	return ""
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(ownerOf(r.Context()), s.solver.Engine().Length())
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	log.Info().Str("session", sess.ID).Bool("guest", sess.OwnerID == "").Msg("session started")
	writeJSON(w, http.StatusCreated, sess)
}

// loadSession fetches the session named in the URL and hides sessions owned
// by someone else.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || (sess.OwnerID != "" && sess.OwnerID != ownerOf(r.Context())) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	return sess, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.loadSession(w, r); ok {
		writeJSON(w, http.StatusOK, sess)
	}
}

// editSession runs a read-modify-write cycle on the session under editMu.
func (s *Server) editSession(w http.ResponseWriter, r *http.Request, edit func(*session.Session) error) {
	s.editMu.Lock()
	defer s.editMu.Unlock()

	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	if err := edit(sess); err != nil {
		switch {
		case errors.Is(err, session.ErrPosition), errors.Is(err, solver.ErrLetter):
			writeError(w, http.StatusBadRequest, "invalid_tile", err.Error())
		case errors.Is(err, session.ErrLocked):
			writeError(w, http.StatusConflict, "locked", err.Error())
		case errors.Is(err, session.ErrIncomplete):
			writeError(w, http.StatusConflict, "incomplete_row", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "edit_failed", "")
		}
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSetLetter(w http.ResponseWriter, r *http.Request) {
	var req tileReq
	if !decodeJSON(w, r, &req) {
		return
	}
	var letter rune
	if req.Letter != "" {
		if utf8.RuneCountInString(req.Letter) != 1 {
			writeError(w, http.StatusBadRequest, "invalid_tile", "letter must be a single character")
			return
		}
		letter, _ = utf8.DecodeRuneInString(req.Letter)
	}
	alpha := s.solver.Engine().Alphabet()
	s.editSession(w, r, func(sess *session.Session) error {
		if letter != 0 && !alpha.Contains(letter) {
			return solver.ErrLetter
		}
		return sess.SetLetter(req.Index, letter)
	})
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req tileReq
	if !decodeJSON(w, r, &req) {
		return
	}
	s.editSession(w, r, func(sess *session.Session) error {
		_, err := sess.Toggle(req.Index)
		return err
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.editSession(w, r, func(sess *session.Session) error { return sess.Next() })
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	k := 0
	if v := r.URL.Query().Get("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_k", v)
			return
		}
		k = n
	}

	history := sess.History()
	rep, err := s.solver.Explain(history, k)
	if err != nil {
		if !boardError(w, err) {
			writeError(w, http.StatusInternalServerError, "solve_failed", "")
		}
		return
	}
	out := make([]string, len(rep.Top))
	for i, sc := range rep.Top {
		out[i] = sc.Word
	}

	entry := storage.Entry{
		SessionID:   sess.ID,
		UserID:      sess.OwnerID,
		Rows:        len(history),
		Constraints: len(rep.Constraints),
		Survivors:   rep.Survivors,
	}
	if len(out) > 0 {
		entry.TopWord = out[0]
	}
	if err := s.solves.Insert(r.Context(), entry); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("log solve")
	}

	writeJSON(w, http.StatusOK, suggestionsRes{Suggestions: out, Count: len(out), Survivors: rep.Survivors})
}

// apps/go-solver/internal/httpserver/routes_auth.go
//
// Account routes:
//   - POST /auth/signup, /auth/login → set the auth cookie, return the user
//   - POST /auth/logout              → clear the cookie
//   - GET  /auth/me                  → current user (auth required)
//   - GET  /history/mine             → recent session solves (auth required)

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/auth"
)

// credentials is the body of signup/login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// mountAuthRoutes registers authentication + gated routes.
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.With(s.auth.Require).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, auth.FromContext(r.Context()))
	})
	s.r.With(s.auth.Require).Get("/history/mine", s.handleHistory)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !decodeJSON(w, r, &body) {
		return
	}
	u, err := s.auth.Signup(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "username_taken", "")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_signup", err.Error())
		return
	}
	log.Info().Str("user", u.ID).Msg("signup")
	s.issueToken(w, u, http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !decodeJSON(w, r, &body) {
		return
	}
	u, err := s.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "")
		return
	}
	s.issueToken(w, u, http.StatusOK)
}

// issueToken signs a JWT for u, sets the cookie and echoes the token.
func (s *Server) issueToken(w http.ResponseWriter, u *auth.User, status int) {
	tok, exp, err := s.auth.Sign(u)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}
	s.auth.SetCookie(w, tok, exp)
	writeJSON(w, status, map[string]any{"user": u, "token": tok, "expiresAt": exp.UTC()})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	me := auth.FromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := s.solves.Recent(r.Context(), me.ID, limit)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("recent solves")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

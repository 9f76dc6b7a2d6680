// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints (optional auth): POST /solve, POST /explain.
//   - Board sessions (optional auth): /sessions/*, mounted from routes_sessions.go.
//   - Simulation endpoints: /simulate, /simulate/daily (routes_simulate.go).
//   - Auth + history endpoints: /auth/*, /history/mine (routes_auth.go).
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Every error body is JSON: {"error":"<code>"} plus an optional "detail".

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/auth"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/storage"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// Server bundles the router with the solver and its supporting stores.
type Server struct {
	r        *chi.Mux
	cfg      *config.Config
	solver   *solver.Solver
	dict     *words.Dictionary
	sessions session.Store
	auth     *auth.Service
	solves   *storage.SolveLog

	// serialises read-modify-write cycles on sessions
	editMu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
// db must already be migrated.
func New(cfg *config.Config, slv *solver.Solver, dict *words.Dictionary, st session.Store, db *sql.DB) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		solver:   slv,
		dict:     dict,
		sessions: st,
		auth: auth.NewService(db, auth.Config{
			Secret:     cfg.Auth.JWTSecret,
			ExpiryDays: cfg.Auth.ExpiryDays,
			CookieName: cfg.Auth.CookieName,
			Secure:     cfg.Auth.CookieSecure,
		}),
		solves: storage.NewSolveLog(db),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                          // add X-Request-ID
	s.r.Use(chimw.RealIP)                             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                                // one zerolog line per request
	s.r.Use(chimw.Recoverer)                          // recover from panics
	s.r.Use(chimw.Timeout(cfg.Server.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                          // default JSON responses
	s.r.Use(cors(cfg.Server.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve","POST /explain","/sessions/*","/simulate","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleDebugWords)

	// Solver endpoints: optional auth, guests can solve
	s.r.With(s.auth.Optional).Post("/solve", s.handleSolve)
	s.r.With(s.auth.Optional).Post("/explain", s.handleExplain)

	s.mountSessions(s.r.With(s.auth.Optional))
	s.mountSimulate(s.r)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug-level line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("req", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------- helpers -----------------------------------

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeError sends {"error":code,"detail":detail} with the given status.
func writeError(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: code, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return false
	}
	return true
}

// handleDebugWords reports dictionary counts; ?prefix= lists matching words.
func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	total, ofLength := s.dict.Stats(s.solver.Engine().Length())
	out := map[string]any{
		"total":    total,
		"length":   s.solver.Engine().Length(),
		"ofLength": ofLength,
		"pool":     s.solver.Engine().Size(),
	}
	if p := r.URL.Query().Get("prefix"); p != "" {
		out["matches"] = s.dict.WithPrefix(p, 20)
	}
	writeJSON(w, http.StatusOK, out)
}

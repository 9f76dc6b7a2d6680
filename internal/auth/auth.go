// apps/go-solver/internal/auth/auth.go
//
// Accounts and JWT authentication for the solver API.
// Responsibilities:
//   - User rows in sqlite with bcrypt password hashes.
//   - HS256 JWTs carried in an Authorization bearer header or a cookie.
//   - Middleware: Optional (decorate when a valid token is present) and
//     Require (401 otherwise).
//
// Guests can use every solver endpoint; an account only ties solve history
// to a stable identity.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrCredentials   = errors.New("invalid username or password")
	ErrInvalidToken  = errors.New("invalid token")
)

// User is the public view of an account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Config controls token signing and cookie attributes.
type Config struct {
	Secret     string
	ExpiryDays int
	CookieName string
	Secure     bool // production: Secure + SameSite=None cookies
}

// Service issues and verifies tokens against the users table.
type Service struct {
	db  *sql.DB
	cfg Config
	now func() time.Time
}

func NewService(db *sql.DB, cfg Config) *Service {
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = 14
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "solver_token"
	}
	return &Service{db: db, cfg: cfg, now: time.Now}
}

// ------------------------------- users -------------------------------------

// Signup validates input, checks uniqueness, hashes the password, and inserts a new user.
func (s *Service) Signup(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateSignup(username, password); err != nil {
		return nil, err
	}
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{ID: uuid.NewString(), Username: username, CreatedAt: s.now().UTC().Truncate(time.Second)}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, string(h), u.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	var (
		u       User
		hash    string
		created string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE lower(username)=lower(?)`,
		strings.TrimSpace(username)).Scan(&u.ID, &u.Username, &hash, &created)
	if err != nil {
		return nil, ErrCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrCredentials
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &u, nil
}

// UserByID loads a user or returns sql.ErrNoRows.
func (s *Service) UserByID(ctx context.Context, id string) (*User, error) {
	var (
		u       User
		created string
	)
	if err := s.db.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM users WHERE id=?`, id).Scan(&u.ID, &u.Username, &created); err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &u, nil
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3–24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return errors.New("password must be 8–100 chars")
	}
	return nil
}

// ------------------------------ JWT & cookies ------------------------------

// Sign creates an HS256 JWT for u and returns it with its expiry.
func (s *Service) Sign(u *User) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(time.Duration(s.cfg.ExpiryDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       u.ID,
		"username": u.Username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.Secret))
	return ss, exp, err
}

// Verify parses a token and returns the user it names, provided the user
// still exists.
func (s *Service) Verify(ctx context.Context, token string) (*User, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.UserByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// SetCookie writes the auth token cookie.
func (s *Service) SetCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, s.cookie(token, exp, 0))
}

// ClearCookie deletes the auth token cookie.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", time.Time{}, -1))
}

func (s *Service) cookie(value string, exp time.Time, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: sameSite,
		Expires:  exp,
		MaxAge:   maxAge,
	}
}

// tokenFrom extracts a bearer token from the Authorization header or the auth cookie.
func (s *Service) tokenFrom(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// ---------------------------- middleware -----------------------------------

type ctxUserKey struct{}

// FromContext returns the authenticated user, or nil for guests.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(ctxUserKey{}).(*User)
	return u
}

// WithUser returns ctx carrying u.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, u)
}

// Optional decorates requests with the user when a valid token is present.
// It never rejects a request.
func (s *Service) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := s.tokenFrom(r); tok != "" {
			if u, err := s.Verify(r.Context(), tok); err == nil {
				r = r.WithContext(WithUser(r.Context(), u))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Require enforces a valid token and injects the user into the request context.
func (s *Service) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := s.tokenFrom(r)
		if tok == "" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		u, err := s.Verify(r.Context(), tok)
		if err != nil {
			http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

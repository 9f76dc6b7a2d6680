package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db, assets.Migrations()); err != nil {
		t.Fatal(err)
	}
	return NewService(db, Config{Secret: "test-secret"})
}

func TestSignupLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	u, err := s.Signup(ctx, "  solver_fan ", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "solver_fan" {
		t.Errorf("username not trimmed: %q", u.Username)
	}
	if _, err := s.Signup(ctx, "SOLVER_FAN", "another pass"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate signup: got %v, want ErrUsernameTaken", err)
	}
	if _, err := s.Login(ctx, "solver_fan", "wrong password"); !errors.Is(err, ErrCredentials) {
		t.Errorf("bad password: got %v, want ErrCredentials", err)
	}
	got, err := s.Login(ctx, "Solver_Fan", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Errorf("login returned %s, want %s", got.ID, u.ID)
	}
}

func TestSignupValidation(t *testing.T) {
	s := newService(t)
	for _, tc := range []struct{ user, pass string }{
		{"ab", "longenough"},
		{"has space", "longenough"},
		{"fine_name", "short"},
	} {
		if _, err := s.Signup(context.Background(), tc.user, tc.pass); err == nil {
			t.Errorf("Signup(%q, %q) should fail", tc.user, tc.pass)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	u, err := s.Signup(ctx, "tokenuser", "password123")
	if err != nil {
		t.Fatal(err)
	}
	tok, _, err := s.Sign(u)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Verify(ctx, tok)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Errorf("Verify = %s, want %s", got.ID, u.ID)
	}

	other := NewService(nil, Config{Secret: "different"})
	if _, err := other.Verify(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign secret: got %v, want ErrInvalidToken", err)
	}
}

func TestMiddleware(t *testing.T) {
	s := newService(t)
	u, err := s.Signup(context.Background(), "middle", "password123")
	if err != nil {
		t.Fatal(err)
	}
	tok, _, _ := s.Sign(u)

	var seen *User
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	})

	// Optional: guests pass through without a user.
	rec := httptest.NewRecorder()
	s.Optional(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || seen != nil {
		t.Fatalf("guest: code=%d user=%v", rec.Code, seen)
	}

	// Require: rejects guests.
	rec = httptest.NewRecorder()
	s.Require(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("require guest: code=%d", rec.Code)
	}

	// Require: accepts a cookie token.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "solver_token", Value: tok})
	rec = httptest.NewRecorder()
	s.Require(h).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || seen == nil || seen.ID != u.ID {
		t.Fatalf("require cookie: code=%d user=%v", rec.Code, seen)
	}

	// Optional: bearer header.
	seen = nil
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	s.Optional(h).ServeHTTP(httptest.NewRecorder(), req)
	if seen == nil || seen.ID != u.ID {
		t.Fatalf("optional bearer: user=%v", seen)
	}
}

package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SOLVER_CONFIG", "PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "WORDS_FILE", "WORD_LENGTH",
		"TOP_K", "DB_PATH", "JWT_SECRET", "JWT_EXPIRES_DAYS", "COOKIE_NAME", "DAILY_SALT",
		"REQUEST_TIMEOUT", "NODE_ENV",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "solver.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
[server]
port = "9000"
request_timeout = "3s"

[solver]
top_k = 7
word_length = 6

[storage]
db_path = "/tmp/x.db"

[extra]
thing = 1
`)
	t.Setenv("TOP_K", "12")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Server.Port = "9000"
	want.Server.RequestTimeout = 3 * time.Second
	want.Solver.TopK = 12
	want.Solver.WordLength = 6
	want.Storage.DBPath = "/tmp/x.db"
	if !slices.Contains(cfg.Unknown, "extra.thing") {
		t.Errorf("Unknown = %v, want extra.thing listed", cfg.Unknown)
	}
	want.Unknown = cfg.Unknown
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadFromSolverConfigEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLVER_CONFIG", writeFile(t, "[auth]\ncookie_name = \"c\"\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Auth.CookieName != "c" {
		t.Errorf("CookieName = %q", cfg.Auth.CookieName)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad toml", file: "[server\nport = 1"},
		{name: "bad int env", env: map[string]string{"WORD_LENGTH": "five"}},
		{name: "zero length", env: map[string]string{"WORD_LENGTH": "0"}},
		{name: "negative k", file: "[solver]\ntop_k = -1\n"},
		{name: "bad timeout", env: map[string]string{"REQUEST_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestProductionCookie(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Auth.CookieSecure {
		t.Error("cookie should be secure in production")
	}
}

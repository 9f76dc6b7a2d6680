// apps/go-solver/internal/config/config.go
//
// Runtime configuration for the solver server and CLI.
// Sources, lowest priority first:
//   1. Built-in defaults (Default).
//   2. Optional TOML file (path from SOLVER_CONFIG or the -config flag).
//   3. Environment variables (after godotenv has loaded .env).
//
// A missing config file is not an error; a malformed one is.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds every section.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Solver  SolverConfig  `toml:"solver"`
	Auth    AuthConfig    `toml:"auth"`
	Storage StorageConfig `toml:"storage"`

	// Unknown lists keys in the file that matched no field.
	Unknown []string `toml:"-"`
}

// ServerConfig holds HTTP options.
type ServerConfig struct {
	Port           string        `toml:"port"`
	LogLevel       string        `toml:"log_level"`
	ClientOrigin   string        `toml:"client_origin"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// SolverConfig holds dictionary and ranking options.
type SolverConfig struct {
	WordsFile  string `toml:"words_file"`
	WordLength int    `toml:"word_length"`
	TopK       int    `toml:"top_k"`
	MaxRows    int    `toml:"max_rows"`
	DailySalt  string `toml:"daily_salt"`
}

// AuthConfig holds JWT/cookie options.
type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret"`
	ExpiryDays   int    `toml:"jwt_expires_days"`
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
}

// StorageConfig holds the sqlite location.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "5175",
			LogLevel:       "info",
			ClientOrigin:   "http://localhost:5173",
			RequestTimeout: 10 * time.Second,
		},
		Solver: SolverConfig{
			WordLength: 5,
			TopK:       20,
			MaxRows:    6,
			DailySalt:  "wordle-solver",
		},
		Auth: AuthConfig{
			JWTSecret:  "dev_secret_change_me",
			ExpiryDays: 14,
			CookieName: "solver_token",
		},
		Storage: StorageConfig{
			DBPath: "data/solver.db",
		},
	}
}

// LoadDotenv loads .env into the process environment if present.
func LoadDotenv() {
	_ = godotenv.Load()
}

// Load builds the configuration from defaults, the TOML file at path (if it
// exists) and the environment. An empty path falls back to SOLVER_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("SOLVER_CONFIG")
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		c.Unknown = append(c.Unknown, k.String())
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.LogLevel = getEnv("LOG_LEVEL", c.Server.LogLevel)
	c.Server.ClientOrigin = getEnv("CLIENT_ORIGIN", c.Server.ClientOrigin)
	c.Solver.WordsFile = getEnv("WORDS_FILE", c.Solver.WordsFile)
	c.Solver.DailySalt = getEnv("DAILY_SALT", c.Solver.DailySalt)
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.CookieName = getEnv("COOKIE_NAME", c.Auth.CookieName)
	c.Storage.DBPath = getEnv("DB_PATH", c.Storage.DBPath)
	if os.Getenv("NODE_ENV") == "production" {
		c.Auth.CookieSecure = true
	}

	var err error
	if c.Solver.WordLength, err = envInt("WORD_LENGTH", c.Solver.WordLength); err != nil {
		return err
	}
	if c.Solver.TopK, err = envInt("TOP_K", c.Solver.TopK); err != nil {
		return err
	}
	if c.Auth.ExpiryDays, err = envInt("JWT_EXPIRES_DAYS", c.Auth.ExpiryDays); err != nil {
		return err
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.Server.RequestTimeout = d
	}
	return nil
}

// Validate rejects values the solver cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Solver.WordLength <= 0:
		return fmt.Errorf("word_length must be positive, got %d", c.Solver.WordLength)
	case c.Solver.TopK <= 0:
		return fmt.Errorf("top_k must be positive, got %d", c.Solver.TopK)
	case c.Solver.MaxRows <= 0:
		return fmt.Errorf("max_rows must be positive, got %d", c.Solver.MaxRows)
	case c.Server.RequestTimeout <= 0:
		return fmt.Errorf("request_timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

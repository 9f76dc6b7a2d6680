// apps/go-solver/main.go
//
// Entry point for the solver HTTP service.
// Startup order:
//   - .env, then config (TOML file + environment overrides).
//   - Log level.
//   - Dictionary (WORDS_FILE or the embedded list) and solver engine.
//   - SQLite database + embedded migrations.
//   - HTTP server.

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/storage"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	config.LoadDotenv()
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Server.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	for _, k := range cfg.Unknown {
		log.Warn().Str("key", k).Msg("unknown config key")
	}

	if err := words.Init(cfg.Solver.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	dict := words.Default()
	engine := solver.NewEngine(solver.English, cfg.Solver.WordLength, dict.Words(cfg.Solver.WordLength))
	if engine.Size() == 0 {
		log.Fatal().Int("length", cfg.Solver.WordLength).Msg("no words of configured length")
	}
	slv := solver.New(engine, cfg.Solver.TopK)
	log.Info().Int("words", dict.Len()).Int("pool", engine.Size()).Int("length", engine.Length()).Msg("dictionary loaded")

	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := storage.Migrate(db, assets.Migrations()); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(cfg, slv, dict, session.NewMemoryStore(), db)
	log.Info().Str("port", cfg.Server.Port).Msg("starting go-solver")
	if err := srv.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

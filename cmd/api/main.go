// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Chitalka HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/taibuivan/chitalka/internal/api"
	"github.com/taibuivan/chitalka/internal/catalog/artwork"
	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/catalog/genre"
	"github.com/taibuivan/chitalka/internal/catalog/search"
	"github.com/taibuivan/chitalka/internal/feedback"
	"github.com/taibuivan/chitalka/internal/library"
	"github.com/taibuivan/chitalka/internal/platform/config"
	"github.com/taibuivan/chitalka/internal/platform/constants"
	"github.com/taibuivan/chitalka/internal/platform/migration"
	pgstore "github.com/taibuivan/chitalka/internal/platform/postgres"
	redisstore "github.com/taibuivan/chitalka/internal/platform/redis"
	"github.com/taibuivan/chitalka/internal/platform/sec"
	"github.com/taibuivan/chitalka/internal/users/auth"
	"github.com/taibuivan/chitalka/internal/users/settings"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "chitalka"))
	slog.SetDefault(log)

	log.Info("[Chitalka] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env file is a development convenience; in production the
	// variables come from the orchestrator.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "chitalka"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	// The library service doubles as the reading-progress source for the
	// catalog pages: last read book per author, read percent per artwork.
	libraryRepository := library.NewPostgresRepository(pool)
	libraryService := library.NewService(libraryRepository, log)
	libraryHandler := library.NewHandler(libraryService)

	authorRepository := author.NewPostgresRepository(pool)
	authorService := author.NewService(authorRepository, libraryService, log)
	authorHandler := author.NewHandler(authorService)

	artworkRepository := artwork.NewPostgresRepository(pool)
	artworkService := artwork.NewService(artworkRepository, libraryService, log)
	artworkHandler := artwork.NewHandler(artworkService)

	genreRepository := genre.NewPostgresRepository(pool)
	genreService := genre.NewService(genreRepository)
	genreHandler := genre.NewHandler(genreService)

	searchService := search.NewService(authorRepository, artworkService)
	searchHandler := search.NewHandler(searchService)

	settingsRepository := settings.NewPostgresRepository(pool)
	settingsService := settings.NewService(settingsRepository)
	settingsHandler := settings.NewHandler(settingsService)

	feedbackRepository := feedback.NewPostgresRepository(pool)
	feedbackService := feedback.NewService(feedbackRepository, log)
	feedbackHandler := feedback.NewHandler(feedbackService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Author:    authorHandler,
		Artwork:   artworkHandler,
		Genre:     genreHandler,
		Search:    searchHandler,
		Library:   libraryHandler,
		Settings:  settingsHandler,
		Feedback:  feedbackHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

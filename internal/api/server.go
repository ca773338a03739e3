// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/chitalka/internal/catalog/artwork"
	"github.com/taibuivan/chitalka/internal/catalog/author"
	"github.com/taibuivan/chitalka/internal/catalog/genre"
	"github.com/taibuivan/chitalka/internal/catalog/search"
	"github.com/taibuivan/chitalka/internal/feedback"
	"github.com/taibuivan/chitalka/internal/library"
	"github.com/taibuivan/chitalka/internal/platform/config"
	"github.com/taibuivan/chitalka/internal/platform/constants"
	"github.com/taibuivan/chitalka/internal/platform/middleware"
	"github.com/taibuivan/chitalka/internal/users/auth"
	"github.com/taibuivan/chitalka/internal/users/settings"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles account routes (register, login, token refresh, password reset).
	Auth *auth.Handler

	// Author serves the author browse pages of the catalog.
	Author *author.Handler

	// Artwork serves the book browse and filter pages of the catalog.
	Artwork *artwork.Handler

	// Genre serves the genre reference list and per-genre counts.
	Genre *genre.Handler

	// Search serves the combined author/book search.
	Search *search.Handler

	// Library handles the per-user reading list and progress tracking.
	Library *library.Handler

	// Settings handles per-user reader preferences.
	Settings *settings.Handler

	// Feedback handles reader feedback submission and staff triage.
	Feedback *feedback.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Catalog browsing and search are open to anonymous readers.
		// Authenticated readers get the same pages annotated with their
		// reading progress.
		h.Author.RegisterRoutes(api)
		h.Artwork.RegisterRoutes(api)
		h.Genre.RegisterRoutes(api)
		h.Search.RegisterRoutes(api)

		// Everything personal sits behind authentication.
		api.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth)
			h.Library.RegisterRoutes(private)
			h.Settings.RegisterRoutes(private)
			h.Feedback.RegisterRoutes(private)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}

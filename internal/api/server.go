// Copyright (c) 2026 Fondren Library. All rights reserved.

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

	"github.com/fondrenlibrary/name-authority/internal/auth"
	"github.com/fondrenlibrary/name-authority/internal/identifier"
	"github.com/fondrenlibrary/name-authority/internal/location"
	"github.com/fondrenlibrary/name-authority/internal/name"
	"github.com/fondrenlibrary/name-authority/internal/note"
	"github.com/fondrenlibrary/name-authority/internal/platform/config"
	"github.com/fondrenlibrary/name-authority/internal/platform/constants"
	"github.com/fondrenlibrary/name-authority/internal/platform/middleware"
	"github.com/fondrenlibrary/name-authority/internal/variant"
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

	// Auth handles the operator login.
	Auth *auth.Handler

	// Name handles the authority records and the read endpoints built on
	// the visible set (search, stats, map, label resolution, export).
	Name *name.Handler

	// Identifier handles per-name identifiers and the type catalog.
	Identifier *identifier.Handler

	// Note handles per-name annotations.
	Note *note.Handler

	// Variant handles per-name alternate forms.
	Variant *variant.Handler

	// Location handles per-name coordinates.
	Location *location.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
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
		api.Route("/auth", h.Auth.RegisterRoutes)

		api.Route("/names", func(names chi.Router) {
			h.Name.RegisterRoutes(names)
			names.Route("/{nameID}/identifiers", h.Identifier.RegisterRoutes)
			names.Route("/{nameID}/notes", h.Note.RegisterRoutes)
			names.Route("/{nameID}/variants", h.Variant.RegisterRoutes)
			names.Route("/{nameID}/locations", h.Location.RegisterRoutes)
		})

		api.Route("/identifier-types", h.Identifier.RegisterTypeRoutes)

		api.Get("/stats", h.Name.Stats)
		api.Get("/map.json", h.Name.MapJSON)
		api.Get("/label/{label}", h.Name.ResolveLabel)
		api.Get("/export", h.Name.Export)
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
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

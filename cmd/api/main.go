// Copyright (c) 2026 Fondren Library. All rights reserved.

// Command api is the entry point for the name authority HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis (geocoder response cache).
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

	"github.com/fondrenlibrary/name-authority/internal/api"
	"github.com/fondrenlibrary/name-authority/internal/auth"
	"github.com/fondrenlibrary/name-authority/internal/identifier"
	"github.com/fondrenlibrary/name-authority/internal/location"
	"github.com/fondrenlibrary/name-authority/internal/name"
	"github.com/fondrenlibrary/name-authority/internal/note"
	"github.com/fondrenlibrary/name-authority/internal/platform/config"
	"github.com/fondrenlibrary/name-authority/internal/platform/constants"
	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
	"github.com/fondrenlibrary/name-authority/internal/platform/migration"
	pgstore "github.com/fondrenlibrary/name-authority/internal/platform/postgres"
	redisstore "github.com/fondrenlibrary/name-authority/internal/platform/redis"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
	"github.com/fondrenlibrary/name-authority/internal/ticket"
	"github.com/fondrenlibrary/name-authority/internal/variant"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
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

	// ── 6. Token Service + Operator Accounts ──────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	accounts := []auth.Account{
		{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash, Role: sec.RoleAdmin},
	}
	if cfg.EditorUsername != "" {
		accounts = append(accounts, auth.Account{
			Username:     cfg.EditorUsername,
			PasswordHash: cfg.EditorPasswordHash,
			Role:         sec.RoleEditor,
		})
	}

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
	geocoder := geocode.NewClient(cfg.GeocodeEndpoint, cfg.GeocodeAPIKey, rdb, log)

	locationService := location.NewService(location.NewPostgresRepository(pool), nil, log)
	nameService := name.NewService(
		name.NewPostgresRepository(pool),
		ticket.NewPostgresAllocator(pool),
		locationService,
		geocoder,
		log,
	)
	locationService.SetNameResolver(nameService)

	identifierService := identifier.NewService(identifier.NewPostgresRepository(pool), nameService, log)
	noteService := note.NewService(note.NewPostgresRepository(pool), nameService, log)
	variantService := variant.NewService(variant.NewPostgresRepository(pool), nameService, log)
	authService := auth.NewService(accounts, jwtSvc, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Name:       name.NewHandler(nameService),
		Identifier: identifier.NewHandler(identifierService),
		Note:       note.NewHandler(noteService),
		Variant:    variant.NewHandler(variantService),
		Location:   location.NewHandler(locationService),
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

// Copyright (c) 2026 Creata. All rights reserved.

// Command api is the entry point for the Creata HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect storage: PostgreSQL + Redis, or the seeded memory backend.
//  4. Run database migrations (idempotent, postgres only).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/creata-app/creata/internal/api"
	"github.com/creata-app/creata/internal/core/asset"
	"github.com/creata-app/creata/internal/core/work"
	"github.com/creata-app/creata/internal/platform/config"
	"github.com/creata-app/creata/internal/platform/constants"
	"github.com/creata-app/creata/internal/platform/migration"
	pgstore "github.com/creata-app/creata/internal/platform/postgres"
	redisstore "github.com/creata-app/creata/internal/platform/redis"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/internal/users/account"
	"github.com/creata-app/creata/internal/users/auth"
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
		slog.String("storage_backend", cfg.StorageBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	var (
		workRepository  work.Repository
		assetRepository asset.Repository
		userRepository  auth.UserRepository
		resetTokens     auth.ResetTokenRepository
		healthDeps      api.HealthDependencies
	)

	if cfg.UsesMemoryBackend() {
		log.Info("memory_backend_selected")

		demoUsers, err := auth.DemoUsers()
		must(log, err, "seed demo users")

		workRepository = work.NewMemoryRepository(work.DemoWorks())
		assetRepository = asset.NewMemoryRepository(asset.DemoAssets())
		userRepository = auth.NewMemoryUserRepository(demoUsers)
		resetTokens = auth.NewMemoryResetTokenRepository()
	} else {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		// ── 4. Migrations ─────────────────────────────────────────────────
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		workRepository = work.NewCachedRepository(work.NewPostgresRepository(pool), rdb, log)
		assetRepository = asset.NewPostgresRepository(pool)
		userRepository = auth.NewPostgresUserRepository(pool)
		resetTokens = auth.NewRedisResetTokenRepository(rdb)

		healthDeps = api.HealthDependencies{
			CheckDatabase: func() error {
				return pgstore.Ping(context.Background(), pool)
			},
			CheckCache: func() error {
				return redisstore.Ping(context.Background(), rdb)
			},
		}
	}

	// ── 5. Token Service ──────────────────────────────────────────────────
	jwtService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 6. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(userRepository, resetTokens, jwtService, log)
	accountService := account.NewService(userRepository, log)
	workService := work.NewService(workRepository, log)
	assetService := asset.NewService(assetRepository, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, jwtService),
		Account:   account.NewHandler(accountService, jwtService),
		Work:      work.NewHandler(workService, jwtService),
		Asset:     asset.NewHandler(assetService, jwtService),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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

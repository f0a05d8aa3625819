// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Command api is the entry point for the Vitalis HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Restore the persisted session and wire the session manager.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/vitalis-health/vitalis/internal/api"
	"github.com/vitalis-health/vitalis/internal/credential"
	"github.com/vitalis-health/vitalis/internal/health/activity"
	"github.com/vitalis-health/vitalis/internal/health/assistant"
	"github.com/vitalis-health/vitalis/internal/health/facility"
	"github.com/vitalis-health/vitalis/internal/health/insurance"
	"github.com/vitalis-health/vitalis/internal/health/records"
	"github.com/vitalis-health/vitalis/internal/notify"
	"github.com/vitalis-health/vitalis/internal/platform/config"
	"github.com/vitalis-health/vitalis/internal/platform/constants"
	"github.com/vitalis-health/vitalis/internal/platform/migration"
	pgstore "github.com/vitalis-health/vitalis/internal/platform/postgres"
	redisstore "github.com/vitalis-health/vitalis/internal/platform/redis"
	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "vitalis"))
	slog.SetDefault(log)

	log.Info("[Vitalis] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "vitalis"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("demo_mode", cfg.DemoMode),
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

	// ── 6. Session Machinery ──────────────────────────────────────────────
	tickets, err := sec.NewTicketService(cfg.SessionSecret, constants.TicketIssuer)
	must(log, err, "initialize ticket service")

	// Demo mode serves the seeded in-memory accounts; otherwise accounts
	// live in the database behind bcrypt.
	var validator session.Validator
	if cfg.DemoMode {
		validator = credential.NewDemoValidator()
	} else {
		validator = credential.NewPostgresValidator(pool)
	}

	center := notify.NewCenter(log)
	navigation := session.NewNavigationLog(log)
	sessionStore := session.NewRedisStore(rdb, log)
	routes := session.RouteSet{
		Login:    constants.RouteLogin,
		Register: constants.RouteRegister,
		Landing:  constants.RouteDashboard,
	}

	// NewManager restores any persisted session before returning, so the
	// route guard never sees an unsettled state.
	manager := session.NewManager(startupCtx, sessionStore, validator, center, navigation, routes, log)
	guard := session.NewGuard(routes)

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
	activityService := activity.NewService(activity.NewPostgresRepository(pool), log)
	recordsService := records.NewService(records.NewPostgresRepository(pool), log)
	insuranceService := insurance.NewService(insurance.NewPostgresRepository(pool), log)
	facilityService := facility.NewService(facility.NewPostgresRepository(pool), log)
	assistantService := assistant.NewService(log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Session:       session.NewHandler(manager, tickets, cfg.IsProduction()),
		Activity:      activity.NewHandler(activityService),
		Records:       records.NewHandler(recordsService),
		Insurance:     insurance.NewHandler(insuranceService),
		Facility:      facility.NewHandler(facilityService),
		Assistant:     assistant.NewHandler(assistantService),
		Notifications: notify.NewHandler(center),
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, manager, guard, tickets, handlers)

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

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route surface:

  - Public: /, /login, /register, /logout, /session, /health, /ready.
  - Guarded: everything under /dashboard, behind the session route guard.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vitalis-health/vitalis/internal/health/activity"
	"github.com/vitalis-health/vitalis/internal/health/assistant"
	"github.com/vitalis-health/vitalis/internal/health/facility"
	"github.com/vitalis-health/vitalis/internal/health/insurance"
	"github.com/vitalis-health/vitalis/internal/health/records"
	"github.com/vitalis-health/vitalis/internal/notify"
	"github.com/vitalis-health/vitalis/internal/platform/config"
	"github.com/vitalis-health/vitalis/internal/platform/constants"
	"github.com/vitalis-health/vitalis/internal/platform/ctxutil"
	"github.com/vitalis-health/vitalis/internal/platform/middleware"
	"github.com/vitalis-health/vitalis/internal/platform/respond"
	"github.com/vitalis-health/vitalis/internal/session"
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

	// Session handles the authentication routes (login, register, logout)
	// and the session state endpoint.
	Session *session.Handler

	// Activity serves today's metric snapshot and the activity feed.
	Activity *activity.Handler

	// Records serves visit history, vaccine records, and allergies.
	Records *records.Handler

	// Insurance serves the plan summary and the claims list.
	Insurance *insurance.Handler

	// Facility serves the nearby hospitals and pharmacies directory.
	Facility *facility.Handler

	// Assistant serves the health chat thread.
	Assistant *assistant.Handler

	// Notifications exposes the recent toast backlog.
	Notifications *notify.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	context context.Context,
	cfg *config.Config,
	log *slog.Logger,
	manager *session.Manager,
	guard session.Guard,
	verifier middleware.TicketVerifier,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Public Surface
	// The root is a convenience redirect to the dashboard; the guard takes
	// over from there.
	r.Get(constants.RouteRoot, func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, constants.RouteDashboard, http.StatusFound)
	})
	h.Session.Mount(r)

	// # Guarded Surface
	// Everything nested under /dashboard renders only for an established
	// session with a valid browser ticket.
	r.Route(constants.RouteDashboard, func(dashboard chi.Router) {
		dashboard.Use(middleware.SessionGuard(manager, guard, verifier))

		dashboard.Get("/", dashboardShell(manager))

		dashboard.Route("/activity", h.Activity.RegisterRoutes)
		dashboard.Route("/records", h.Records.RegisterRoutes)
		dashboard.Route("/insurance", h.Insurance.RegisterRoutes)
		dashboard.Route("/services", h.Facility.RegisterRoutes)
		dashboard.Route("/assistant", h.Assistant.RegisterRoutes)
		dashboard.Route("/notifications", h.Notifications.RegisterRoutes)
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

// dashboardShell handles GET /dashboard: the landing payload listing the
// signed-in identity and the surfaces nested below.
func dashboardShell(manager *session.Manager) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		identity := manager.Snapshot().Identity

		greeting := "Welcome back"
		if claims := ctxutil.GetSession(request.Context()); claims != nil && claims.DisplayName != "" {
			greeting = "Welcome back, " + firstName(claims.DisplayName)
		}

		respond.OK(writer, map[string]any{
			constants.FieldIdentity: identity,
			"greeting":              greeting,
			"surfaces": []string{
				constants.RouteDashboard + "/activity",
				constants.RouteDashboard + "/records/visits",
				constants.RouteDashboard + "/records/vaccines",
				constants.RouteDashboard + "/records/allergies",
				constants.RouteDashboard + "/insurance",
				constants.RouteDashboard + "/services",
				constants.RouteDashboard + "/assistant",
				constants.RouteDashboard + "/notifications",
			},
		})
	}
}

// firstName returns the leading word of a display name.
func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
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

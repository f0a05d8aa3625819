// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

/*
Package constants centralizes immutable values shared across Vitalis layers.

It keeps server timings, rate limits, route targets, and cross-cutting keys in
one place so the session manager, route guard, and transport layer always
agree on them.

Categories:

  - Server Timing: read/write/idle timeouts for the HTTP server.
  - Routing: the route surface the session manager and guard navigate between.
  - Session: cookie naming and the durable session slot key.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vitalis-api"
	AppVersion = "0.2.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out response writes.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests may finish during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often idle IP entries are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long an IP must be idle before its entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Route Surface

// The session manager navigates between these targets and the route guard
// redirects to them. They must stay in sync with the registered router paths.
const (
	// RouteRoot is the landing path; authenticated visits bounce to RouteDashboard.
	RouteRoot = "/"

	// RouteLogin is the public sign-in route and the guard's redirect target.
	RouteLogin = "/login"

	// RouteRegister is the public account creation route.
	RouteRegister = "/register"

	// RouteDashboard is the protected landing route after a successful login.
	RouteDashboard = "/dashboard"
)

// # Session

const (
	// TicketIssuer is the 'iss' claim stamped into session tickets.
	TicketIssuer = "vitalis.health"

	// SessionTicketTTL is how long a signed session ticket stays acceptable.
	// Generous because the dashboard is a single-owner deployment.
	SessionTicketTTL = 30 * 24 * time.Hour

	// SessionCookieName is the cookie carrying the signed session ticket.
	SessionCookieName = "vitalis_session"

	// SessionCookiePath scopes the session cookie to the whole dashboard.
	SessionCookiePath = "/"

	// SessionSlotKey is the durable key-value slot holding the serialized
	// identity of the current session.
	SessionSlotKey = "session:current"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldData       = "data"
	FieldError      = "error"
	FieldCode       = "code"
	FieldMessage    = "message"
	FieldStatus     = "status"
	FieldIdentity   = "identity"
	FieldRedirectTo = "redirect_to"
)

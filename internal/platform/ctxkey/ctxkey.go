// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// Per-request values (session claims, request ID, logger) are stored under an
// unexported key type. Even if a third-party package stores a value under the
// same string, Go's [context.Context] lookup compares the type as well, so no
// collision is possible.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeySession is the context key for the verified session ticket claims.
	KeySession key = "session"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package credential implements the validators behind the session manager:
// pure account checks that either return an identity or a typed rejection,
// with no session state of their own.
package credential

import (
	"github.com/vitalis-health/vitalis/internal/platform/apperr"
)

// # Providers

// The fixed set of federated providers. There is no outbound call behind
// these; each maps to a stable identity.
const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// # Rejections

var (
	// ErrInvalidCredentials is returned for a wrong email/password pair. The
	// message is deliberately vague so it never confirms which half failed.
	ErrInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

	// ErrDuplicateEmail is returned when registering an email that already
	// has an account.
	ErrDuplicateEmail = apperr.Conflict("Email is already registered")
)

// unknownProvider builds the rejection for a provider outside the fixed set.
func unknownProvider(provider string) *apperr.AppError {
	return apperr.NotFound("provider " + provider)
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package dberr bridges low-level database errors and application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vitalis-health/vitalis/internal/platform/apperr"
)

// ErrNotFound is the standard error for a queried row that does not exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and maps it to a meaningful [apperr.AppError],
// hiding storage internals from the client.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	return apperr.Internal(err)
}

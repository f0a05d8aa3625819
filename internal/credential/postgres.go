// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package credential

import (
	"errors"
	"fmt"
	"strings"
	"time"

	stdctx "context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/session"
	"github.com/vitalis-health/vitalis/pkg/avatar"
	"github.com/vitalis-health/vitalis/pkg/uuid"
)

// # Postgres Validator

// uniqueViolation is the Postgres error code raised by the account email
// unique constraint.
const uniqueViolation = "23505"

// PostgresValidator backs the session manager with the account table. It is
// the production counterpart of [DemoValidator]: bcrypt secrets, durable
// accounts, the same fixed federated identities.
type PostgresValidator struct {
	pool *pgxpool.Pool
}

// NewPostgresValidator creates a [PostgresValidator] on the shared pool.
func NewPostgresValidator(pool *pgxpool.Pool) *PostgresValidator {
	return &PostgresValidator{pool: pool}
}

/*
ValidatePassword matches a submitted email/password pair against the account
table.

Description: Looks the account up by email (case-insensitive) and verifies the
submitted password against the stored bcrypt hash. Both a missing account and
a wrong password collapse into the same rejection.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - session.Identity: Hydrated identity on success
  - error: ErrInvalidCredentials or connectivity errors
*/
func (validator *PostgresValidator) ValidatePassword(context stdctx.Context, email, password string) (session.Identity, error) {
	const query = `
		SELECT id, name, email, passwordhash, avatarurl
		FROM account
		WHERE lower(email) = lower($1)`

	var (
		identity session.Identity
		hash     string
	)
	err := validator.pool.QueryRow(context, query, email).Scan(
		&identity.ID,
		&identity.Name,
		&identity.Email,
		&hash,
		&identity.Avatar,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Identity{}, ErrInvalidCredentials
		}
		return session.Identity{}, fmt.Errorf("postgres_validator_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(password, hash) {
		return session.Identity{}, ErrInvalidCredentials
	}

	return identity, nil
}

/*
ValidateRegistration creates a new account row.

Description: Hashes the password with bcrypt, derives the avatar from the
display name, and inserts the account. The email unique constraint is the
single source of truth for duplicates; a violation maps to ErrDuplicateEmail.

Parameters:
  - context: context.Context
  - name: string
  - email: string
  - password: string

Returns:
  - session.Identity: The freshly created identity
  - error: ErrDuplicateEmail or connectivity errors
*/
func (validator *PostgresValidator) ValidateRegistration(context stdctx.Context, name, email, password string) (session.Identity, error) {
	const query = `
		INSERT INTO account (id, name, email, passwordhash, avatarurl, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	hash, err := sec.HashPassword(password)
	if err != nil {
		return session.Identity{}, fmt.Errorf("postgres_validator_hash_failed: %w", err)
	}

	identity := session.Identity{
		ID:     uuid.New(),
		Name:   name,
		Email:  strings.ToLower(email),
		Avatar: avatar.FromName(name),
	}

	_, err = validator.pool.Exec(context, query,
		identity.ID,
		identity.Name,
		identity.Email,
		hash,
		identity.Avatar,
		time.Now(),
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return session.Identity{}, ErrDuplicateEmail
		}
		return session.Identity{}, fmt.Errorf("postgres_validator_insert_failed: %w", err)
	}

	return identity, nil
}

// ValidateFederated returns the fixed identity for a known provider. The
// provider set does not depend on the backing store.
func (validator *PostgresValidator) ValidateFederated(context stdctx.Context, provider string) (session.Identity, error) {
	identity, ok := federatedIdentities[provider]
	if !ok {
		return session.Identity{}, unknownProvider(provider)
	}
	return identity, nil
}

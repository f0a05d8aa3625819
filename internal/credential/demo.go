// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package credential

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"

	"github.com/vitalis-health/vitalis/internal/session"
	"github.com/vitalis-health/vitalis/pkg/avatar"
	"github.com/vitalis-health/vitalis/pkg/uuid"
)

// # Demo Validator

// DemoValidator is the in-memory validator used when the server runs in demo
// mode. It ships with one seeded account and keeps registrations for the
// lifetime of the process.
type DemoValidator struct {
	mu       sync.Mutex
	accounts []record
}

// record is a stored demo account. Secrets are plain byte-compared; demo mode
// exists to exercise the session lifecycle, not to protect real data.
type record struct {
	id     string
	name   string
	email  string
	secret string
	avatar string
}

// federatedIdentities maps each provider to its fixed identity.
var federatedIdentities = map[string]session.Identity{
	ProviderGoogle: {
		ID:     "google-123",
		Name:   "Google User",
		Email:  "google@example.com",
		Avatar: avatar.FromName("Google User"),
	},
	ProviderApple: {
		ID:     "apple-123",
		Name:   "Apple User",
		Email:  "apple@example.com",
		Avatar: avatar.FromName("Apple User"),
	},
}

// NewDemoValidator constructs a [DemoValidator] seeded with the demo account
// (demo@example.com / password123).
func NewDemoValidator() *DemoValidator {
	return &DemoValidator{
		accounts: []record{
			{
				id:     "1",
				name:   "Demo User",
				email:  "demo@example.com",
				secret: "password123",
				avatar: avatar.FromName("Demo User"),
			},
		},
	}
}

// ValidatePassword matches the pair against the stored accounts.
func (validator *DemoValidator) ValidatePassword(context context.Context, email, password string) (session.Identity, error) {
	validator.mu.Lock()
	defer validator.mu.Unlock()

	for _, account := range validator.accounts {
		if !strings.EqualFold(account.email, email) {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(account.secret), []byte(password)) == 1 {
			return account.identity(), nil
		}
		break
	}

	return session.Identity{}, ErrInvalidCredentials
}

// ValidateRegistration appends a fresh account unless the email is taken.
func (validator *DemoValidator) ValidateRegistration(context context.Context, name, email, password string) (session.Identity, error) {
	validator.mu.Lock()
	defer validator.mu.Unlock()

	for _, account := range validator.accounts {
		if strings.EqualFold(account.email, email) {
			return session.Identity{}, ErrDuplicateEmail
		}
	}

	account := record{
		id:     uuid.New(),
		name:   name,
		email:  email,
		secret: password,
		avatar: avatar.FromName(name),
	}
	validator.accounts = append(validator.accounts, account)

	return account.identity(), nil
}

// ValidateFederated returns the fixed identity for a known provider.
func (validator *DemoValidator) ValidateFederated(context context.Context, provider string) (session.Identity, error) {
	identity, ok := federatedIdentities[provider]
	if !ok {
		return session.Identity{}, unknownProvider(provider)
	}
	return identity, nil
}

func (account record) identity() session.Identity {
	return session.Identity{
		ID:     account.id,
		Name:   account.name,
		Email:  account.email,
		Avatar: account.avatar,
	}
}

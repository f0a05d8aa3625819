// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/vitalis-health/vitalis/internal/platform/apperr"
)

// # Contracts

// Validator authorizes login, registration, and federated-login attempts.
//
// # Why an interface?
//
// The manager's state machine must not depend on where accounts live. The
// bundled implementations are an in-memory demo list and a Postgres-backed
// repository; a remote identity service would slot in the same way.
//
// All three operations are synchronous computations. Rejections are returned
// as client-safe errors; the manager converts them into notifications.
type Validator interface {
	// ValidatePassword matches a submitted email/password pair against a
	// known account and returns its identity.
	ValidatePassword(context context.Context, email, password string) (Identity, error)

	// ValidateRegistration rejects duplicate emails, otherwise synthesizes a
	// brand-new identity with a generated id and a derived avatar.
	ValidateRegistration(context context.Context, name, email, password string) (Identity, error)

	// ValidateFederated returns the fixed identity associated with a named
	// external provider. No network call backs this.
	ValidateFederated(context context.Context, provider string) (Identity, error)
}

// Notifier receives the user-facing toast messages the manager emits.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}

// Navigator receives the navigation requests the manager issues after a
// state change (to the dashboard after login, to the login route after logout).
type Navigator interface {
	NavigateTo(route string)
}

// RouteSet is the navigation surface the manager and the route guard share.
type RouteSet struct {
	// Login is the public sign-in route and the guard's redirect target.
	Login string
	// Register is the public account creation route.
	Register string
	// Landing is the protected route requested after a successful login.
	Landing string
}

// # Session Manager

// Manager owns the process-wide session state. It is the only component
// permitted to mutate it.
//
// # Operation Ordering
//
// Within one operation the ordering is fixed: store mutation happens before
// state mutation, which happens before notification emission, which happens
// before the navigation request. Callers observing the state after a returned
// operation therefore always see the persisted value.
//
// # Concurrency
//
// Operations serialize on an internal mutex: overlapping login attempts
// queue rather than interleave. Snapshot never blocks behind an in-flight
// operation.
type Manager struct {
	store     Store
	validator Validator
	notifier  Notifier
	navigator Navigator
	routes    RouteSet
	log       *slog.Logger

	// opMu serializes mutating operations.
	opMu sync.Mutex

	// stateMu guards the observable snapshot fields.
	stateMu   sync.RWMutex
	current   Identity
	resolving bool
	pending   bool
}

/*
NewManager constructs the manager and synchronously restores the persisted
session.

Description: The startup sequence is fixed — resolving starts true, the store
is read, the identity is populated, and only then does resolving settle to
false. The route guard can therefore never observe "settled but not yet
populated". Resolving settles exactly once per process run.

Parameters:
  - context: context.Context (startup deadline)
  - store: Store
  - validator: Validator
  - notifier: Notifier
  - navigator: Navigator
  - routes: RouteSet
  - log: *slog.Logger

Returns:
  - *Manager: ready manager with resolving already settled
*/
func NewManager(
	context context.Context,
	store Store,
	validator Validator,
	notifier Notifier,
	navigator Navigator,
	routes RouteSet,
	log *slog.Logger,
) *Manager {
	manager := &Manager{
		store:     store,
		validator: validator,
		notifier:  notifier,
		navigator: navigator,
		routes:    routes,
		log:       log,
		resolving: true,
	}

	// Restore the persisted session. Storage faults degrade to "signed out"
	// rather than blocking startup.
	identity, found, err := store.Load(context)
	if err != nil {
		log.Warn("session_restore_failed", slog.Any("error", err))
	}

	manager.stateMu.Lock()
	if found {
		manager.current = identity
	}
	manager.resolving = false
	manager.stateMu.Unlock()

	if found {
		log.Info("session_restored", slog.String("identity_id", identity.ID))
	}

	return manager
}

// Snapshot returns the current observable session state. This is the explicit
// polling interface for UI consumers; there is no ambient global to consult.
func (manager *Manager) Snapshot() State {
	manager.stateMu.RLock()
	defer manager.stateMu.RUnlock()
	return State{
		Identity:  manager.current,
		Resolving: manager.resolving,
		Pending:   manager.pending,
	}
}

// Routes returns the navigation surface the manager was configured with.
func (manager *Manager) Routes() RouteSet {
	return manager.routes
}

// # Authentication Operations

/*
Login establishes a session from an email/password pair.

Description: Enters Pending, delegates to the validator, and on success runs
the fixed sequence persist → state → success toast → navigate-to-landing. On
rejection the state is untouched, an error toast is emitted, and the
rejection is returned so the calling form can keep its fields populated.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - Identity: the established identity
  - error: the validator's rejection
*/
func (manager *Manager) Login(context context.Context, email, password string) (Identity, error) {
	manager.opMu.Lock()
	defer manager.opMu.Unlock()

	manager.setPending(true)
	defer manager.setPending(false)

	identity, err := manager.validator.ValidatePassword(context, email, password)
	if err != nil {
		manager.notifier.Error("Login failed. Please check your credentials.")
		return Identity{}, err
	}

	manager.commit(context, identity)
	manager.notifier.Success("Welcome back!")
	manager.navigator.NavigateTo(manager.routes.Landing)

	return identity, nil
}

/*
Register creates a new account and signs it in immediately.

Parameters:
  - context: context.Context
  - name: string
  - email: string
  - password: string

Returns:
  - Identity: the freshly created identity
  - error: the validator's rejection (duplicate email)
*/
func (manager *Manager) Register(context context.Context, name, email, password string) (Identity, error) {
	manager.opMu.Lock()
	defer manager.opMu.Unlock()

	manager.setPending(true)
	defer manager.setPending(false)

	identity, err := manager.validator.ValidateRegistration(context, name, email, password)
	if err != nil {
		manager.notifier.Error(rejectionMessage(err, "Registration failed. Please try again."))
		return Identity{}, err
	}

	manager.commit(context, identity)
	manager.notifier.Success("Account created successfully!")
	manager.navigator.NavigateTo(manager.routes.Landing)

	return identity, nil
}

/*
FederatedLogin establishes a session through a named external provider.

Parameters:
  - context: context.Context
  - provider: string (e.g. "google", "apple")

Returns:
  - Identity: the provider's fixed demo identity
  - error: rejection for unknown providers
*/
func (manager *Manager) FederatedLogin(context context.Context, provider string) (Identity, error) {
	manager.opMu.Lock()
	defer manager.opMu.Unlock()

	manager.setPending(true)
	defer manager.setPending(false)

	identity, err := manager.validator.ValidateFederated(context, provider)
	if err != nil {
		manager.notifier.Error(titleCase(provider) + " login failed")
		return Identity{}, err
	}

	manager.commit(context, identity)
	manager.notifier.Success("Logged in with " + titleCase(provider) + "!")
	manager.navigator.NavigateTo(manager.routes.Landing)

	return identity, nil
}

/*
Logout clears the session.

Description: Synchronous and idempotent — signing out while already signed
out clears an empty state without error and is safe to repeat. Ordering
matches the other operations: store first, then state, then the info toast,
then navigation to the login route.

Parameters:
  - context: context.Context
*/
func (manager *Manager) Logout(context context.Context) {
	manager.opMu.Lock()
	defer manager.opMu.Unlock()

	if err := manager.store.Clear(context); err != nil {
		// A failed clear must not strand the user in a signed-in UI.
		manager.log.Warn("session_clear_failed", slog.Any("error", err))
	}

	manager.stateMu.Lock()
	manager.current = Identity{}
	manager.stateMu.Unlock()

	manager.notifier.Info("You've been logged out")
	manager.navigator.NavigateTo(manager.routes.Login)
}

// # Internals

// commit runs the success sequence shared by all sign-in operations:
// persist the identity, then publish it to the observable state.
func (manager *Manager) commit(context context.Context, identity Identity) {
	if err := manager.store.Save(context, identity); err != nil {
		// Persistence trouble costs the session its restart durability, not
		// the current run. Log and continue.
		manager.log.Warn("session_persist_failed",
			slog.String("identity_id", identity.ID),
			slog.Any("error", err),
		)
	}

	manager.stateMu.Lock()
	manager.current = identity
	manager.stateMu.Unlock()
}

// setPending flips the observable pending flag.
func (manager *Manager) setPending(pending bool) {
	manager.stateMu.Lock()
	manager.pending = pending
	manager.stateMu.Unlock()
}

// rejectionMessage extracts a client-safe message from a rejection, with a
// fallback for errors that carry internal detail.
func rejectionMessage(err error, fallback string) string {
	if ae := apperr.As(err); ae != nil && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// titleCase uppercases the first letter of a provider name for toasts.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/credential"
	"github.com/vitalis-health/vitalis/internal/session"
)

// # Test Fixtures

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier captures every toast the manager emits, in order.
type recordingNotifier struct {
	successes []string
	infos     []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Info(message string)    { n.infos = append(n.infos, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

// stubValidator lets each test script the validator's answers.
type stubValidator struct {
	password   func(email, password string) (session.Identity, error)
	register   func(name, email, password string) (session.Identity, error)
	federated  func(provider string) (session.Identity, error)
	callsTotal int
}

func (v *stubValidator) ValidatePassword(_ context.Context, email, password string) (session.Identity, error) {
	v.callsTotal++
	return v.password(email, password)
}

func (v *stubValidator) ValidateRegistration(_ context.Context, name, email, password string) (session.Identity, error) {
	v.callsTotal++
	return v.register(name, email, password)
}

func (v *stubValidator) ValidateFederated(_ context.Context, provider string) (session.Identity, error) {
	v.callsTotal++
	return v.federated(provider)
}

// failingStore simulates a storage outage: every call returns an error.
type failingStore struct{}

func (failingStore) Load(context.Context) (session.Identity, bool, error) {
	return session.Identity{}, false, errors.New("storage unavailable")
}
func (failingStore) Save(context.Context, session.Identity) error {
	return errors.New("storage unavailable")
}
func (failingStore) Clear(context.Context) error {
	return errors.New("storage unavailable")
}

type fixture struct {
	manager  *session.Manager
	store    *session.MemoryStore
	notifier *recordingNotifier
	nav      *session.NavigationLog
}

func newFixture(t *testing.T, validator session.Validator) *fixture {
	t.Helper()

	store := session.NewMemoryStore()
	notifier := &recordingNotifier{}
	nav := session.NewNavigationLog(discardLogger())

	manager := session.NewManager(
		context.Background(), store, validator, notifier, nav, guardRoutes, discardLogger())

	return &fixture{manager: manager, store: store, notifier: notifier, nav: nav}
}

// # Startup

/*
TestNewManager_FreshStore checks startup against an empty store: resolving is
already settled when the constructor returns, and nobody is signed in.
*/
func TestNewManager_FreshStore(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	state := f.manager.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.Pending)
	assert.False(t, state.Authenticated())
}

/*
TestNewManager_RestoresPersistedSession checks that a persisted session is
restored without consulting the validator.
*/
func TestNewManager_RestoresPersistedSession(t *testing.T) {
	store := session.NewMemoryStore()
	identity := session.Identity{ID: "1", Name: "Demo User", Email: "demo@example.com"}
	require.NoError(t, store.Save(context.Background(), identity))

	validator := &stubValidator{}
	manager := session.NewManager(
		context.Background(), store, validator, &recordingNotifier{},
		session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())

	state := manager.Snapshot()
	assert.False(t, state.Resolving)
	assert.True(t, state.Authenticated())
	assert.Equal(t, identity, state.Identity)
	assert.Zero(t, validator.callsTotal, "restore must not consult the validator")
}

/*
TestNewManager_MalformedPersistedSession checks the recovery path: a damaged
slot yields a clean signed-out start, no error surfaced to the user.
*/
func TestNewManager_MalformedPersistedSession(t *testing.T) {
	store := session.NewMemoryStore()
	store.Restore([]byte(`{"id":`))

	f := &recordingNotifier{}
	manager := session.NewManager(
		context.Background(), store, credential.NewDemoValidator(), f,
		session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())

	state := manager.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.Authenticated())
	assert.Empty(t, f.errors)
}

/*
TestNewManager_StorageUnavailable checks that a storage outage at startup
degrades to signed-out instead of failing.
*/
func TestNewManager_StorageUnavailable(t *testing.T) {
	manager := session.NewManager(
		context.Background(), failingStore{}, credential.NewDemoValidator(),
		&recordingNotifier{}, session.NewNavigationLog(discardLogger()),
		guardRoutes, discardLogger())

	state := manager.Snapshot()
	assert.False(t, state.Resolving)
	assert.False(t, state.Authenticated())
}

// # Login

/*
TestManager_Login_Success walks the full success sequence: identity in the
store, identity in the state, the welcome toast, navigation to the landing
route.
*/
func TestManager_Login_Success(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	identity, err := f.manager.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", identity.ID)

	// State reflects the signed-in identity and pending has settled.
	state := f.manager.Snapshot()
	assert.True(t, state.Authenticated())
	assert.Equal(t, identity, state.Identity)
	assert.False(t, state.Pending)

	// The store holds the persisted copy.
	persisted, found, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, identity, persisted)

	assert.Equal(t, []string{"Welcome back!"}, f.notifier.successes)
	assert.Equal(t, "/dashboard", f.nav.Last())
}

/*
TestManager_Login_Rejected checks that a rejection leaves everything exactly
as it was: no state change, no store write, no navigation, just the error
toast and the returned rejection.
*/
func TestManager_Login_Rejected(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	_, err := f.manager.Login(context.Background(), "demo@example.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, credential.ErrInvalidCredentials)

	state := f.manager.Snapshot()
	assert.False(t, state.Authenticated())
	assert.False(t, state.Pending)

	_, found, loadErr := f.store.Load(context.Background())
	require.NoError(t, loadErr)
	assert.False(t, found)

	assert.Equal(t, []string{"Login failed. Please check your credentials."}, f.notifier.errors)
	assert.Empty(t, f.nav.Last())
}

/*
TestManager_Login_PendingDuringOperation checks that the pending flag is
observable while the validator runs and settles before the call returns.
*/
func TestManager_Login_PendingDuringOperation(t *testing.T) {
	var manager *session.Manager
	var pendingDuring bool

	validator := &stubValidator{
		password: func(email, password string) (session.Identity, error) {
			pendingDuring = manager.Snapshot().Pending
			return session.Identity{ID: "1", Name: "Demo User", Email: email}, nil
		},
	}

	store := session.NewMemoryStore()
	manager = session.NewManager(
		context.Background(), store, validator, &recordingNotifier{},
		session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())

	_, err := manager.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)

	assert.True(t, pendingDuring)
	assert.False(t, manager.Snapshot().Pending)
}

/*
TestManager_Login_StorageUnavailable checks the degraded mode: with storage
down, sign-in still works for the current run.
*/
func TestManager_Login_StorageUnavailable(t *testing.T) {
	notifier := &recordingNotifier{}
	manager := session.NewManager(
		context.Background(), failingStore{}, credential.NewDemoValidator(),
		notifier, session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())

	identity, err := manager.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)

	assert.True(t, manager.Snapshot().Authenticated())
	assert.Equal(t, identity, manager.Snapshot().Identity)
	assert.Equal(t, []string{"Welcome back!"}, notifier.successes)
}

// # Registration

/*
TestManager_Register_Success checks that registration signs the new account
in immediately.
*/
func TestManager_Register_Success(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	identity, err := f.manager.Register(context.Background(), "Ada Lovelace", "ada@example.com", "secret-pass")
	require.NoError(t, err)

	assert.NotEmpty(t, identity.ID)
	assert.True(t, f.manager.Snapshot().Authenticated())
	assert.Equal(t, []string{"Account created successfully!"}, f.notifier.successes)
	assert.Equal(t, "/dashboard", f.nav.Last())
}

/*
TestManager_Register_DuplicateEmail checks that registering a taken email is
rejected with nothing else created and no sign-in.
*/
func TestManager_Register_DuplicateEmail(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	_, err := f.manager.Register(context.Background(), "Someone Else", "demo@example.com", "irrelevant")
	require.Error(t, err)
	assert.ErrorIs(t, err, credential.ErrDuplicateEmail)

	assert.False(t, f.manager.Snapshot().Authenticated())
	assert.Equal(t, []string{"Email is already registered"}, f.notifier.errors)
	assert.Empty(t, f.nav.Last())
}

// # Federated Login

/*
TestManager_FederatedLogin covers the fixed providers and the unknown
provider rejection, including the provider-specific toasts.
*/
func TestManager_FederatedLogin(t *testing.T) {
	t.Run("google", func(t *testing.T) {
		f := newFixture(t, credential.NewDemoValidator())

		identity, err := f.manager.FederatedLogin(context.Background(), "google")
		require.NoError(t, err)

		assert.Equal(t, "google-123", identity.ID)
		assert.Equal(t, []string{"Logged in with Google!"}, f.notifier.successes)
		assert.Equal(t, "/dashboard", f.nav.Last())
	})

	t.Run("apple", func(t *testing.T) {
		f := newFixture(t, credential.NewDemoValidator())

		identity, err := f.manager.FederatedLogin(context.Background(), "apple")
		require.NoError(t, err)

		assert.Equal(t, "apple-123", identity.ID)
		assert.Equal(t, []string{"Logged in with Apple!"}, f.notifier.successes)
	})

	t.Run("unknown_provider", func(t *testing.T) {
		f := newFixture(t, credential.NewDemoValidator())

		_, err := f.manager.FederatedLogin(context.Background(), "facebook")
		require.Error(t, err)

		assert.False(t, f.manager.Snapshot().Authenticated())
		assert.Equal(t, []string{"Facebook login failed"}, f.notifier.errors)
	})
}

// # Logout

/*
TestManager_Logout checks the teardown sequence and its idempotence: signing
out twice in a row behaves identically both times.
*/
func TestManager_Logout(t *testing.T) {
	f := newFixture(t, credential.NewDemoValidator())

	_, err := f.manager.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)

	f.manager.Logout(context.Background())

	assert.False(t, f.manager.Snapshot().Authenticated())
	_, found, loadErr := f.store.Load(context.Background())
	require.NoError(t, loadErr)
	assert.False(t, found)
	assert.Equal(t, []string{"You've been logged out"}, f.notifier.infos)
	assert.Equal(t, "/login", f.nav.Last())

	// Signing out while already signed out is a clean no-op with the same
	// observable sequence.
	f.manager.Logout(context.Background())
	assert.False(t, f.manager.Snapshot().Authenticated())
	assert.Equal(t, []string{"You've been logged out", "You've been logged out"}, f.notifier.infos)
}

// # Full Lifecycle

/*
TestManager_Lifecycle replays the whole session story across simulated
process restarts sharing one store: failed login, successful login,
restore-on-restart without credentials, logout, and a final clean start.
*/
func TestManager_Lifecycle(t *testing.T) {
	store := session.NewMemoryStore()

	boot := func(validator session.Validator, notifier *recordingNotifier) *session.Manager {
		return session.NewManager(
			context.Background(), store, validator, notifier,
			session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())
	}

	// First run: a wrong password keeps the visitor out, the right one lets
	// them in.
	first := &recordingNotifier{}
	manager := boot(credential.NewDemoValidator(), first)
	guard := session.NewGuard(guardRoutes)

	assert.Equal(t, session.DecisionRedirect, guard.Decide(manager.Snapshot()))

	_, err := manager.Login(context.Background(), "demo@example.com", "nope")
	require.Error(t, err)
	assert.Equal(t, session.DecisionRedirect, guard.Decide(manager.Snapshot()))

	identity, err := manager.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, session.DecisionAllow, guard.Decide(manager.Snapshot()))

	// Second run: the session survives the restart, no credentials needed.
	validator := &stubValidator{}
	manager = boot(validator, &recordingNotifier{})
	assert.Equal(t, session.DecisionAllow, guard.Decide(manager.Snapshot()))
	assert.Equal(t, identity, manager.Snapshot().Identity)
	assert.Zero(t, validator.callsTotal)

	manager.Logout(context.Background())
	assert.Equal(t, session.DecisionRedirect, guard.Decide(manager.Snapshot()))

	// Third run: nothing persisted, back to signed out.
	manager = boot(credential.NewDemoValidator(), &recordingNotifier{})
	assert.False(t, manager.Snapshot().Authenticated())
	assert.Equal(t, session.DecisionRedirect, guard.Decide(manager.Snapshot()))
}

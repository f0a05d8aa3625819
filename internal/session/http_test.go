// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/credential"
	"github.com/vitalis-health/vitalis/internal/platform/constants"
	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/session"
)

func newTestRouter(t *testing.T) (*session.Manager, chi.Router) {
	t.Helper()

	manager := session.NewManager(
		context.Background(), session.NewMemoryStore(), credential.NewDemoValidator(),
		&recordingNotifier{}, session.NewNavigationLog(discardLogger()), guardRoutes, discardLogger())

	tickets, err := sec.NewTicketService("0123456789abcdef0123456789abcdef", constants.TicketIssuer)
	require.NoError(t, err)

	router := chi.NewRouter()
	session.NewHandler(manager, tickets, false).Mount(router)
	return manager, router
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	data, _ := envelope["data"].(map[string]any)
	return data
}

func sessionCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	return nil
}

/*
TestHandler_Login exercises POST /login over the wire: envelope shape,
redirect target, and the session ticket cookie.
*/
func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		manager, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login", `{"email":"demo@example.com","password":"password123"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		data := decodeBody(t, recorder)
		assert.Equal(t, "/dashboard", data["redirect_to"])

		identity, _ := data["identity"].(map[string]any)
		require.NotNil(t, identity)
		assert.Equal(t, "demo@example.com", identity["email"])

		cookie := sessionCookie(recorder)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		assert.True(t, manager.Snapshot().Authenticated())
	})

	t.Run("wrong_password", func(t *testing.T) {
		manager, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login", `{"email":"demo@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Nil(t, sessionCookie(recorder))
		assert.False(t, manager.Snapshot().Authenticated())
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login", `{"email":"","password":""}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed_json", func(t *testing.T) {
		_, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestHandler_FederatedLogin exercises POST /login/{provider}.
*/
func TestHandler_FederatedLogin(t *testing.T) {
	t.Run("google", func(t *testing.T) {
		_, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login/google", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		identity, _ := decodeBody(t, recorder)["identity"].(map[string]any)
		require.NotNil(t, identity)
		assert.Equal(t, "google-123", identity["id"])
	})

	t.Run("unknown_provider", func(t *testing.T) {
		_, router := newTestRouter(t)

		recorder := postJSON(t, router, "/login/facebook", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

/*
TestHandler_Register exercises POST /register, including the duplicate email
conflict.
*/
func TestHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		manager, router := newTestRouter(t)

		recorder := postJSON(t, router, "/register",
			`{"name":"Ada Lovelace","email":"ada@example.com","password":"secret-pass"}`)
		require.Equal(t, http.StatusCreated, recorder.Code)

		assert.NotNil(t, sessionCookie(recorder))
		assert.True(t, manager.Snapshot().Authenticated())
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, router := newTestRouter(t)

		recorder := postJSON(t, router, "/register",
			`{"name":"Someone Else","email":"demo@example.com","password":"irrelevant"}`)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

/*
TestHandler_SessionAndLogout exercises GET /session before and after a login,
then POST /logout with the cookie teardown.
*/
func TestHandler_SessionAndLogout(t *testing.T) {
	_, router := newTestRouter(t)

	// Signed out: the session endpoint reports an absent identity.
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/session", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeBody(t, recorder)
	assert.Equal(t, false, data["authenticated"])
	assert.Nil(t, data["identity"])

	// Sign in, then the endpoint reports the identity.
	postJSON(t, router, "/login", `{"email":"demo@example.com","password":"password123"}`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/session", nil))
	data = decodeBody(t, recorder)
	assert.Equal(t, true, data["authenticated"])
	assert.NotNil(t, data["identity"])

	// Logout clears the cookie and points back to login.
	recorder = postJSON(t, router, "/logout", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "/login", decodeBody(t, recorder)["redirect_to"])

	cookie := sessionCookie(recorder)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/constants"
	"github.com/vitalis-health/vitalis/internal/platform/ctxutil"
	requestutil "github.com/vitalis-health/vitalis/internal/platform/request"
	"github.com/vitalis-health/vitalis/internal/platform/respond"
	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/platform/validate"
)

// # HTTP Delivery

// Handler implements the authentication endpoints of the route surface.
//
// # Scope
//
// This layer is strictly transport: decoding, validation, the session ticket
// cookie, and response envelopes. All session semantics live in [Manager].
type Handler struct {
	manager       *Manager
	tickets       *sec.TicketService
	secureCookies bool
}

// NewHandler constructs the session [Handler].
//
// secureCookies should be true in production deployments served over TLS.
func NewHandler(manager *Manager, tickets *sec.TicketService, secureCookies bool) *Handler {
	return &Handler{
		manager:       manager,
		tickets:       tickets,
		secureCookies: secureCookies,
	}
}

// Mount registers the authentication routes on the parent router.
//
// # Endpoints
//   - GET  /login             : Sign-in page descriptor.
//   - POST /login             : Credentials login.
//   - POST /login/{provider}  : Federated login (google, apple).
//   - GET  /register          : Registration page descriptor.
//   - POST /register          : Account creation.
//   - POST /logout            : Session teardown.
//   - GET  /session           : Observable session state (polling interface).
func (handler *Handler) Mount(router chi.Router) {
	router.Get(constants.RouteLogin, handler.loginPage)
	router.Post(constants.RouteLogin, handler.login)
	router.Post(constants.RouteLogin+"/{provider}", handler.federatedLogin)
	router.Get(constants.RouteRegister, handler.registerPage)
	router.Post(constants.RouteRegister, handler.register)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.sessionState)
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// # Page Descriptors

// loginPage handles GET /login. It exists so the guard's redirect target is a
// real route; the JSON describes the actions the sign-in UI may take.
func (handler *Handler) loginPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Sign in to Vitalis",
		"actions": map[string]string{
			"login":     constants.RouteLogin,
			"federated": constants.RouteLogin + "/{provider}",
			"register":  constants.RouteRegister,
		},
	})
}

// registerPage handles GET /register.
func (handler *Handler) registerPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Create your Vitalis account",
		"actions": map[string]string{
			"register": constants.RouteRegister,
			"login":    constants.RouteLogin,
		},
	})
}

// # Authentication Endpoints

/*
login handles POST /login.

Description: Validates the submitted credentials, establishes the session via
the manager, and issues the signed session ticket cookie.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: identity + redirect target
  - 400: ErrInvalidJSON or validation failure
  - 401: invalid credentials (form keeps its fields populated client-side)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	identity, err := handler.manager.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.issueTicket(writer, request, identity)

	respond.OK(writer, map[string]any{
		constants.FieldIdentity:   identity,
		constants.FieldRedirectTo: handler.manager.Routes().Landing,
	})
}

/*
federatedLogin handles POST /login/{provider}.

Description: Establishes a session through a named external provider. The
provider set is fixed; unknown names are rejected by the validator.

Response:
  - 200: identity + redirect target
  - 404: unknown provider
*/
func (handler *Handler) federatedLogin(writer http.ResponseWriter, request *http.Request) {
	provider := requestutil.Param(request, FieldProvider)

	identity, err := handler.manager.FederatedLogin(request.Context(), provider)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.issueTicket(writer, request, identity)

	respond.OK(writer, map[string]any{
		constants.FieldIdentity:   identity,
		constants.FieldRedirectTo: handler.manager.Routes().Landing,
	})
}

/*
register handles POST /register.

Description: Creates a new account and signs it in immediately.

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 201: identity + redirect target
  - 400: ErrInvalidJSON or validation failure
  - 409: email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	identity, err := handler.manager.Register(request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.issueTicket(writer, request, identity)

	respond.Created(writer, map[string]any{
		constants.FieldIdentity:   identity,
		constants.FieldRedirectTo: handler.manager.Routes().Landing,
	})
}

/*
logout handles POST /logout.

Description: Tears down the session and expires the ticket cookie. Safe to
call when already signed out.

Response:
  - 200: redirect target (the login route)
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.manager.Logout(request.Context())

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.OK(writer, map[string]any{
		constants.FieldRedirectTo: handler.manager.Routes().Login,
	})
}

/*
sessionState handles GET /session.

Description: The explicit polling interface for UI consumers — reports the
resolving flag, the pending flag, and the signed-in identity (if any).

Response:
  - 200: session [State] snapshot
*/
func (handler *Handler) sessionState(writer http.ResponseWriter, request *http.Request) {
	state := handler.manager.Snapshot()

	respond.OK(writer, map[string]any{
		"resolving":     state.Resolving,
		"pending":       state.Pending,
		"authenticated": state.Authenticated(),
		constants.FieldIdentity: func() any {
			if state.Authenticated() {
				return state.Identity
			}
			return nil
		}(),
	})
}

// issueTicket signs a session ticket for the identity and sets the cookie.
// Best effort: the session itself is already established, and a missing
// cookie only means the guard bounces the browser back to login.
func (handler *Handler) issueTicket(writer http.ResponseWriter, request *http.Request, identity Identity) {
	ticket, err := handler.tickets.Issue(identity.ID, identity.Name, constants.SessionTicketTTL)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Error("failed to issue session ticket", "error", err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    ticket,
		Path:     constants.SessionCookiePath,
		Expires:  time.Now().Add(constants.SessionTicketTTL),
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

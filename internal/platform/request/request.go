// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts the underlying router's parameter extraction and common body
decoding patterns, keeping error handling uniform across handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-health/vitalis/internal/platform/apperr"
	"github.com/vitalis-health/vitalis/internal/platform/ctxutil"
	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Session extracts the verified session ticket claims from the request context.

Returns nil if the request carries no valid session ticket.
*/
func Session(request *http.Request) *sec.TicketClaims {
	return ctxutil.GetSession(request.Context())
}

/*
RequiredSession ensures the request carries a verified session ticket.

Returns:
  - *sec.TicketClaims: claims of the active session
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredSession(request *http.Request) (*sec.TicketClaims, error) {

	// Get the ticket claims injected by the route guard
	claims := ctxutil.GetSession(request.Context())

	// Anonymous requests are rejected
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

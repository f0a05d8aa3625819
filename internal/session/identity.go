// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

/*
Package session implements the authentication session lifecycle for the
Vitalis dashboard.

It owns the single process-wide session: who is signed in, whether the
persisted session is still being restored, and the rules deciding what a
protected route may render.

# Architecture

  - Identity / State: the domain entities. No external dependencies.
  - Store: durable persistence of the identity across restarts.
  - Manager: the only component allowed to mutate session state.
  - Guard: the pure render decision consumed by the HTTP route guard.

The dashboard is a single-owner deployment, so exactly one session exists per
process. Multi-user session tracking is out of scope.
*/
package session

// # Domain Entities

// Identity is the public profile of the authenticated owner.
//
// The secret used to establish the session is never part of an Identity and
// therefore never reaches the persisted slot.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// IsZero reports whether the identity is empty (nobody signed in).
func (identity Identity) IsZero() bool {
	return identity.ID == ""
}

// State is a point-in-time snapshot of the process-wide session.
type State struct {
	// Identity is the current signed-in profile; zero when signed out.
	Identity Identity `json:"identity"`

	// Resolving is true only while the persisted session is being restored
	// at startup. It settles to false exactly once per process run.
	Resolving bool `json:"resolving"`

	// Pending is true while a login, registration, or federated attempt is
	// in flight. UI consumers disable submission controls while set.
	Pending bool `json:"pending"`
}

// Authenticated reports whether the snapshot carries a signed-in identity.
func (state State) Authenticated() bool {
	return !state.Identity.IsZero()
}

// # Field Identifiers

// Field names shared by validation and response payloads in the session domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldProvider = "provider"
)

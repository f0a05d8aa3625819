// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

// # Route Guard

// Decision is the render outcome for a protected region.
type Decision int

const (
	// DecisionLoading renders a loading indicator and nothing else.
	DecisionLoading Decision = iota

	// DecisionRedirect sends the visitor to the login route instead of
	// rendering protected content.
	DecisionRedirect

	// DecisionAllow renders the protected content region.
	DecisionAllow
)

// String returns the decision name for logs.
func (decision Decision) String() string {
	switch decision {
	case DecisionLoading:
		return "loading"
	case DecisionRedirect:
		return "redirect"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Guard decides what a protected region renders, based solely on a session
// [State] snapshot. It holds no state of its own.
type Guard struct {
	routes RouteSet
}

// NewGuard constructs a guard over the shared navigation surface.
func NewGuard(routes RouteSet) Guard {
	return Guard{routes: routes}
}

// Decide maps a state snapshot to a render decision.
//
// # Priority
//
// The three outcomes are mutually exclusive and checked in fixed order:
// resolving wins over redirect, redirect wins over content.
//
//  1. Session still resolving → loading indicator.
//  2. No signed-in identity → redirect to the login route.
//  3. Otherwise → protected content.
func (guard Guard) Decide(state State) Decision {
	if state.Resolving {
		return DecisionLoading
	}
	if !state.Authenticated() {
		return DecisionRedirect
	}
	return DecisionAllow
}

// RedirectTarget returns the route an unauthenticated visitor is sent to.
func (guard Guard) RedirectTarget() string {
	return guard.routes.Login
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package middleware

import (
	"net/http"

	"github.com/vitalis-health/vitalis/internal/platform/constants"
	"github.com/vitalis-health/vitalis/internal/platform/ctxutil"
	"github.com/vitalis-health/vitalis/internal/platform/sec"
	"github.com/vitalis-health/vitalis/internal/session"
)

// TicketVerifier defines the interface needed to verify session tickets in
// middleware.
//
// # Why an interface?
//
// Defining TicketVerifier here decouples the middleware from the concrete
// [sec.TicketService], allowing us to easily inject mocks during unit testing.
type TicketVerifier interface {
	Verify(ticket string) (*sec.TicketClaims, error)
}

// SessionGuard protects the dashboard routes with the session route guard.
//
// # Flow
//  1. Snapshot the session state and ask the guard for a render decision.
//  2. Loading: the session is still resolving — answer 503 with Retry-After
//     so the client retries shortly instead of being bounced to login.
//  3. Redirect: nobody is signed in — 302 to the login route.
//  4. Allow: verify the browser's session ticket cookie and confirm it names
//     the signed-in identity, then inject the claims into the context.
//
// The decision priority is the guard's, not the middleware's: loading always
// wins over redirect, redirect always wins over content.
func SessionGuard(manager *session.Manager, guard session.Guard, verifier TicketVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			state := manager.Snapshot()

			switch guard.Decide(state) {
			case session.DecisionLoading:
				writer.Header().Set(constants.HeaderRetryAfter, "1")
				writeError(writer, http.StatusServiceUnavailable, "SESSION_RESOLVING", "Session is still resolving, retry shortly")
				return

			case session.DecisionRedirect:
				http.Redirect(writer, request, guard.RedirectTarget(), http.StatusFound)
				return
			}

			// DecisionAllow: the process session is established. The cookie
			// binds this particular browser to it.
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil {
				http.Redirect(writer, request, guard.RedirectTarget(), http.StatusFound)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil || claims.IdentityID != state.Identity.ID {
				http.Redirect(writer, request, guard.RedirectTarget(), http.StatusFound)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

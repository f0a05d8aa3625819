// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import (
	"log/slog"
	"sync"
)

// NavigationLog is the server-side [Navigator]: it records the most recent
// navigation request and mirrors it to the structured log.
//
// The dashboard frontend performs the actual route change; the server only
// advertises the requested target in its responses.
type NavigationLog struct {
	mu   sync.Mutex
	last string
	log  *slog.Logger
}

// NewNavigationLog creates a navigation recorder.
func NewNavigationLog(log *slog.Logger) *NavigationLog {
	return &NavigationLog{log: log}
}

// NavigateTo implements [Navigator].
func (nav *NavigationLog) NavigateTo(route string) {
	nav.mu.Lock()
	nav.last = route
	nav.mu.Unlock()

	nav.log.Debug("navigation_requested", slog.String("route", route))
}

// Last returns the most recently requested route, or "" if none yet.
func (nav *NavigationLog) Last() string {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.last
}

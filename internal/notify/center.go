// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package notify is the in-process notification center. Session transitions
// and other domain events publish short user-facing messages here; the UI
// drains them through the notifications endpoint and renders them as toasts.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// # Notifications

// Kind classifies a notification for rendering.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// # Center

// maxRetained bounds the in-memory backlog. Older entries are dropped first.
const maxRetained = 50

// Center retains recent notifications in arrival order. All methods are safe
// for concurrent use.
type Center struct {
	mu      sync.Mutex
	entries []Notification
	log     *slog.Logger
}

// NewCenter constructs an empty [Center]. Every published notification is
// mirrored to the logger so toasts appear in the server log too.
func NewCenter(log *slog.Logger) *Center {
	return &Center{
		entries: make([]Notification, 0, maxRetained),
		log:     log.With("component", "notify"),
	}
}

// Success publishes a success notification.
func (center *Center) Success(message string) {
	center.publish(KindSuccess, message)
}

// Info publishes an informational notification.
func (center *Center) Info(message string) {
	center.publish(KindInfo, message)
}

// Error publishes an error notification.
func (center *Center) Error(message string) {
	center.publish(KindError, message)
}

// Recent returns a copy of the retained notifications, oldest first.
func (center *Center) Recent() []Notification {
	center.mu.Lock()
	defer center.mu.Unlock()

	out := make([]Notification, len(center.entries))
	copy(out, center.entries)
	return out
}

func (center *Center) publish(kind Kind, message string) {
	center.mu.Lock()
	defer center.mu.Unlock()

	if len(center.entries) == maxRetained {
		center.entries = append(center.entries[:0], center.entries[1:]...)
	}
	center.entries = append(center.entries, Notification{
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	})

	center.log.Info("notification published", "kind", string(kind), "message", message)
}

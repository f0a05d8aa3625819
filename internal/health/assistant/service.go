// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package assistant

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vitalis-health/vitalis/pkg/uuid"
)

// Service owns the chat thread. Safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	messages []Message
	logger   *slog.Logger
}

// NewService creates a thread opened by the assistant's greeting.
func NewService(logger *slog.Logger) *Service {
	service := &Service{logger: logger}
	service.reset()
	return service
}

// Thread returns a copy of the full thread, oldest first.
func (service *Service) Thread(context context.Context) []Message {
	service.mu.Lock()
	defer service.mu.Unlock()

	out := make([]Message, len(service.messages))
	copy(out, service.messages)
	return out
}

/*
Send appends a user message and the assistant's answer.

Description: The answer is computed synchronously from the keyword rules and
both messages land on the thread atomically, so no reader ever sees a user
message without its answer.

Parameters:
  - context: context.Context
  - content: string (the user's message, already validated non-empty)

Returns:
  - Message: the assistant's answer
*/
func (service *Service) Send(context context.Context, content string) Message {
	now := time.Now()

	userMessage := Message{
		ID:        uuid.New(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: now,
	}
	answer := Message{
		ID:        uuid.New(),
		Role:      RoleAssistant,
		Content:   Respond(content),
		Timestamp: now,
	}

	service.mu.Lock()
	service.messages = append(service.messages, userMessage, answer)
	threadLen := len(service.messages)
	service.mu.Unlock()

	service.logger.Debug("assistant_answered", slog.Int("thread_len", threadLen))

	return answer
}

// Reset discards the thread and starts over with the greeting.
func (service *Service) Reset(context context.Context) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.reset()
}

// reset must be called with the lock held (or before the service is shared).
func (service *Service) reset() {
	service.messages = []Message{{
		ID:        uuid.New(),
		Role:      RoleAssistant,
		Content:   Greeting,
		Timestamp: time.Now(),
	}}
}

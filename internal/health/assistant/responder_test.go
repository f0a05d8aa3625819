// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package assistant_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/health/assistant"
)

/*
TestRespond covers each keyword rule, the two-keyword rules, and the
fallback.
*/
func TestRespond(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContain string
	}{
		{"sleep", "How can I improve my sleep?", "consistent schedule"},
		{"workout", "What's a good workout for beginners?", "cardio"},
		{"exercise_same_rule", "Best exercise to start with?", "cardio"},
		{"water", "How much water should I drink daily?", "8 glasses"},
		{"breakfast", "What are healthy breakfast options?", "oatmeal"},
		{"meal_same_rule", "Ideas for my next meal?", "oatmeal"},
		{"stress", "How can I reduce stress naturally?", "deep breathing"},
		{"case_insensitive", "I CANNOT SLEEP", "consistent schedule"},
		{"fallback", "Tell me about quantum physics", "general wellness information"},
		{"empty_falls_back", "", "general wellness information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, assistant.Respond(tt.input), tt.wantContain)
		})
	}
}

/*
TestService_Thread checks the greeting, the atomic question/answer append,
and the reset.
*/
func TestService_Thread(t *testing.T) {
	service := assistant.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	thread := service.Thread(context.Background())
	require.Len(t, thread, 1)
	assert.Equal(t, assistant.RoleAssistant, thread[0].Role)
	assert.Equal(t, assistant.Greeting, thread[0].Content)

	answer := service.Send(context.Background(), "how much water do I need?")
	assert.Equal(t, assistant.RoleAssistant, answer.Role)
	assert.Contains(t, answer.Content, "8 glasses")

	thread = service.Thread(context.Background())
	require.Len(t, thread, 3)
	assert.Equal(t, assistant.RoleUser, thread[1].Role)
	assert.Equal(t, "how much water do I need?", thread[1].Content)
	assert.Equal(t, answer.Content, thread[2].Content)

	service.Reset(context.Background())
	thread = service.Thread(context.Background())
	require.Len(t, thread, 1)
	assert.Equal(t, assistant.Greeting, thread[0].Content)
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package notify_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/notify"
)

func newTestCenter() *notify.Center {
	return notify.NewCenter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCenter_PublishOrder checks that notifications come back oldest first with
their kinds preserved.
*/
func TestCenter_PublishOrder(t *testing.T) {
	center := newTestCenter()

	center.Success("Welcome back!")
	center.Error("Login failed. Please check your credentials.")
	center.Info("You've been logged out")

	recent := center.Recent()
	require.Len(t, recent, 3)

	assert.Equal(t, notify.KindSuccess, recent[0].Kind)
	assert.Equal(t, "Welcome back!", recent[0].Message)
	assert.Equal(t, notify.KindError, recent[1].Kind)
	assert.Equal(t, notify.KindInfo, recent[2].Kind)
	assert.False(t, recent[0].At.IsZero())
}

/*
TestCenter_Bounded checks that old entries are dropped once the retention
limit is hit.
*/
func TestCenter_Bounded(t *testing.T) {
	center := newTestCenter()

	for i := 0; i < 60; i++ {
		center.Info(fmt.Sprintf("message %d", i))
	}

	recent := center.Recent()
	require.Len(t, recent, 50)
	assert.Equal(t, "message 10", recent[0].Message)
	assert.Equal(t, "message 59", recent[49].Message)
}

/*
TestCenter_RecentIsACopy checks that mutating the returned slice does not
affect the retained entries.
*/
func TestCenter_RecentIsACopy(t *testing.T) {
	center := newTestCenter()
	center.Success("original")

	recent := center.Recent()
	recent[0].Message = "mutated"

	assert.Equal(t, "original", center.Recent()[0].Message)
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestTicketService_RoundTrip checks that an issued ticket verifies back to the
same claims.
*/
func TestTicketService_RoundTrip(t *testing.T) {
	service, err := sec.NewTicketService(testSecret, "vitalis.health")
	require.NoError(t, err)

	ticket, err := service.Issue("1", "Demo User", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, ticket)

	claims, err := service.Verify(ticket)
	require.NoError(t, err)

	assert.Equal(t, "1", claims.IdentityID)
	assert.Equal(t, "Demo User", claims.DisplayName)
	assert.Equal(t, "vitalis.health", claims.Issuer)
}

/*
TestTicketService_Rejections covers tampered, expired, and cross-key tickets.
*/
func TestTicketService_Rejections(t *testing.T) {
	service, err := sec.NewTicketService(testSecret, "vitalis.health")
	require.NoError(t, err)

	t.Run("garbage_ticket", func(t *testing.T) {
		_, err := service.Verify("not-a-ticket")
		assert.Error(t, err)
	})

	t.Run("expired_ticket", func(t *testing.T) {
		ticket, err := service.Issue("1", "Demo User", -time.Minute)
		require.NoError(t, err)

		_, err = service.Verify(ticket)
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := sec.NewTicketService("ffffffffffffffffffffffffffffffff", "vitalis.health")
		require.NoError(t, err)

		ticket, err := other.Issue("1", "Demo User", time.Hour)
		require.NoError(t, err)

		_, err = service.Verify(ticket)
		assert.Error(t, err)
	})
}

/*
TestNewTicketService_ShortSecret checks the minimum secret length guard.
*/
func TestNewTicketService_ShortSecret(t *testing.T) {
	_, err := sec.NewTicketService("too-short", "vitalis.health")
	assert.Error(t, err)
}

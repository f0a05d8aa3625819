// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package credential_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/credential"
)

/*
TestDemoValidator_ValidatePassword tests the seeded account and the rejection
paths of the demo validator.
*/
func TestDemoValidator_ValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"seeded_account", "demo@example.com", "password123", false},
		{"email_case_insensitive", "Demo@Example.com", "password123", false},
		{"wrong_password", "demo@example.com", "wrong-password", true},
		{"unknown_email", "nobody@example.com", "password123", true},
		{"empty_pair", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := credential.NewDemoValidator()

			identity, err := validator.ValidatePassword(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, credential.ErrInvalidCredentials)
				assert.True(t, identity.IsZero())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "1", identity.ID)
				assert.Equal(t, "Demo User", identity.Name)
				assert.Equal(t, "demo@example.com", identity.Email)
				assert.Contains(t, identity.Avatar, "ui-avatars.com")
			}
		})
	}
}

/*
TestDemoValidator_ValidateRegistration checks that registration synthesizes a
complete identity and that duplicates are rejected.
*/
func TestDemoValidator_ValidateRegistration(t *testing.T) {
	t.Run("new_account", func(t *testing.T) {
		validator := credential.NewDemoValidator()

		identity, err := validator.ValidateRegistration(context.Background(), "Ada Lovelace", "ada@example.com", "secret-pass")
		require.NoError(t, err)

		assert.NotEmpty(t, identity.ID)
		assert.Equal(t, "Ada Lovelace", identity.Name)
		assert.Equal(t, "ada@example.com", identity.Email)
		assert.Contains(t, identity.Avatar, "name=Ada+Lovelace")

		// The new account is immediately usable for a password login.
		again, err := validator.ValidatePassword(context.Background(), "ada@example.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, identity, again)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		validator := credential.NewDemoValidator()

		_, err := validator.ValidateRegistration(context.Background(), "Someone Else", "demo@example.com", "irrelevant")
		require.Error(t, err)
		assert.ErrorIs(t, err, credential.ErrDuplicateEmail)
	})

	t.Run("duplicate_email_case_insensitive", func(t *testing.T) {
		validator := credential.NewDemoValidator()

		_, err := validator.ValidateRegistration(context.Background(), "Someone Else", "DEMO@EXAMPLE.COM", "irrelevant")
		require.Error(t, err)
		assert.ErrorIs(t, err, credential.ErrDuplicateEmail)
	})
}

/*
TestDemoValidator_ValidateFederated checks the fixed provider identities.
*/
func TestDemoValidator_ValidateFederated(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantID   string
		wantErr  bool
	}{
		{"google", credential.ProviderGoogle, "google-123", false},
		{"apple", credential.ProviderApple, "apple-123", false},
		{"unknown", "facebook", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := credential.NewDemoValidator()

			identity, err := validator.ValidateFederated(context.Background(), tt.provider)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, identity.IsZero())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, identity.ID)
			}
		})
	}
}

// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/vitalis/internal/session"
)

/*
TestMemoryStore_RoundTrip checks that a saved identity reads back intact.
*/
func TestMemoryStore_RoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	identity := session.Identity{
		ID:     "1",
		Name:   "Demo User",
		Email:  "demo@example.com",
		Avatar: "https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Demo+User",
	}

	require.NoError(t, store.Save(context.Background(), identity))

	loaded, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, identity, loaded)
}

/*
TestMemoryStore_MalformedPayload checks that damaged slot contents read as
"no session" without surfacing an error.
*/
func TestMemoryStore_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"truncated_json", []byte(`{"id":"1","name":`)},
		{"not_json_at_all", []byte("garbage")},
		{"wrong_shape", []byte(`[1,2,3]`)},
		{"empty_object", []byte(`{}`)},
		{"empty_payload", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			store.Restore(tt.payload)

			identity, found, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.False(t, found)
			assert.True(t, identity.IsZero())
		})
	}
}

/*
TestMemoryStore_Clear checks teardown, including clearing an already-empty
slot.
*/
func TestMemoryStore_Clear(t *testing.T) {
	store := session.NewMemoryStore()

	// Clearing an empty slot is a no-op, not an error.
	require.NoError(t, store.Clear(context.Background()))

	require.NoError(t, store.Save(context.Background(), session.Identity{ID: "1", Name: "Demo User", Email: "demo@example.com"}))
	require.NoError(t, store.Clear(context.Background()))

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

/*
TestMemoryStore_SaveOverwrites checks that a second save replaces the first.
*/
func TestMemoryStore_SaveOverwrites(t *testing.T) {
	store := session.NewMemoryStore()

	require.NoError(t, store.Save(context.Background(), session.Identity{ID: "1", Name: "First", Email: "first@example.com"}))
	require.NoError(t, store.Save(context.Background(), session.Identity{ID: "2", Name: "Second", Email: "second@example.com"}))

	loaded, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", loaded.ID)
}

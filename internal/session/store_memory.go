// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore implements [Store] on an in-process byte slot.
//
// It uses the same serialized representation as [RedisStore], so round-trip
// and corruption behavior match the durable implementation exactly. Used in
// tests and as a wiring fallback when no Redis URL is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	payload []byte
	present bool
}

// NewMemoryStore creates an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load deserializes the slot. Malformed payloads read as "no session".
func (store *MemoryStore) Load(context context.Context) (Identity, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if !store.present {
		return Identity{}, false, nil
	}

	var identity Identity
	if err := json.Unmarshal(store.payload, &identity); err != nil || identity.IsZero() {
		return Identity{}, false, nil
	}

	return identity, true, nil
}

// Save serializes the identity into the slot, overwriting any prior value.
func (store *MemoryStore) Save(context context.Context, identity Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.payload = payload
	store.present = true
	return nil
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (store *MemoryStore) Clear(context context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.payload = nil
	store.present = false
	return nil
}

// Restore seeds the slot with a previously exported raw payload, bypassing
// serialization. It exists so corruption handling can be exercised the same
// way a damaged durable slot would present itself.
func (store *MemoryStore) Restore(payload []byte) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.payload = append([]byte(nil), payload...)
	store.present = true
}

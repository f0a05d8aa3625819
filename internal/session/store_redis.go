// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/vitalis-health/vitalis/internal/platform/constants"
)

// RedisStore implements [Store] on a single Redis key.
//
// The slot has no TTL: the session survives until an explicit logout clears
// it, matching the dashboard's "stay signed in on my own machine" contract.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *slog.Logger
}

// NewRedisStore creates a Redis-backed session store on the standard slot key.
func NewRedisStore(client *redis.Client, log *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		key:    constants.SessionSlotKey,
		log:    log,
	}
}

/*
Load reads and deserializes the persisted identity.

Description: An absent key and an unparseable payload both yield "no session".
A corrupt payload is additionally logged and deleted so the next run starts
from a clean slot.

Parameters:
  - context: context.Context

Returns:
  - Identity: restored identity (zero when absent)
  - bool: whether a well-formed identity was present
  - error: connectivity faults only
*/
func (store *RedisStore) Load(context context.Context) (Identity, bool, error) {
	payload, err := store.client.Get(context, store.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, false, nil
		}
		return Identity{}, false, fmt.Errorf("session_store_load_failed: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil || identity.IsZero() {
		// Malformed slot: treat as signed out, never as a failure.
		store.log.Warn("session_slot_malformed", slog.String("key", store.key))
		_ = store.client.Del(context, store.key).Err()
		return Identity{}, false, nil
	}

	return identity, true, nil
}

/*
Save serializes the identity into the slot, overwriting any prior value.

Parameters:
  - context: context.Context
  - identity: Identity

Returns:
  - error: marshalling or connectivity faults
*/
func (store *RedisStore) Save(context context.Context, identity Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session_store_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, store.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("session_store_save_failed: %w", err)
	}

	return nil
}

/*
Clear deletes the slot. Deleting an absent key is already a no-op in Redis.

Parameters:
  - context: context.Context

Returns:
  - error: connectivity faults
*/
func (store *RedisStore) Clear(context context.Context) error {
	if err := store.client.Del(context, store.key).Err(); err != nil {
		return fmt.Errorf("session_store_clear_failed: %w", err)
	}
	return nil
}

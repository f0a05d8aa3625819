// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package session

import "context"

// # Session Persistence

// Store is the durable slot holding the serialized identity of the current
// session. It is the single source of truth across restarts.
//
// # Failure Contract
//
// Absent or malformed slot contents are not errors: Load reports them as "no
// session" so the startup sequence can never be wedged by a corrupt slot.
// Errors are returned only for genuine storage faults (e.g. the backend is
// unreachable), and callers are expected to degrade to "no session" on read
// and log-and-continue on write.
type Store interface {

	/*
		Load reads the persisted identity, if any.

		Parameters:
		  - context: context.Context

		Returns:
		  - Identity: the restored identity (zero when absent)
		  - bool: whether a well-formed identity was present
		  - error: storage faults only; never raised for malformed data
	*/
	Load(context context.Context) (Identity, bool, error)

	/*
		Save serializes and persists the identity, overwriting any prior value.

		Parameters:
		  - context: context.Context
		  - identity: Identity

		Returns:
		  - error: storage faults
	*/
	Save(context context.Context, identity Identity) error

	/*
		Clear removes the persisted identity. Clearing an empty slot is a no-op.

		Parameters:
		  - context: context.Context

		Returns:
		  - error: storage faults
	*/
	Clear(context context.Context) error
}

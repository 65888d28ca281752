package ports

import (
	"context"
	"time"
)

// LockStore is the expiring mutual-exclusion primitive guarding order
// fulfillment. Locks are named by key, held by at most one worker at a
// time, and expire on their own so a crashed holder cannot starve the
// candidate pool.
//
// Acquisition safety across processes rests entirely on TryAcquire being
// atomic; the non-atomic IsLocked/Acquire pair exists for display estimates
// and for refreshing a lock a worker already holds.
type LockStore interface {
	// TryAcquire atomically creates the lock iff no non-expired lock exists
	// for key, with expiry now+ttl. Returns true when this caller obtained
	// the lock.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Acquire creates or refreshes the lock for key with expiry now+ttl,
	// regardless of the current holder. Use only on keys this caller already
	// holds.
	Acquire(ctx context.Context, key string, ttl time.Duration) error

	// IsLocked reports whether a non-expired lock exists for key.
	// A point-in-time answer, inherently racy against concurrent acquisition.
	IsLocked(ctx context.Context, key string) (bool, error)

	// Release removes the lock for key unconditionally. Releasing a
	// non-existent lock is a no-op, not an error.
	Release(ctx context.Context, key string) error
}

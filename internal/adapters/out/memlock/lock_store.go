// Package memlock implements the fulfillment lock store in process memory.
// Suited to single-node deployments and tests; for multiple processes use
// the Redis-backed store instead.
package memlock

import (
	"context"
	"sync"
	"time"
)

// LockStore is an in-memory expiring lock store. A mutex serializes all
// operations, which is what makes TryAcquire atomic within the process.
type LockStore struct {
	mu        sync.Mutex
	deadlines map[string]time.Time
	now       func() time.Time
}

// NewLockStore creates an empty in-memory lock store.
func NewLockStore() *LockStore {
	return &LockStore{
		deadlines: make(map[string]time.Time),
		now:       time.Now,
	}
}

// TryAcquire atomically creates the lock iff no non-expired lock exists for
// key. Returns true when this caller obtained the lock.
func (s *LockStore) TryAcquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if deadline, held := s.deadlines[key]; held && deadline.After(now) {
		return false, nil
	}

	s.deadlines[key] = now.Add(ttl)
	return true, nil
}

// Acquire creates or refreshes the lock for key regardless of the current
// holder.
func (s *LockStore) Acquire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deadlines[key] = s.now().Add(ttl)
	return nil
}

// IsLocked reports whether a non-expired lock exists for key.
func (s *LockStore) IsLocked(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, held := s.deadlines[key]
	return held && deadline.After(s.now()), nil
}

// Release removes the lock for key. Releasing a non-existent lock is a no-op.
func (s *LockStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deadlines, key)
	return nil
}

// Package redislock implements the fulfillment lock store on Redis.
// Atomicity of TryAcquire comes from SET NX; expiry is delegated to Redis
// key TTLs, so a crashed holder never needs cleanup.
package redislock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LockStore is a Redis-backed expiring lock store. Lock values are random
// owner tokens; they are informational for debugging (SCAN, GET) and are not
// checked on release.
type LockStore struct {
	client redis.UniversalClient
}

// NewLockStore creates a lock store on the given Redis client.
func NewLockStore(client redis.UniversalClient) *LockStore {
	return &LockStore{client: client}
}

// TryAcquire atomically creates the lock iff no non-expired lock exists for
// key. Returns true when this caller obtained the lock.
func (s *LockStore) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, uuid.NewString(), ttl).Result()
}

// Acquire creates or refreshes the lock for key regardless of the current
// holder.
func (s *LockStore) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, key, uuid.NewString(), ttl).Err()
}

// IsLocked reports whether a non-expired lock exists for key.
func (s *LockStore) IsLocked(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Release removes the lock for key. Releasing a non-existent lock is a no-op.
func (s *LockStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

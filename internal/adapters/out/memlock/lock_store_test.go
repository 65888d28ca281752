package memlock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mealorder/internal/adapters/out/memlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockStore_TryAcquire(t *testing.T) {
	ctx := t.Context()
	store := memlock.NewLockStore()

	acquired, err := store.TryAcquire(ctx, "order:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = store.TryAcquire(ctx, "order:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	// A different key is independent.
	acquired, err = store.TryAcquire(ctx, "order:2", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockStore_TryAcquire_ExactlyOneWinner(t *testing.T) {
	ctx := t.Context()
	store := memlock.NewLockStore()

	const workers = 64
	var wins atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			acquired, err := store.TryAcquire(ctx, "order:1", time.Minute)
			assert.NoError(t, err)
			if acquired {
				wins.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
}

func TestLockStore_ExpiredLockIsAcquirable(t *testing.T) {
	ctx := t.Context()
	store := memlock.NewLockStore()

	acquired, err := store.TryAcquire(ctx, "order:1", 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	time.Sleep(20 * time.Millisecond)

	locked, err := store.IsLocked(ctx, "order:1")
	require.NoError(t, err)
	assert.False(t, locked)

	acquired, err = store.TryAcquire(ctx, "order:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockStore_AcquireRefreshes(t *testing.T) {
	ctx := t.Context()
	store := memlock.NewLockStore()

	acquired, err := store.TryAcquire(ctx, "order:1", 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, store.Acquire(ctx, "order:1", time.Minute))

	time.Sleep(20 * time.Millisecond)

	locked, err := store.IsLocked(ctx, "order:1")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestLockStore_Release(t *testing.T) {
	ctx := t.Context()
	store := memlock.NewLockStore()

	acquired, err := store.TryAcquire(ctx, "order:1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, store.Release(ctx, "order:1"))

	locked, err := store.IsLocked(ctx, "order:1")
	require.NoError(t, err)
	assert.False(t, locked)

	// Releasing again is a no-op.
	require.NoError(t, store.Release(ctx, "order:1"))
}

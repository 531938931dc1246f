// internal/statusstore/redis_test.go
package statusstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud-advisor/internal/common/config"
	"cloud-advisor/internal/common/database"
	"cloud-advisor/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

// ==========================
// Core Functionality Tests
// ==========================

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Begin(ctx, "req-1", 15*time.Minute))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestInProgress, state.Status)
	assert.Zero(t, state.Progress)
	assert.Empty(t, state.Resources)

	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("WebServer", models.StatusActive), 50))
	state, err = store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, state.Progress)
	require.Len(t, state.Resources, 1)
	assert.Equal(t, "WebServer", state.Resources[0].Name)

	outcomes := []models.ResourceOutcome{
		testOutcome("WebServer", models.StatusActive),
		testOutcome("WebsiteVCN", models.StatusActive),
	}
	require.NoError(t, store.Complete(ctx, "req-1", outcomes))

	state, err = store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, state.Status)
	assert.Equal(t, 100.0, state.Progress)
	assert.Equal(t, outcomes, state.Resources)
}

func TestRedisStore_Fail(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))
	require.NoError(t, store.Fail(ctx, "req-1", "deadline exceeded"))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestFailed, state.Status)
	assert.Equal(t, "deadline exceeded", state.Message)
}

func TestRedisStore_UnknownIDIsNotFound(t *testing.T) {
	store, _ := newTestRedisStore(t)

	state, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, models.RequestNotFound, state.Status)
	assert.Equal(t, "missing", state.RequestID)
}

// ==========================
// Edge Cases
// ==========================

func TestRedisStore_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))
	mr.FastForward(2 * time.Hour)

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestNotFound, state.Status)
}

func TestRedisStore_MutationsRequireBegin(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	assert.Error(t, store.AppendOutcome(ctx, "ghost", testOutcome("a", models.StatusActive), 10))
	assert.Error(t, store.Complete(ctx, "ghost", nil))
	assert.Error(t, store.Fail(ctx, "ghost", "boom"))
}

func TestRedisStore_ProgressIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)
	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))

	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("a", models.StatusActive), 75))
	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("b", models.StatusActive), 25))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, 75.0, state.Progress)
}

// ==========================
// Concurrency Tests
// ==========================

func TestRedisStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	const outcomes = 50
	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))

	// Every goroutine appends exactly one outcome; the load-modify-save
	// cycle must not drop any of them.
	var wg sync.WaitGroup
	for i := 0; i < outcomes; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			progress := float64(i+1) / outcomes * 100
			assert.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome(fmt.Sprintf("r-%d", i), models.StatusActive), progress))
		}(i)
	}
	wg.Wait()

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Len(t, state.Resources, outcomes)
	assert.Equal(t, 100.0, state.Progress)
}

// internal/statusstore/memory_test.go
package statusstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testOutcome(name string, status models.ResourceStatus) models.ResourceOutcome {
	return models.ResourceOutcome{
		Name:       name,
		Kind:       models.KindCompute,
		Status:     status,
		ResourceID: "ocid1.instance.oc1..test",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Begin(ctx, "req-1", 15*time.Minute))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestInProgress, state.Status)
	assert.Zero(t, state.Progress)
	assert.Empty(t, state.Resources)
	assert.False(t, state.StartedAt.IsZero())
	assert.Equal(t, state.StartedAt.Add(15*time.Minute), state.EstimatedCompletion)

	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("WebServer", models.StatusActive), 50))
	state, err = store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestInProgress, state.Status)
	assert.Equal(t, 50.0, state.Progress)
	require.Len(t, state.Resources, 1)

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

func TestMemoryStore_FailKeepsOutcomes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))
	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("WebServer", models.StatusActive), 33.3))
	require.NoError(t, store.Fail(ctx, "req-1", "provisioning timed out"))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestFailed, state.Status)
	assert.Equal(t, "provisioning timed out", state.Message)
	assert.Len(t, state.Resources, 1)
	assert.InDelta(t, 33.3, state.Progress, 0.001)
}

func TestMemoryStore_UnknownIDIsNotFound(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Get(context.Background(), "no-such-request")
	require.NoError(t, err)
	assert.Equal(t, models.RequestNotFound, state.Status)
	assert.Equal(t, "no-such-request", state.RequestID)
	assert.Zero(t, state.Progress)
	assert.Empty(t, state.Resources)
}

// ==========================
// Edge Cases
// ==========================

func TestMemoryStore_BeginOverwritesPriorRun(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))
	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("old", models.StatusFailed), 100))
	require.NoError(t, store.Complete(ctx, "req-1", []models.ResourceOutcome{testOutcome("old", models.StatusFailed)}))

	// Re-provisioning the same id starts from a clean slate.
	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestInProgress, state.Status)
	assert.Zero(t, state.Progress)
	assert.Empty(t, state.Resources)
}

func TestMemoryStore_MutationsRequireBegin(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.Error(t, store.AppendOutcome(ctx, "ghost", testOutcome("a", models.StatusActive), 10))
	assert.Error(t, store.Complete(ctx, "ghost", nil))
	assert.Error(t, store.Fail(ctx, "ghost", "boom"))

	// A rejected mutation must not conjure up an entry.
	state, err := store.Get(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.RequestNotFound, state.Status)
}

func TestMemoryStore_ProgressIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))

	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("a", models.StatusActive), 66.6))
	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("b", models.StatusActive), 33.3))

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.InDelta(t, 66.6, state.Progress, 0.001, "a lower progress value must never win")
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Begin(ctx, "req-1", time.Minute))
	require.NoError(t, store.AppendOutcome(ctx, "req-1", testOutcome("a", models.StatusActive), 50))

	snapshot, err := store.Get(ctx, "req-1")
	require.NoError(t, err)

	// Mutating the snapshot must not leak back into the store.
	snapshot.Resources[0].Name = "tampered"
	snapshot.Progress = 0

	state, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "a", state.Resources[0].Name)
	assert.Equal(t, 50.0, state.Progress)
}

// ==========================
// Concurrency Tests
// ==========================

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const requests = 8
	const outcomesPerRequest = 20

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		requestID := fmt.Sprintf("req-%d", i)
		require.NoError(t, store.Begin(ctx, requestID, time.Minute))

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < outcomesPerRequest; j++ {
				progress := float64(j+1) / outcomesPerRequest * 100
				_ = store.AppendOutcome(ctx, requestID, testOutcome(fmt.Sprintf("r-%d", j), models.StatusActive), progress)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < outcomesPerRequest; j++ {
				_, _ = store.Get(ctx, requestID)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < requests; i++ {
		state, err := store.Get(ctx, fmt.Sprintf("req-%d", i))
		require.NoError(t, err)
		assert.Len(t, state.Resources, outcomesPerRequest)
		assert.Equal(t, 100.0, state.Progress)
	}
}

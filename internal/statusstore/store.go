// internal/statusstore/store.go

// Package statusstore tracks the mutable state of provisioning requests.
// The store owns its entries for the lifetime of the process; callers only
// ever receive snapshots, so a status poll can never observe a torn write.
package statusstore

import (
	"context"
	"time"

	"cloud-advisor/internal/models"
)

// Store is the request-state interface shared by the in-memory and redis
// backed implementations. Get never fails for unknown ids; it returns the
// distinguished not-found state instead. Every other method requires an
// entry created by Begin and returns an error for unknown ids.
type Store interface {
	// Begin creates (or overwrites) the entry for requestID as in_progress.
	Begin(ctx context.Context, requestID string, estimated time.Duration) error

	// AppendOutcome records one finished resource and moves progress forward.
	AppendOutcome(ctx context.Context, requestID string, outcome models.ResourceOutcome, progress float64) error

	// Complete marks the request terminal with the final ordered outcomes
	// and progress pinned at 100, regardless of individual failures.
	Complete(ctx context.Context, requestID string, outcomes []models.ResourceOutcome) error

	// Fail marks the request terminal as failed, keeping recorded outcomes.
	Fail(ctx context.Context, requestID string, message string) error

	// Get returns a snapshot of the request state.
	Get(ctx context.Context, requestID string) (models.RequestState, error)
}

func copyState(state models.RequestState) models.RequestState {
	snapshot := state
	snapshot.Resources = make([]models.ResourceOutcome, len(state.Resources))
	copy(snapshot.Resources, state.Resources)
	return snapshot
}

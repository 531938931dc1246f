// internal/statusstore/memory.go
package statusstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud-advisor/internal/models"
)

// MemoryStore keeps request state in process memory. Each entry carries its
// own mutex so a mutation for one request never blocks polls for another,
// and the lock is held only for the single mutation, never a whole batch.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	mu    sync.Mutex
	state models.RequestState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) entry(requestID string) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[requestID]
	if !ok {
		e = &memoryEntry{}
		s.entries[requestID] = e
	}
	return e
}

func (s *MemoryStore) lookup(requestID string) (*memoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[requestID]
	if !ok {
		return nil, fmt.Errorf("no provisioning request %q", requestID)
	}
	return e, nil
}

func (s *MemoryStore) Begin(_ context.Context, requestID string, estimated time.Duration) error {
	now := time.Now().UTC()
	e := s.entry(requestID)
	e.mu.Lock()
	defer e.mu.Unlock()
	// Re-provisioning the same request id overwrites prior outcomes.
	e.state = models.RequestState{
		RequestID:           requestID,
		Status:              models.RequestInProgress,
		Progress:            0,
		StartedAt:           now,
		EstimatedCompletion: now.Add(estimated),
		Resources:           []models.ResourceOutcome{},
	}
	return nil
}

func (s *MemoryStore) AppendOutcome(_ context.Context, requestID string, outcome models.ResourceOutcome, progress float64) error {
	e, err := s.lookup(requestID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Resources = append(e.state.Resources, outcome)
	if progress > e.state.Progress {
		e.state.Progress = progress
	}
	return nil
}

func (s *MemoryStore) Complete(_ context.Context, requestID string, outcomes []models.ResourceOutcome) error {
	e, err := s.lookup(requestID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Status = models.RequestCompleted
	e.state.Progress = 100
	e.state.Resources = make([]models.ResourceOutcome, len(outcomes))
	copy(e.state.Resources, outcomes)
	return nil
}

func (s *MemoryStore) Fail(_ context.Context, requestID string, message string) error {
	e, err := s.lookup(requestID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Status = models.RequestFailed
	e.state.Message = message
	return nil
}

func (s *MemoryStore) Get(_ context.Context, requestID string) (models.RequestState, error) {
	s.mu.RLock()
	e, ok := s.entries[requestID]
	s.mu.RUnlock()
	if !ok {
		return models.NotFoundState(requestID), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return copyState(e.state), nil
}

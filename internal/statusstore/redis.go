// internal/statusstore/redis.go
package statusstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"cloud-advisor/internal/common/database"
	"cloud-advisor/internal/models"
)

const redisKeyPrefix = "advisor:request:"

// RedisStore persists request state as one JSON document per request id so
// status polls work across replicas. Entries expire after the configured
// TTL; the core never deletes them itself.
//
// Mutations are load-modify-save, so each request id carries a lock held
// for the single mutation. Only the executor that began a batch mutates
// its entry; other replicas just read, so process-local locking suffices.
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *RedisStore) lock(requestID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[requestID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[requestID] = l
	}
	return l
}

func redisKey(requestID string) string {
	return redisKeyPrefix + requestID
}

func (s *RedisStore) save(ctx context.Context, state models.RequestState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal request state: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(state.RequestID), payload, s.ttl); err != nil {
		return fmt.Errorf("store request state: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, requestID string) (models.RequestState, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(requestID))
	if errors.Is(err, redis.Nil) {
		return models.RequestState{}, false, nil
	}
	if err != nil {
		return models.RequestState{}, false, fmt.Errorf("load request state: %w", err)
	}

	var state models.RequestState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.RequestState{}, false, fmt.Errorf("decode request state: %w", err)
	}
	return state, true, nil
}

func (s *RedisStore) Begin(ctx context.Context, requestID string, estimated time.Duration) error {
	l := s.lock(requestID)
	l.Lock()
	defer l.Unlock()

	now := time.Now().UTC()
	return s.save(ctx, models.RequestState{
		RequestID:           requestID,
		Status:              models.RequestInProgress,
		Progress:            0,
		StartedAt:           now,
		EstimatedCompletion: now.Add(estimated),
		Resources:           []models.ResourceOutcome{},
	})
}

func (s *RedisStore) AppendOutcome(ctx context.Context, requestID string, outcome models.ResourceOutcome, progress float64) error {
	l := s.lock(requestID)
	l.Lock()
	defer l.Unlock()

	state, ok, err := s.load(ctx, requestID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no provisioning request %q", requestID)
	}
	state.Resources = append(state.Resources, outcome)
	if progress > state.Progress {
		state.Progress = progress
	}
	return s.save(ctx, state)
}

func (s *RedisStore) Complete(ctx context.Context, requestID string, outcomes []models.ResourceOutcome) error {
	l := s.lock(requestID)
	l.Lock()
	defer l.Unlock()

	state, ok, err := s.load(ctx, requestID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no provisioning request %q", requestID)
	}
	state.Status = models.RequestCompleted
	state.Progress = 100
	state.Resources = outcomes
	return s.save(ctx, state)
}

func (s *RedisStore) Fail(ctx context.Context, requestID string, message string) error {
	l := s.lock(requestID)
	l.Lock()
	defer l.Unlock()

	state, ok, err := s.load(ctx, requestID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no provisioning request %q", requestID)
	}
	state.Status = models.RequestFailed
	state.Message = message
	return s.save(ctx, state)
}

func (s *RedisStore) Get(ctx context.Context, requestID string) (models.RequestState, error) {
	state, ok, err := s.load(ctx, requestID)
	if err != nil {
		return models.RequestState{}, err
	}
	if !ok {
		return models.NotFoundState(requestID), nil
	}
	return state, nil
}

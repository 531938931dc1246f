// internal/audit/recorder.go

// Package audit persists per-resource provisioning outcomes to Postgres so
// operators can inspect what was created long after the in-memory request
// state is gone.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud-advisor/internal/common/database"
	"cloud-advisor/internal/models"
)

const insertOutcomeQuery = `
	INSERT INTO provisioned_resources
		(request_id, name, resource_type, status, resource_id, error, details, access_info)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Recorder writes one row per resource outcome.
type Recorder struct {
	client *database.PostgresClient
}

func NewRecorder(client *database.PostgresClient) *Recorder {
	return &Recorder{client: client}
}

// RecordOutcome inserts the outcome row. Safe for concurrent use; the
// connection pool serializes access.
func (r *Recorder) RecordOutcome(ctx context.Context, requestID string, outcome models.ResourceOutcome) error {
	details, err := json.Marshal(outcome.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}
	accessInfo, err := json.Marshal(outcome.AccessInfo)
	if err != nil {
		return fmt.Errorf("marshal access info: %w", err)
	}

	if _, err := r.client.Exec(ctx, insertOutcomeQuery,
		requestID,
		outcome.Name,
		string(outcome.Kind),
		string(outcome.Status),
		outcome.ResourceID,
		outcome.Error,
		details,
		accessInfo,
	); err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}

	return nil
}

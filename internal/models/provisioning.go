// internal/models/provisioning.go
package models

import "time"

// RequestStatus is the lifecycle status of a provisioning request.
type RequestStatus string

const (
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestFailed     RequestStatus = "failed"
	RequestNotFound   RequestStatus = "not_found"
)

// ResourceOutcome is the result of attempting to provision one resource.
// Failed outcomes keep the backend's error message; the batch is never
// aborted by a single failed resource.
type ResourceOutcome struct {
	Name       string                 `json:"name"`
	Kind       ResourceKind           `json:"resource_type"`
	Status     ResourceStatus         `json:"status"`
	ResourceID string                 `json:"resource_id,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	AccessInfo map[string]string      `json:"access_info,omitempty"`
}

// RequestState is the mutable provisioning-request record tracked per
// request id. Terminal once Status is completed or failed.
type RequestState struct {
	RequestID           string            `json:"request_id"`
	Status              RequestStatus     `json:"status"`
	Progress            float64           `json:"progress"`
	StartedAt           time.Time         `json:"started_at"`
	EstimatedCompletion time.Time         `json:"estimated_completion"`
	Resources           []ResourceOutcome `json:"resources"`
	Message             string            `json:"message,omitempty"`
}

// NotFoundState is the distinguished state returned for unknown request ids.
func NotFoundState(requestID string) RequestState {
	return RequestState{
		RequestID: requestID,
		Status:    RequestNotFound,
		Progress:  0,
		Resources: []ResourceOutcome{},
	}
}

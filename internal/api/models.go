// internal/api/models.go
package api

import "cloud-advisor/internal/models"

// AnalyzeRequest is the incoming conversation-analysis payload.
type AnalyzeRequest struct {
	RequestID           string                       `json:"request_id"`
	ConversationContext []models.ConversationMessage `json:"conversation_context"`
	UserPreferences     map[string]interface{}       `json:"user_preferences,omitempty"`
	ExistingResources   map[string]interface{}       `json:"existing_resources,omitempty"`
}

// AnalyzeResponse carries the recommendation batch back to the caller.
type AnalyzeResponse struct {
	RequestID       string                  `json:"request_id"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Message         string                  `json:"message"`
}

// ProvisionRequest confirms which recommendations to provision.
type ProvisionRequest struct {
	RequestID          string                  `json:"request_id"`
	ConfirmedResources []models.Recommendation `json:"confirmed_resources"`
	UserID             string                  `json:"user_id,omitempty"`
	Priority           string                  `json:"priority,omitempty"`
}

// ProvisionResponse reports the per-resource outcomes of a batch.
type ProvisionResponse struct {
	RequestID            string                   `json:"request_id"`
	Status               string                   `json:"status"`
	ProvisionedResources []models.ResourceOutcome `json:"provisioned_resources"`
	Message              string                   `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Package errors provides standardized error handling for the provisioning pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDependencyCycle    ErrorCode = "DEPENDENCY_CYCLE"
	ErrCodeDuplicateResource  ErrorCode = "DUPLICATE_RESOURCE_NAME"
	ErrCodeUnsupportedKind    ErrorCode = "UNSUPPORTED_RESOURCE_TYPE"
	ErrCodeBackendFailure     ErrorCode = "BACKEND_PROVISION_FAILED"
	ErrCodeRequestValidation  ErrorCode = "REQUEST_VALIDATION_FAILED"
	ErrCodeBatchTimeout       ErrorCode = "BATCH_TIMEOUT"
	ErrCodeBatchCancelled     ErrorCode = "BATCH_CANCELLED"
	ErrCodeStatusStoreFailure ErrorCode = "STATUS_STORE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CycleError reports a dependency cycle found while ordering a batch. The
// whole provisioning call fails before any resource is touched.
type CycleError struct {
	Resource string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected for %q", e.Resource)
}

// NewDependencyCycleError wraps a CycleError for the API boundary.
func NewDependencyCycleError(resource string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDependencyCycle,
		Message:   "Dependency cycle in confirmed resources",
		Details:   fmt.Sprintf("resource: %s", resource),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateResourceError creates a non-retryable name-uniqueness error.
func NewDuplicateResourceError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateResource,
		Message:   "Resource names must be unique within a batch",
		Details:   fmt.Sprintf("name: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedKindError creates a non-retryable handler-missing error.
// It fails only the single resource, never the batch.
func NewUnsupportedKindError(kind string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedKind,
		Message:   "No provisioning handler for resource type",
		Details:   fmt.Sprintf("resourceType: %s", kind),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestValidationError creates a non-retryable input validation error.
func NewRequestValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestValidation,
		Message:   "Request payload validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBatchTimeoutError creates a retryable batch deadline error.
func NewBatchTimeoutError(requestID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBatchTimeout,
		Message:   "Provisioning batch exceeded its deadline",
		Details:   fmt.Sprintf("requestId: %s", requestID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBatchCancelledError creates a retryable caller-cancellation error.
func NewBatchCancelledError(requestID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBatchCancelled,
		Message:   "Provisioning batch was cancelled",
		Details:   fmt.Sprintf("requestId: %s", requestID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatusStoreError creates a retryable status-store error.
func NewStatusStoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStatusStoreFailure,
		Message:   "Status store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

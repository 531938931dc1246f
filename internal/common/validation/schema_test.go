// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSON_AnalyzeRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "valid request",
			payload: `{"request_id":"r1","conversation_context":[{"role":"user","content":"a static site"}]}`,
			valid:   true,
		},
		{
			name:    "missing request id",
			payload: `{"conversation_context":[{"role":"user","content":"hi"}]}`,
			valid:   false,
		},
		{
			name:    "empty conversation",
			payload: `{"request_id":"r1","conversation_context":[]}`,
			valid:   false,
		},
		{
			name:    "invalid role",
			payload: `{"request_id":"r1","conversation_context":[{"role":"system","content":"hi"}]}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(AnalyzeRequestSchema, []byte(tt.payload))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateJSON_ProvisionRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "valid request",
			payload: `{"request_id":"r1","confirmed_resources":[{"resource_type":"compute","name":"WebServer","specifications":{"shape":"VM.Standard.E4.Flex"}}]}`,
			valid:   true,
		},
		{
			name:    "resource type outside the enum",
			payload: `{"request_id":"r1","confirmed_resources":[{"resource_type":"quantum","name":"x","specifications":{}}]}`,
			valid:   false,
		},
		{
			name:    "missing specifications",
			payload: `{"request_id":"r1","confirmed_resources":[{"resource_type":"compute","name":"x"}]}`,
			valid:   false,
		},
		{
			name:    "empty batch",
			payload: `{"request_id":"r1","confirmed_resources":[]}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(ProvisionRequestSchema, []byte(tt.payload))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

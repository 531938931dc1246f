// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ProvisionRequestSchema constrains the provisioning confirmation payload
// before it is decoded into domain types.
const ProvisionRequestSchema = `{
	"type": "object",
	"required": ["request_id", "confirmed_resources"],
	"properties": {
		"request_id": {"type": "string", "minLength": 1},
		"confirmed_resources": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["resource_type", "name", "specifications"],
				"properties": {
					"resource_type": {
						"type": "string",
						"enum": ["compute", "network", "database", "storage", "load_balancer"]
					},
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"specifications": {"type": "object"},
					"estimated_cost": {"type": "object"},
					"dependencies": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

// AnalyzeRequestSchema constrains the conversation analysis payload.
const AnalyzeRequestSchema = `{
	"type": "object",
	"required": ["request_id", "conversation_context"],
	"properties": {
		"request_id": {"type": "string", "minLength": 1},
		"conversation_context": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role": {"type": "string", "enum": ["user", "assistant"]},
					"content": {"type": "string"},
					"timestamp": {"type": "string"}
				}
			}
		}
	}
}`

// ValidateJSON checks a raw JSON document against a schema and returns a
// single error summarizing every violation.
func ValidateJSON(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

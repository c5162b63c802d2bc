package plan

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchemaJSON is the contract downstream agents hold the persisted
// plan document to: goal, planner.subtasks, and coder must be present.
const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["goal", "planner", "coder"],
  "properties": {
    "goal": { "type": "string", "minLength": 1 },
    "domain": {
      "type": "string",
      "enum": ["marketplace", "dashboard", "social", "general"]
    },
    "planner": {
      "type": "object",
      "required": ["subtasks"],
      "properties": {
        "subtasks": {
          "type": ["array", "null"],
          "items": { "type": "string" }
        }
      }
    },
    "coder": { "type": ["object", "null"] }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchemaJSON)

// ValidateDocument checks a serialized plan document against the consumer
// contract. The returned error lists every schema violation.
func ValidateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate plan document: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return fmt.Errorf("plan document failed validation: %s", strings.Join(issues, "; "))
	}
	return nil
}

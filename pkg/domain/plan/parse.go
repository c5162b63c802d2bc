package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedPlanError signals that raw model output could not be decoded into
// a plan document. Excerpt carries a bounded slice of the offending output
// for diagnostics.
type MalformedPlanError struct {
	Reason  string
	Excerpt string
	Err     error
}

func (e *MalformedPlanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed plan: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed plan: %s", e.Reason)
}

func (e *MalformedPlanError) Unwrap() error {
	return e.Err
}

const excerptLimit = 200

func malformed(reason string, raw string, err error) *MalformedPlanError {
	excerpt := strings.TrimSpace(raw)
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	return &MalformedPlanError{Reason: reason, Excerpt: excerpt, Err: err}
}

// Parse decodes raw model output into a Plan. It performs structural decoding
// only: no field validation and no enhancement. The first complete top-level
// JSON object is decoded and anything the model appended after it is ignored
// (prefix recovery). A top-level array, scalar, or null fails.
func Parse(raw string) (*Plan, error) {
	payload := extractJSONPayload(raw)
	if payload == "" {
		return nil, malformed("empty response", raw, nil)
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	var doc json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed("response is not valid JSON", raw, err)
	}

	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, malformed("top-level value is not an object", raw, nil)
	}

	var p Plan
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, malformed("object does not decode into a plan", raw, err)
	}
	return &p, nil
}

// extractJSONPayload strips markdown code fences and any prose the model
// emitted before the first JSON object. Trailing noise is left in place; the
// decoder stops after the first complete value.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if start := strings.Index(clean, "{"); start > 0 {
		clean = clean[start:]
	}
	return clean
}

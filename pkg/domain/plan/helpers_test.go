package plan_test

import (
	"encoding/json"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// clonePlan deep-copies a plan through its serialized form, mirroring how
// plans actually travel between pipeline stages and disk.
func clonePlan(t *testing.T, p *plan.Plan) *plan.Plan {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal plan: %v", err)
	}
	var out plan.Plan
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	return &out
}

package plan_test

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestValidateDocument_Valid(t *testing.T) {
	doc := []byte(`{
		"goal": "build a shop",
		"domain": "marketplace",
		"planner": { "subtasks": ["one", "two"] },
		"coder": { "tasks": [] }
	}`)
	if err := plan.ValidateDocument(doc); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}

func TestValidateDocument_NullSubtasksAllowed(t *testing.T) {
	// A plan whose model never produced subtasks persists them as null. The
	// contract requires the key, not content.
	doc := []byte(`{"goal": "g", "planner": {"subtasks": null}, "coder": null}`)
	if err := plan.ValidateDocument(doc); err != nil {
		t.Errorf("null subtasks should pass: %v", err)
	}
}

func TestValidateDocument_MissingGoal(t *testing.T) {
	doc := []byte(`{"planner": {"subtasks": []}, "coder": {}}`)
	err := plan.ValidateDocument(doc)
	if err == nil || !strings.Contains(err.Error(), "goal") {
		t.Errorf("expected a goal violation, got %v", err)
	}
}

func TestValidateDocument_BadDomain(t *testing.T) {
	doc := []byte(`{"goal": "g", "domain": "ecommerce", "planner": {"subtasks": []}, "coder": {}}`)
	if err := plan.ValidateDocument(doc); err == nil {
		t.Error("out-of-set domain should fail validation")
	}
}

func TestValidateDocument_MultipleViolationsJoined(t *testing.T) {
	doc := []byte(`{"domain": "nope"}`)
	err := plan.ValidateDocument(doc)
	if err == nil {
		t.Fatal("expected violations")
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("violations should be joined in one error, got %v", err)
	}
}

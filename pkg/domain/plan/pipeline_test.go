package plan_test

import (
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestPipelineMachine_HappyPath(t *testing.T) {
	m, err := plan.NewPipelineMachine("goal")
	if err != nil {
		t.Fatalf("build machine: %v", err)
	}
	if m.Current() != plan.StateClassifying {
		t.Fatalf("expected initial state classifying, got %s", m.Current())
	}

	steps := []struct {
		event string
		state string
	}{
		{plan.EventClassified, plan.StatePrompting},
		{plan.EventParseOK, plan.StateEnhancing},
		{plan.EventEnhanced, plan.StateCompleting},
		{plan.EventPersisted, plan.StatePersisted},
	}
	for _, step := range steps {
		if err := m.Transition(step.event); err != nil {
			t.Fatalf("transition %s: %v", step.event, err)
		}
		if m.Current() != step.state {
			t.Fatalf("after %s expected %s, got %s", step.event, step.state, m.Current())
		}
	}

	if !m.IsTerminal() {
		t.Error("persisted must be terminal")
	}
}

func TestPipelineMachine_ParseFailureBypassesEnhancement(t *testing.T) {
	m, _ := plan.NewPipelineMachine("goal")
	_ = m.Transition(plan.EventClassified)

	if err := m.Transition(plan.EventParseFailed); err != nil {
		t.Fatalf("parse_failed transition: %v", err)
	}
	if m.Current() != plan.StateCompleting {
		t.Errorf("fallback plans skip enhancement, expected completing, got %s", m.Current())
	}
}

func TestPipelineMachine_RejectsIllegalEvents(t *testing.T) {
	m, _ := plan.NewPipelineMachine("goal")

	if err := m.Transition(plan.EventPersisted); err == nil {
		t.Error("persisted is not legal from classifying")
	}
	if m.Current() != plan.StateClassifying {
		t.Errorf("state must not move on an illegal event, got %s", m.Current())
	}
}

func TestPipelineMachine_TerminalStateIsFinal(t *testing.T) {
	m, _ := plan.NewPipelineMachine("goal")
	_ = m.Transition(plan.EventClassified)
	_ = m.Transition(plan.EventParseFailed)
	_ = m.Transition(plan.EventPersisted)

	if !m.IsTerminal() {
		t.Fatal("expected terminal state")
	}
	if err := m.Transition(plan.EventClassified); err == nil {
		t.Error("no transitions may leave the terminal state")
	}
}

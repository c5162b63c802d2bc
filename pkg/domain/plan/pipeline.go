package plan

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Pipeline states. These must remain untyped string constants for
// statekit.StateID compatibility.
const (
	StateClassifying = "classifying"
	StatePrompting   = "prompting"
	StateEnhancing   = "enhancing"
	StateCompleting  = "completing"
	StatePersisted   = "persisted"
)

// Pipeline events.
const (
	EventClassified  = "classified"
	EventParseOK     = "parse_ok"
	EventParseFailed = "parse_failed"
	EventEnhanced    = "enhanced"
	EventPersisted   = "persisted"
)

// PipelineContext carries state data.
type PipelineContext struct {
	Goal string
}

// PipelineMachine enforces the planning pipeline's legal state transitions:
// classifying → prompting → (enhancing | completing) → completing → persisted.
// The parse_failed event routes straight to completing because a fallback
// plan is already domain-complete and must not be enhanced. There is no
// retry loop: persisted is terminal.
type PipelineMachine struct {
	interpreter *statekit.Interpreter[PipelineContext]
}

func NewPipelineMachine(goal string) (*PipelineMachine, error) {
	builder := statekit.NewMachine[PipelineContext]("plan-pipeline").
		WithInitial(statekit.StateID(StateClassifying)).
		WithContext(PipelineContext{Goal: goal})

	builder.State(StateClassifying).
		On(EventClassified).Target(StatePrompting).
		Done()

	builder.State(StatePrompting).
		On(EventParseOK).Target(StateEnhancing).
		On(EventParseFailed).Target(StateCompleting).
		Done()

	builder.State(StateEnhancing).
		On(EventEnhanced).Target(StateCompleting).
		Done()

	builder.State(StateCompleting).
		On(EventPersisted).Target(StatePersisted).
		Done()

	// Terminal state, no transitions out
	builder.State(StatePersisted).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &PipelineMachine{interpreter: interpreter}, nil
}

// Transition attempts to advance the pipeline with the given event.
func (m *PipelineMachine) Transition(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := m.Current()

	if before != after {
		return nil
	}

	return fmt.Errorf("event %q is not allowed while the pipeline is in the %q state", event, before)
}

func (m *PipelineMachine) Current() string {
	return string(m.interpreter.State().Value)
}

// IsTerminal reports whether the pipeline has reached its final state.
func (m *PipelineMachine) IsTerminal() bool {
	return m.Current() == StatePersisted
}

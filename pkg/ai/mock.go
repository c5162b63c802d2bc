package ai

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/blueprint/pkg/domain/ai"
)

// MockProvider is an offline provider for tests and demos. It replays a
// canned response or fails on demand.
type MockProvider struct {
	Model string
	Text  string
	Fail  bool
}

func (m *MockProvider) ID() string {
	model := m.Model
	if model == "" {
		model = "canned"
	}
	return "mock:" + model
}

func (m *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if m.Fail {
		return nil, errors.New("mock provider failure")
	}

	return &ai.CompletionResponse{
		Text:  m.Text,
		Model: m.ID(),
		Usage: ai.TokenUsage{
			InputTokens:  len(req.Prompt) / 4,
			OutputTokens: len(m.Text) / 4,
		},
	}, nil
}

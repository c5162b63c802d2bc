package ai_test

import (
	"context"
	"testing"

	infraai "github.com/felixgeelhaar/blueprint/pkg/ai"
	"github.com/felixgeelhaar/blueprint/pkg/domain/ai"
)

func TestNewProvider_KnownProviders(t *testing.T) {
	for _, name := range []string{"ollama", "mock", "openai", "anthropic", "gemini", ""} {
		p, err := infraai.NewProvider(name, "some-model")
		if err != nil {
			t.Errorf("NewProvider(%q) failed: %v", name, err)
		}
		if p == nil {
			t.Errorf("NewProvider(%q) returned nil provider", name)
		}
	}
}

func TestNewProvider_Unsupported(t *testing.T) {
	if _, err := infraai.NewProvider("skynet", "t-800"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestGetDefaultProvider_EnvOverride(t *testing.T) {
	t.Setenv("BLUEPRINT_AI_PROVIDER", "mock")
	t.Setenv("BLUEPRINT_AI_MODEL", "env-model")

	p, err := infraai.GetDefaultProvider("ollama", "llama3")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID() != "mock:env-model" {
		t.Errorf("environment override not honored, got %q", p.ID())
	}
}

func TestMockProvider_Responses(t *testing.T) {
	m := &infraai.MockProvider{Text: "canned response"}
	resp, err := m.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "canned response" {
		t.Errorf("unexpected text: %q", resp.Text)
	}

	m.Fail = true
	if _, err := m.Complete(context.Background(), ai.CompletionRequest{}); err == nil {
		t.Error("expected failure when Fail is set")
	}
}

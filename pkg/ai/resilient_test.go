package ai_test

import (
	"context"
	"errors"
	"testing"
	"time"

	infraai "github.com/felixgeelhaar/blueprint/pkg/ai"
	"github.com/felixgeelhaar/blueprint/pkg/domain/ai"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failuresLeft int
	calls        int
}

func (f *flakyProvider) ID() string { return "flaky" }

func (f *flakyProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	f.calls++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return nil, errors.New("transient failure")
	}
	return &ai.CompletionResponse{Text: "ok", Model: "flaky"}, nil
}

func TestResilientProvider_RetriesTransientFailures(t *testing.T) {
	inner := &flakyProvider{failuresLeft: 1}
	p := infraai.NewResilientProviderWithConfig(inner, infraai.ResilienceConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
		Timeout:    time.Second,
	})

	resp, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("expected retry to recover: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if inner.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestResilientProvider_GivesUpEventually(t *testing.T) {
	inner := &flakyProvider{failuresLeft: 10}
	p := infraai.NewResilientProviderWithConfig(inner, infraai.ResilienceConfig{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		Timeout:    time.Second,
	})

	if _, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"}); err == nil {
		t.Error("expected a final error after exhausting retries")
	}
}

func TestResilientProvider_ZeroConfigGetsDefaults(t *testing.T) {
	p := infraai.NewResilientProviderWithConfig(&flakyProvider{}, infraai.ResilienceConfig{})
	if p.ID() != "flaky" {
		t.Errorf("ID must delegate to the inner provider, got %q", p.ID())
	}
}

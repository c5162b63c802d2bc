package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestMapError_Nil(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("nil must map to nil")
	}
}

func TestMapError_MalformedPlan(t *testing.T) {
	err := MapError(&plan.MalformedPlanError{Reason: "not an object"})
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T", err)
	}
	if !strings.Contains(cliErr.Hint, "plan generate") {
		t.Errorf("hint should point at regeneration, got %q", cliErr.Hint)
	}
}

func TestMapError_MissingFile(t *testing.T) {
	wrapped := fmt.Errorf("failed to read plan file: %w", fs.ErrNotExist)
	err := MapError(wrapped)
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T", err)
	}
	if cliErr.Message != "no plan found" {
		t.Errorf("unexpected message: %q", cliErr.Message)
	}
}

func TestMapError_Passthrough(t *testing.T) {
	orig := errors.New("something else")
	if got := MapError(orig); got != orig {
		t.Errorf("unmapped errors must pass through, got %v", got)
	}
}

func TestCLIError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewCLIError("outer", "hint", inner)
	if !errors.Is(err, inner) {
		t.Error("CLIError must unwrap to the inner error")
	}
	if err.ExitCode != 1 {
		t.Errorf("default exit code should be 1, got %d", err.ExitCode)
	}
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var malformedErr *plan.MalformedPlanError
	if errors.As(err, &malformedErr) {
		return NewCLIError(
			malformedErr.Error(),
			"Run 'blueprint plan generate <goal>' to regenerate the plan",
			err,
		)
	}

	if errors.Is(err, fs.ErrNotExist) {
		return NewCLIError(
			"no plan found",
			"Run 'blueprint init' and then 'blueprint plan generate <goal>'",
			err,
		)
	}

	return err
}

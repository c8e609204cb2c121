package cli

import (
	stderrors "errors"
	"fmt"

	clierrors "github.com/ant-design/changelog-gen/internal/errors"
)

// Exit codes for the changelog-gen CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates git history could not be read or output could not be written
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3

	// ExitInterrupted indicates the run was cancelled (Ctrl-C)
	ExitInterrupted = 130
)

// ExitError carries an explicit process exit code.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError creates an ExitError without an underlying cause.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code.
// Argument and configuration errors, including cobra's own flag parsing
// errors, exit with ExitInvalidArguments.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		return ExitInvalidArguments
	}

	switch cliErr.Category {
	case clierrors.Argument, clierrors.Configuration:
		return ExitInvalidArguments
	default:
		return ExitFailure
	}
}

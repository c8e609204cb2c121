package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Common error messages for the changelog-gen CLI.
// These templates ensure consistent, actionable error messages.

// NotAGitRepository creates an error for a path outside any repository.
func NotAGitRepository(path string, err error) *CLIError {
	cliErr := NewPrerequisiteError(
		fmt.Sprintf("%s is not inside a git repository", path),
		"Run changelog-gen from the repository root",
		"Or pass the repository with --repo <dir>",
	)
	cliErr.Err = err
	return cliErr
}

// GitCommandFailed creates an error for a failed history query. When the
// cause is a failed git invocation the message carries only its exit
// status; the command and its output are shown by FormatError.
func GitCommandFailed(err error) *CLIError {
	cliErr := WrapWithMessage(err, Runtime, "reading git history",
		"Check that every tag in the range exists locally (git fetch --tags)",
		"Retry with --debug to see the git commands being run",
		"Or use --backend go-git to read the repository without the git binary",
	)
	if cmd := AsCommandFailure(err); cmd != nil {
		if cause := stderrors.Unwrap(cmd); cause != nil {
			cliErr.Message = "reading git history: " + cause.Error()
		}
	}
	return cliErr
}

// InvalidConfig creates an error for a configuration that failed to load.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "loading configuration",
		"Check .changelog-gen.yml and ~/.config/changelog-gen/config.yml",
		"Check CHANGELOG_GEN_* environment variables",
	)
}

// UnknownFormat creates an error for an unsupported --format value.
func UnknownFormat(format string, available []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown output format %q", format),
		"changelog-gen --format <"+strings.Join(available, "|")+">",
		"Available formats: "+strings.Join(available, ", "),
	)
}

// UnknownBackend creates an error for an unsupported --backend value.
func UnknownBackend(backend string, available []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown git backend %q", backend),
		"changelog-gen --backend <"+strings.Join(available, "|")+">",
		"Available backends: "+strings.Join(available, ", "),
	)
}

// RenderFailed creates an error for output that could not be written.
func RenderFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "writing changelog",
		"Check that stdout is writable (e.g. the pipe reader has not exited)",
	)
}

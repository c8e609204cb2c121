// Package git reads tag history and commit logs for changelog generation.
// Two backends implement changelog.Source: CLI shells out to the git binary
// (the default, matching `git tag` and `git log` output exactly), and Repo uses
// the go-git library so no git installation is required.
package git

import (
	"fmt"
	"os"

	"github.com/ant-design/changelog-gen/internal/changelog"
	"github.com/go-git/go-git/v5"
)

// Backend names accepted by Open.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// shortHashLen matches git's default abbreviation for %h.
const shortHashLen = 7

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// UnknownBackendError is returned by Open for an unsupported backend name.
type UnknownBackendError struct {
	Backend string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown git backend %q (available: %s, %s)", e.Backend, BackendCLI, BackendGoGit)
}

// Backends returns the supported backend names.
func Backends() []string {
	return []string{BackendCLI, BackendGoGit}
}

// Open returns a changelog source for the repository at dir using the
// named backend. An empty dir means the current working directory.
func Open(backend, dir string) (changelog.Source, error) {
	logDebug("[git] opening %s backend at %q", backend, dir)

	switch backend {
	case BackendCLI, "":
		return NewCLI(dir), nil
	case BackendGoGit:
		return OpenRepo(dir)
	default:
		return nil, &UnknownBackendError{Backend: backend}
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[git] repository opened successfully")
	return repo, nil
}

// IsGitRepository checks if path (or the working directory when empty)
// is within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsGitRepository(%q): %v", path, result)
	return result
}

// shortHash abbreviates a full hex object name.
func shortHash(full string) string {
	if len(full) <= shortHashLen {
		return full
	}
	return full[:shortHashLen]
}

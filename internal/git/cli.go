package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ant-design/changelog-gen/internal/changelog"
)

// logFormat renders each commit as "subject|author|shorthash".
var logFormat = "--pretty=format:" + strings.Join([]string{"%s", "%an", "%h"}, changelog.LogFieldSeparator)

// CommandRunner runs git with args in dir and returns its stdout.
type CommandRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// CommandError describes a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.CommandLine(), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// CommandLine returns the invocation as typed in a shell, e.g. "git tag --sort=-creatordate".
func (e *CommandError) CommandLine() string {
	return "git " + strings.Join(e.Args, " ")
}

// Output returns what git wrote to stderr.
func (e *CommandError) Output() string {
	return e.Stderr
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CLI reads tags and commits by running the git binary.
type CLI struct {
	Dir string
	run CommandRunner
}

// NewCLI creates a CLI backend rooted at dir (empty = working directory).
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir, run: execGit}
}

// NewCLIWithRunner creates a CLI backend with a custom command runner.
func NewCLIWithRunner(dir string, run CommandRunner) *CLI {
	return &CLI{Dir: dir, run: run}
}

// Tags runs `git tag --sort=-creatordate`.
func (c *CLI) Tags(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, c.Dir, "tag", "--sort=-creatordate")
	if err != nil {
		return nil, err
	}

	tags := splitLines(out)
	logDebug("[git] Tags: found %d tags", len(tags))
	return tags, nil
}

// Commits runs `git log from..to` with the changelog line format.
func (c *CLI) Commits(ctx context.Context, from, to string) ([]string, error) {
	out, err := c.run(ctx, c.Dir, "log", from+".."+to, logFormat)
	if err != nil {
		return nil, err
	}

	lines := splitLines(out)
	logDebug("[git] Commits %s..%s: %d lines", from, to, len(lines))
	return lines, nil
}

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logDebug("[git] exec: git %s", strings.Join(args, " "))
	out, err := cmd.Output()
	if err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return out, nil
}

// splitLines splits command output into non-empty lines.
func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(42), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))

	cause := stderrors.New("exit status 128")
	err := WrapWithMessage(cause, Runtime, "reading git history", "fetch tags")

	assert.Equal(t, "reading git history: exit status 128", err.Error())
	assert.Equal(t, Runtime, err.Category)
	assert.Equal(t, []string{"fetch tags"}, err.Remediation)
	assert.ErrorIs(t, err, cause)
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewConfigError("bad config")
	wrapped := fmt.Errorf("running: %w", cliErr)

	assert.Same(t, cliErr, AsCLIError(wrapped))
	assert.True(t, IsCLIError(wrapped))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
	assert.False(t, IsCLIError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := UnknownFormat("html", []string{"markdown", "yaml"})
	out := FormatErrorPlain(err)

	assert.Equal(t, "Error [Argument Error]: unknown output format \"html\"\n"+
		"\n"+
		"Usage: changelog-gen --format <markdown|yaml>\n"+
		"\n"+
		"To fix this:\n"+
		"  • Available formats: markdown, yaml\n", out)

	assert.Empty(t, FormatErrorPlain(nil))
}

// commandErr is a minimal CommandFailure.
type commandErr struct {
	line, output string
	err          error
}

func (e *commandErr) Error() string       { return e.line + ": " + e.err.Error() }
func (e *commandErr) Unwrap() error       { return e.err }
func (e *commandErr) CommandLine() string { return e.line }
func (e *commandErr) Output() string      { return e.output }

func TestFormatErrorPlain_CommandFailure(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      error
		expected string
	}{
		"git output is indented under the command": {
			err: fmt.Errorf("fetching commits v1..v2: %w", &commandErr{
				line:   "git log v1..v2 --pretty=format:%s|%an|%h",
				output: "fatal: bad revision 'v1..v2'\nhint: fetch tags first\n",
				err:    stderrors.New("exit status 128"),
			}),
			expected: "Error [Runtime Error]: reading git history: exit status 128\n" +
				"\n" +
				"Command: git log v1..v2 --pretty=format:%s|%an|%h\n" +
				"git said:\n" +
				"  fatal: bad revision 'v1..v2'\n" +
				"  hint: fetch tags first\n",
		},
		"empty output prints only the command": {
			err: &commandErr{line: "git tag --sort=-creatordate", err: stderrors.New("exit status 1")},
			expected: "Error [Runtime Error]: reading git history: exit status 1\n" +
				"\n" +
				"Command: git tag --sort=-creatordate\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cliErr := GitCommandFailed(tt.err)
			cliErr.Remediation = nil
			assert.Equal(t, tt.expected, FormatErrorPlain(cliErr))
		})
	}
}

func TestAsCommandFailure(t *testing.T) {
	t.Parallel()

	cmd := &commandErr{line: "git tag", err: stderrors.New("exit status 1")}
	assert.Same(t, cmd, AsCommandFailure(fmt.Errorf("listing: %w", cmd)))
	assert.Nil(t, AsCommandFailure(stderrors.New("plain")))
	assert.Nil(t, AsCommandFailure(nil))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("repository does not exist")

	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantMessage  string
	}{
		"not a repository": {
			err:          NotAGitRepository("/tmp/x", cause),
			wantCategory: Prerequisite,
			wantMessage:  "/tmp/x is not inside a git repository",
		},
		"git failed": {
			err:          GitCommandFailed(cause),
			wantCategory: Runtime,
			wantMessage:  "reading git history: repository does not exist",
		},
		"invalid config": {
			err:          InvalidConfig(cause),
			wantCategory: Configuration,
			wantMessage:  "loading configuration: repository does not exist",
		},
		"unknown backend": {
			err:          UnknownBackend("svn", []string{"cli", "go-git"}),
			wantCategory: Argument,
			wantMessage:  "unknown git backend \"svn\"",
		},
		"render failed": {
			err:          RenderFailed(cause),
			wantCategory: Runtime,
			wantMessage:  "writing changelog: repository does not exist",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.NotEmpty(t, tt.err.Remediation)
		})
	}
}

func TestFprintSimpleError(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	FprintSimpleError(&buf, stderrors.New("boom"), Runtime)
	assert.Equal(t, "Error [Runtime Error]: boom\n", buf.String())

	buf.Reset()
	FprintSimpleError(&buf, fmt.Errorf("outer: %w", NewConfigError("bad", "fix it")), Runtime)
	assert.Contains(t, buf.String(), "Error [Configuration Error]: bad")
	assert.Contains(t, buf.String(), "  • fix it")

	buf.Reset()
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}

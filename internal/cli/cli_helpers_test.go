package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/ant-design/changelog-gen/internal/changelog"
	"github.com/ant-design/changelog-gen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fakeSource serves fixed tags and commit lines keyed by "from..to".
type fakeSource struct {
	tags       []string
	commits    map[string][]string
	commitsErr error
	// cancelOnTags simulates Ctrl-C arriving while tags are listed.
	cancelOnTags context.CancelFunc
}

func (f *fakeSource) Tags(ctx context.Context) ([]string, error) {
	if f.cancelOnTags != nil {
		f.cancelOnTags()
		return nil, ctx.Err()
	}
	return f.tags, nil
}

func (f *fakeSource) Commits(ctx context.Context, from, to string) ([]string, error) {
	if f.commitsErr != nil {
		return nil, f.commitsErr
	}
	return f.commits[fmt.Sprintf("%s..%s", from, to)], nil
}

// openCall records the arguments newSource was called with.
type openCall struct {
	backend string
	dir     string
}

// isolateConfig runs the test from an empty directory with no user config
// and no CHANGELOG_GEN_* variables.
func isolateConfig(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"MAX_TAGS", "REPO_URL", "BACKEND", "FORMAT", "REPO_PATH", "PROGRESS"} {
		t.Setenv(config.EnvPrefix+key, "")
		os.Unsetenv(config.EnvPrefix + key)
	}

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps parsed values in package variables between runs.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

// runCLI executes the root command with args against src and returns
// what was written to stdout and stderr.
func runCLI(t *testing.T, src changelog.Source, args ...string) (string, string, *openCall, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), src, args...)
}

// runCLIContext is runCLI with a caller-supplied context.
func runCLIContext(t *testing.T, ctx context.Context, src changelog.Source, args ...string) (string, string, *openCall, error) {
	t.Helper()

	call := &openCall{}
	open := func(backend, dir string) (changelog.Source, error) {
		call.backend, call.dir = backend, dir
		return src, nil
	}
	stdout, stderr, err := execute(t, ctx, open, args...)
	return stdout, stderr, call, err
}

// runCLIWithOpener executes the root command with open as the source opener.
func runCLIWithOpener(t *testing.T, open func(backend, dir string) (changelog.Source, error), args ...string) (string, string, error) {
	t.Helper()
	return execute(t, context.Background(), open, args...)
}

func execute(t *testing.T, ctx context.Context, open func(backend, dir string) (changelog.Source, error), args ...string) (string, string, error) {
	t.Helper()

	resetFlags(t, rootCmd)
	t.Cleanup(func() { resetFlags(t, rootCmd) })

	origSource, origProgress := newSource, progressFile
	newSource = open
	progressFile = nil
	t.Cleanup(func() {
		newSource, progressFile = origSource, origProgress
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
	})

	err := ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

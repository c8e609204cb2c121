package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/ant-design/changelog-gen/internal/changelog"
	"github.com/ant-design/changelog-gen/internal/config"
	clierrors "github.com/ant-design/changelog-gen/internal/errors"
	"github.com/ant-design/changelog-gen/internal/git"
	"github.com/ant-design/changelog-gen/internal/progress"
	"github.com/spf13/cobra"
)

// NotEnoughTagsMessage is printed to stdout when fewer than two tags exist.
const NotEnoughTagsMessage = "Not enough tags to generate changelog."

// newSource opens the repository history. Tests replace it with a fake.
var newSource = git.Open

// progressFile is probed for terminal support before drawing the spinner.
var progressFile = os.Stderr

func runGenerate(cmd *cobra.Command, args []string) error {
	logf := setupDebugLogging(cmd.ErrOrStderr())

	if err := checkFlagValues(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logf("[cli] repo=%q backend=%s format=%s max_tags=%d", cfg.RepoPath, cfg.Backend, cfg.Format, cfg.MaxTags)

	src, err := newSource(cfg.Backend, cfg.RepoPath)
	if err != nil {
		var unknown *git.UnknownBackendError
		if errors.As(err, &unknown) {
			return clierrors.UnknownBackend(cfg.Backend, git.Backends())
		}
		return clierrors.NotAGitRepository(cfg.RepoPath, err)
	}

	caps := progress.DetectTerminalCapabilities(progressFile)
	spin := progress.NewSpinner(cmd.ErrOrStderr(), caps, cfg.Progress)

	gen := changelog.NewGenerator(src)
	gen.MaxTags = cfg.MaxTags
	gen.Logf = logf
	gen.OnRelease = spin.Update

	result, err := gen.Generate(cmd.Context())
	switch {
	case err != nil && cmd.Context().Err() != nil:
		spin.Done(false, "Interrupted")
		return &ExitError{Code: ExitInterrupted, Err: clierrors.NewRuntimeError("interrupted")}
	case errors.Is(err, changelog.ErrNotEnoughTags):
		fmt.Fprintln(cmd.OutOrStdout(), NotEnoughTagsMessage)
		return nil
	case err != nil:
		spin.Done(false, "Reading git history failed")
		return clierrors.GitCommandFailed(err)
	}
	commits := 0
	for _, r := range result.Releases {
		commits += r.Count()
	}
	spin.Done(true, fmt.Sprintf("Read %d releases, %d commits", len(result.Releases), commits))

	opts := changelog.RenderOptions{RepoURL: cfg.RepoURL}
	if err := changelog.Render(result, cfg.Format, cmd.OutOrStdout(), opts); err != nil {
		var unknown *changelog.UnknownFormatError
		if errors.As(err, &unknown) {
			return clierrors.UnknownFormat(cfg.Format, changelog.Formats())
		}
		return clierrors.RenderFailed(err)
	}
	return nil
}

// setupDebugLogging wires --debug output to w and returns the logger
// function. Without --debug the returned function discards its input.
func setupDebugLogging(w io.Writer) func(format string, args ...any) {
	if !debug {
		git.SetDebugLogger(nil)
		return func(string, ...any) {}
	}
	logger := log.New(w, "", 0)
	git.SetDebugLogger(logger.Printf)
	return logger.Printf
}

// checkFlagValues rejects unsupported --format and --backend values before
// any configuration is read, so the error names the flag.
func checkFlagValues(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("format") && !slices.Contains(changelog.Formats(), format) {
		return clierrors.UnknownFormat(format, changelog.Formats())
	}
	if flags.Changed("backend") && !slices.Contains(git.Backends(), backend) {
		return clierrors.UnknownBackend(backend, git.Backends())
	}
	return nil
}

// loadConfig loads layered configuration with explicitly set flags applied last.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigPath: configPath,
		EnvFile:    envFile,
		Overrides:  flagOverrides(cmd),
	})
	if err != nil {
		return nil, clierrors.InvalidConfig(err)
	}
	return cfg, nil
}

// flagOverrides returns config values for the flags the user set.
// Flags left at their defaults do not mask file or environment values.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	flags := cmd.Flags()

	if flags.Changed("repo") {
		overrides["repo_path"] = repoPath
	}
	if flags.Changed("max-tags") {
		overrides["max_tags"] = maxTags
	}
	if flags.Changed("repo-url") {
		overrides["repo_url"] = repoURL
	}
	if flags.Changed("backend") {
		overrides["backend"] = backend
	}
	if flags.Changed("format") {
		overrides["format"] = format
	}
	if flags.Changed("no-progress") {
		overrides["progress"] = !noProgress
	}
	return overrides
}

// Package cli implements the changelog-gen command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ant-design/changelog-gen/internal/changelog"
	clierrors "github.com/ant-design/changelog-gen/internal/errors"
	"github.com/ant-design/changelog-gen/internal/git"
	"github.com/spf13/cobra"
)

// Command group IDs shown in help output.
const (
	GroupConfiguration = "configuration"
	GroupInformation   = "information"
)

var (
	configPath string
	envFile    string
	debug      bool

	repoPath   string
	maxTags    int
	repoURL    string
	backend    string
	format     string
	noProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "changelog-gen",
	Short: "Generate a changelog from git tags and conventional commits",
	Long: `changelog-gen reads the newest git tags, collects the commits between each
pair of adjacent tags and prints them as Markdown release notes.

Subjects in conventional commit form (type(scope): subject) are grouped by
scope and marked with an emoji for their type. Pull request references such
as (#123) become links. Commits that only bump the version are skipped.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (CHANGELOG_GEN_*)
  3. Project config (.changelog-gen.yml, or --config)
  4. User config (~/.config/changelog-gen/config.yml)
  5. Built-in defaults`,
	Example: `  # Release notes for the last 20 releases of the current repository
  changelog-gen > CHANGELOG.md

  # Only the last 3 releases of another checkout
  changelog-gen -C ../agentic-ui -n 4

  # Structured output without a git installation
  changelog-gen --backend go-git --format yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
		&cobra.Group{ID: GroupInformation, Title: "Information:"},
	)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .changelog-gen.yml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Dotenv file with CHANGELOG_GEN_* variables")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log git commands and parsing to stderr")

	rootCmd.Flags().StringVarP(&repoPath, "repo", "C", ".", "Repository to read")
	rootCmd.Flags().IntVarP(&maxTags, "max-tags", "n", changelog.DefaultMaxTags, "Number of newest tags to inspect")
	rootCmd.Flags().StringVar(&repoURL, "repo-url", changelog.DefaultRepoURL, "Repository URL for pull request links")
	rootCmd.Flags().StringVar(&backend, "backend", git.BackendCLI,
		"How git is read ("+strings.Join(git.Backends(), ", ")+")")
	rootCmd.Flags().StringVarP(&format, "format", "f", changelog.FormatMarkdown,
		"Output format ("+strings.Join(changelog.Formats(), ", ")+")")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Never draw the progress spinner")
}

// Execute runs the root command. Ctrl-C cancels any running git command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ExecuteContext(ctx)
}

// ExecuteContext runs the root command with ctx and prints any error to stderr.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		clierrors.FprintSimpleError(rootCmd.ErrOrStderr(), err, clierrors.Argument)
	}
	return err
}

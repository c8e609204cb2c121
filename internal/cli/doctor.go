package cli

import (
	"fmt"

	clierrors "github.com/ant-design/changelog-gen/internal/errors"
	"github.com/ant-design/changelog-gen/internal/git"
	"github.com/ant-design/changelog-gen/internal/health"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a changelog can be generated",
	Long: `Check that the git binary is available, that the repository can be opened,
and that the configured backend lists at least two tags.`,
	Example: `  # Check the current repository
  changelog-gen doctor

  # Check another checkout with the in-process backend
  changelog-gen doctor -C ../agentic-ui --backend go-git`,
	Args:    cobra.NoArgs,
	GroupID: GroupInformation,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report := health.RunHealthChecks(cmd.Context(), cfg.Backend, cfg.RepoPath)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return clierrors.NewPrerequisiteError("one or more checks failed",
				"Run changelog-gen from the repository root or pass --repo <dir>",
				"Fetch tags with: git fetch --tags",
			)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVarP(&repoPath, "repo", "C", ".", "Repository to check")
	doctorCmd.Flags().StringVar(&backend, "backend", git.BackendCLI, "How git is read (cli, go-git)")
	rootCmd.AddCommand(doctorCmd)
}

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ant-design/changelog-gen/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information",
	Long:    "Display version, commit, build date and platform of changelog-gen",
	Example: `  # Show version details
  changelog-gen version

  # Single line, for scripts
  changelog-gen version --plain`,
	Args:    cobra.NoArgs,
	GroupID: GroupInformation,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion(cmd.OutOrStdout())
			return
		}
		printPrettyVersion(cmd.OutOrStdout())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Print a single plain line without colors")
	rootCmd.AddCommand(versionCmd)
}

func printPlainVersion(w io.Writer) {
	fmt.Fprintln(w, version.String())
}

// printPrettyVersion prints labelled build details with colors when supported.
func printPrettyVersion(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, cyan("changelog-gen"))

	ver := version.Version
	if version.IsDevBuild() {
		ver += " (development build)"
	}

	info := []struct {
		label string
		value string
	}{
		{"Version", ver},
		{"Commit", truncateCommit(version.Commit)},
		{"Built", version.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
	for _, item := range info {
		fmt.Fprintf(w, "  %s  %s\n", yellow(fmt.Sprintf("%-8s", item.label)), item.value)
	}
}

// truncateCommit shortens a full commit hash to 8 characters.
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

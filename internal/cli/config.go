package cli

import (
	"fmt"

	"github.com/ant-design/changelog-gen/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect changelog-gen configuration",
	Long: `Inspect changelog-gen configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (CHANGELOG_GEN_*)
  3. Project config (.changelog-gen.yml, or --config)
  4. User config (~/.config/changelog-gen/config.yml)
  5. Built-in defaults`,
	Example: `  # Show the effective configuration
  changelog-gen config show

  # Start a project config from the commented template
  changelog-gen config template > .changelog-gen.yml`,
	GroupID: GroupConfiguration,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		return enc.Close()
	},
}

var configTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a commented configuration template",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user and project config file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("locating user config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user:    %s\n", userPath)
		for _, p := range config.ProjectConfigPaths() {
			fmt.Fprintf(cmd.OutOrStdout(), "project: %s\n", p)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configTemplateCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

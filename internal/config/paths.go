package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/changelog-gen/config.yml
// - macOS: ~/Library/Application Support/changelog-gen/config.yml
// - Windows: %APPDATA%\changelog-gen\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "changelog-gen", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level YAML config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".changelog-gen.yml"
}

// ProjectConfigPaths returns the project config candidates in priority order.
func ProjectConfigPaths() []string {
	return []string{ProjectConfigPath(), ".changelog-gen.json"}
}

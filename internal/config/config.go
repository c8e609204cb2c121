// Package config provides layered configuration for changelog-gen using koanf.
// Configuration is loaded with priority: command-line flags > environment variables
// (CHANGELOG_GEN_*) > project config (.changelog-gen.yml) > user config
// (~/.config/changelog-gen/config.yml) > defaults. Project config may also be
// written as JSON (.changelog-gen.json).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "CHANGELOG_GEN_"

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
	SourceFlag    ConfigSource = "flag"
)

// Configuration represents the changelog-gen settings
type Configuration struct {
	// RepoPath is the repository to read (default: current directory).
	RepoPath string `koanf:"repo_path" yaml:"repo_path"`

	// MaxTags is the number of newest tags to inspect; N tags give N-1 releases.
	MaxTags int `koanf:"max_tags" yaml:"max_tags" validate:"min=2,max=1000"`

	// RepoURL is the GitHub repository that pull request links point to.
	RepoURL string `koanf:"repo_url" yaml:"repo_url" validate:"required,url"`

	// Backend selects how git is read: "cli" runs the git binary,
	// "go-git" reads the repository in-process.
	Backend string `koanf:"backend" yaml:"backend" validate:"oneof=cli go-git"`

	// Format is the output format: "markdown" or "yaml".
	Format string `koanf:"format" yaml:"format" validate:"oneof=markdown yaml"`

	// Progress enables the stderr spinner when stderr is a terminal.
	Progress bool `koanf:"progress" yaml:"progress"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath overrides the project config path (default: .changelog-gen.yml).
	// A file given here must exist.
	ConfigPath string
	// EnvFile is a dotenv file loaded into the environment before env vars are read.
	EnvFile string
	// Overrides are applied last, typically from explicitly set flags.
	Overrides map[string]any
	// SkipUserConfig ignores the user-level config file.
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
func Load(configPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: configPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying %s override %s: %w", SourceFlag, key, err)
		}
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, SourceUser); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the project config. An explicit path must exist;
// otherwise .changelog-gen.yml is preferred over .changelog-gen.json.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file %s not found", customPath)
		}
		return loadConfigFile(k, customPath, SourceProject)
	}

	for _, path := range ProjectConfigPaths() {
		if fileExists(path) {
			return loadConfigFile(k, path, SourceProject)
		}
	}
	return nil
}

// loadConfigFile picks the parser by file extension.
func loadConfigFile(k *koanf.Koanf, path string, source ConfigSource) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", source, path, err)
		}
		return nil
	default:
		if err := loadYAMLConfig(k, path, source); err != nil {
			return fmt.Errorf("loading %s config: %w", source, err)
		}
		return nil
	}
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path string, source ConfigSource) error {
	if err := CheckYAMLFile(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", source, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", source, path, err)
	}
	return nil
}

// loadEnvFile loads a dotenv file without overriding variables already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load %s config: %w", SourceEnv, err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.RepoPath = expandHomePath(cfg.RepoPath)
	cfg.RepoURL = strings.TrimSuffix(cfg.RepoURL, "/")

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_GEN_MAX_TAGS -> max_tags
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

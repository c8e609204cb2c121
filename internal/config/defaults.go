package config

import "github.com/ant-design/changelog-gen/internal/changelog"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# changelog-gen configuration
# Place in .changelog-gen.yml (project) or ~/.config/changelog-gen/config.yml (user)

repo_path: .                                      # Repository to read
max_tags: 21                                      # Newest tags to inspect (21 tags = 20 releases)
repo_url: https://github.com/ant-design/agentic-ui # Base for pull request links
backend: cli                                      # cli | go-git
format: markdown                                  # markdown | yaml
progress: true                                    # Spinner on stderr when it is a terminal
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"repo_path": ".",
		"max_tags":  changelog.DefaultMaxTags,
		"repo_url":  changelog.DefaultRepoURL,
		"backend":   "cli",
		"format":    changelog.FormatMarkdown,
		"progress":  true,
	}
}

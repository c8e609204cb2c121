// Package changelog turns git tag history into release notes.
//
// This package implements:
//   - Parsing of "subject|author|shorthash" log lines into Commit records
//   - Conventional Commit type to emoji mapping
//   - CJK/ASCII spacing for commit descriptions
//   - Grouping of commits by component per tag interval
//   - Markdown and YAML rendering of the resulting Changelog
//
// The Generator drives the pipeline against any Source, which is implemented
// by the git CLI and go-git backends in internal/git.
package changelog

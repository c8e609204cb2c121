// Package version holds the changelog-gen build information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// String returns a one-line version description.
func String() string {
	return fmt.Sprintf("changelog-gen %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// Package health checks that changelog-gen can read a repository. The
// structured report backs the 'changelog-gen doctor' command.
package health

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ant-design/changelog-gen/internal/git"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// lookPath finds executables on PATH. Tests replace it.
var lookPath = exec.LookPath

// RunHealthChecks checks the git binary, the repository at repoPath, and
// whether the backend sees enough tags to produce a changelog.
func RunHealthChecks(ctx context.Context, backend, repoPath string) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 3),
		Passed: true,
	}

	report.add(CheckGitCLI(backend))
	report.add(CheckRepository(repoPath))
	report.add(CheckTags(ctx, backend, repoPath))

	return report
}

func (r *HealthReport) add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed {
		r.Passed = false
	}
}

// CheckGitCLI checks if the git binary is available. It is only required
// by the cli backend.
func CheckGitCLI(backend string) CheckResult {
	path, err := lookPath("git")
	if err != nil {
		if backend == git.BackendGoGit {
			return CheckResult{Name: "Git CLI", Passed: true, Message: "not found (not needed by the go-git backend)"}
		}
		return CheckResult{Name: "Git CLI", Passed: false, Message: "git not found in PATH"}
	}

	return CheckResult{Name: "Git CLI", Passed: true, Message: "found at " + path}
}

// CheckRepository checks that repoPath is inside a git repository.
func CheckRepository(repoPath string) CheckResult {
	if !git.IsGitRepository(repoPath) {
		return CheckResult{
			Name:    "Repository",
			Passed:  false,
			Message: fmt.Sprintf("%s is not inside a git repository", repoPath),
		}
	}

	return CheckResult{Name: "Repository", Passed: true, Message: repoPath}
}

// CheckTags checks that the backend lists at least two tags.
func CheckTags(ctx context.Context, backend, repoPath string) CheckResult {
	src, err := git.Open(backend, repoPath)
	if err != nil {
		return CheckResult{Name: "Tags", Passed: false, Message: err.Error()}
	}

	tags, err := src.Tags(ctx)
	if err != nil {
		return CheckResult{Name: "Tags", Passed: false, Message: fmt.Sprintf("listing tags: %v", err)}
	}

	switch len(tags) {
	case 0:
		return CheckResult{Name: "Tags", Passed: false, Message: "no tags found (at least 2 needed)"}
	case 1:
		return CheckResult{Name: "Tags", Passed: false, Message: "1 tag found (at least 2 needed)"}
	}
	return CheckResult{
		Name:    "Tags",
		Passed:  true,
		Message: fmt.Sprintf("%d tags found, newest %s", len(tags), tags[0]),
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var sb strings.Builder
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", mark, check.Name, check.Message)
	}
	return sb.String()
}

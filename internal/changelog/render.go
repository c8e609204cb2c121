package changelog

import (
	"fmt"
	"io"
	"strings"
)

// DefaultRepoURL is the repository pull request links point to.
const DefaultRepoURL = "https://github.com/ant-design/agentic-ui"

// RenderOptions controls changelog rendering.
type RenderOptions struct {
	// RepoURL is the base for pull request links (default DefaultRepoURL).
	RepoURL string
}

func (o RenderOptions) repoURL() string {
	if o.RepoURL == "" {
		return DefaultRepoURL
	}
	return strings.TrimSuffix(o.RepoURL, "/")
}

// PRURL returns the pull request link for number pr.
func (o RenderOptions) PRURL(pr string) string {
	return o.repoURL() + "/pull/" + pr
}

// RenderMarkdown writes the changelog as Markdown: a "## tag" heading per
// release, then one "component:" block per group.
//
// The output is idempotent - given the same input, it produces identical output.
func RenderMarkdown(c *Changelog, w io.Writer, opts RenderOptions) error {
	for _, r := range c.Releases {
		if err := renderRelease(&r, w, opts); err != nil {
			return fmt.Errorf("rendering release %s: %w", r.Tag, err)
		}
	}
	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(c *Changelog, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(c, &b, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderRelease(r *Release, w io.Writer, opts RenderOptions) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", r.Tag); err != nil {
		return err
	}

	for _, g := range r.Groups {
		if err := renderGroup(&g, w, opts); err != nil {
			return err
		}
	}
	return nil
}

// renderGroup writes a component block followed by a blank line.
func renderGroup(g *Group, w io.Writer, opts RenderOptions) error {
	if _, err := fmt.Fprintf(w, "%s:\n", g.Component); err != nil {
		return err
	}

	for _, c := range g.Commits {
		if _, err := io.WriteString(w, formatBullet(c, opts)+"\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// formatBullet formats one commit line. The PR slot stays in place when
// empty, so a commit without PR has two spaces before the author.
func formatBullet(c Commit, opts RenderOptions) string {
	return fmt.Sprintf("  - %s %s %s %s", c.Emoji, c.Description, formatPRLink(c, opts), formatAuthor(c.Author))
}

func formatPRLink(c Commit, opts RenderOptions) string {
	if !c.HasPR() {
		return ""
	}
	return fmt.Sprintf("[#%s](%s)", c.PR, opts.PRURL(c.PR))
}

// formatAuthor renders the author mention. It is not linked to a profile.
func formatAuthor(author string) string {
	return "[@" + author + "]"
}

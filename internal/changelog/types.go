package changelog

// DefaultComponent is the component assigned to commits without a scope.
const DefaultComponent = "Other"

// Changelog is the result of one generation run. Releases are ordered
// newest interval first.
type Changelog struct {
	Releases []Release
}

// Release holds the commits of one tag interval (Previous, Tag].
// Groups are sorted by component name.
type Release struct {
	Tag      string
	Previous string
	Groups   []Group
}

// Group is the list of commits for a single component, in log order.
type Group struct {
	Component string
	Commits   []Commit
}

// Commit is one parsed commit line.
// PR is empty when the subject carried no "(#N)" reference.
// Type is empty for commits that are not Conventional Commits.
type Commit struct {
	Component   string
	Type        string
	Emoji       string
	Description string
	PR          string
	Author      string
	Hash        string
}

// HasPR reports whether the commit references a pull request.
func (c Commit) HasPR() bool {
	return c.PR != ""
}

// IsEmpty returns true if the release has no commits in any component.
func (r Release) IsEmpty() bool {
	return len(r.Groups) == 0
}

// Count returns the total number of commits across all groups.
func (r Release) Count() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Commits)
	}
	return n
}

// Tags returns the release tags in changelog order.
func (c *Changelog) Tags() []string {
	tags := make([]string, len(c.Releases))
	for i, r := range c.Releases {
		tags[i] = r.Tag
	}
	return tags
}

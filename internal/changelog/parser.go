package changelog

import (
	"regexp"
	"strings"
)

// unicodeSpace matches any Unicode whitespace, including the ideographic space
// (U+3000) and no-break space that show up in CJK commit subjects.
const unicodeSpace = `[\t\n\x{0b}\f\r\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	prRefPattern   = regexp.MustCompile(`\(#(\p{Nd}+)\)`)
	prStripPattern = regexp.MustCompile(unicodeSpace + `*\(#\p{Nd}+\)`)

	// type(scope): subject, where type may use letters of any script
	conventionalPattern = regexp.MustCompile(`^([\p{L}\p{N}_]+)(?:\(([^)]+)\))?:` + unicodeSpace + `*(.+)$`)

	// digits may be fullwidth, e.g. "１.２.３"
	releasePattern = regexp.MustCompile(`^v?\p{Nd}+\.\p{Nd}+\.\p{Nd}+$`)
)

// LogFieldSeparator separates subject, author and short hash in a log line.
const LogFieldSeparator = "|"

// ParseLine parses a "subject|author|shorthash" log line.
// The second return value is false when the line is malformed or is a
// bare release version bump such as "2.29.3".
func ParseLine(line string) (Commit, bool) {
	if line == "" {
		return Commit{}, false
	}

	parts := strings.Split(line, LogFieldSeparator)
	if len(parts) < 3 {
		return Commit{}, false
	}
	msg, author, hash := parts[0], parts[1], parts[2]

	pr := ""
	if m := prRefPattern.FindStringSubmatch(msg); m != nil {
		pr = m[1]
	}
	msg = prStripPattern.ReplaceAllString(msg, "")

	if m := conventionalPattern.FindStringSubmatch(msg); m != nil {
		commitType, scope, subject := m[1], m[2], m[3]

		component := scope
		if component == "" {
			component = DefaultComponent
		}

		return Commit{
			Component:   component,
			Type:        commitType,
			Emoji:       EmojiFor(commitType),
			Description: FormatDescription(subject),
			PR:          pr,
			Author:      author,
			Hash:        hash,
		}, true
	}

	if IsReleaseVersion(msg) {
		return Commit{}, false
	}

	return Commit{
		Component:   DefaultComponent,
		Emoji:       DefaultEmoji,
		Description: FormatDescription(msg),
		PR:          pr,
		Author:      author,
		Hash:        hash,
	}, true
}

// ParseLines parses every line and drops the ones ParseLine rejects.
func ParseLines(lines []string) []Commit {
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		if c, ok := ParseLine(line); ok {
			commits = append(commits, c)
		}
	}
	return commits
}

// IsReleaseVersion reports whether msg is exactly a semantic version
// with an optional "v" prefix (e.g. "v1.0.0").
func IsReleaseVersion(msg string) bool {
	return releasePattern.MatchString(msg)
}

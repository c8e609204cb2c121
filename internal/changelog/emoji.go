package changelog

// DefaultEmoji marks commits with an unknown or missing type.
const DefaultEmoji = "📄"

var typeEmoji = map[string]string{
	"feat":     "🆕",
	"fix":      "🐞",
	"docs":     "📖",
	"style":    "💄",
	"refactor": "🛠",
	"perf":     "🚀",
	"test":     "✅",
	"build":    "📦",
	"ci":       "👷",
	"chore":    "🧹",
	"revert":   "⏪",
}

// EmojiFor returns the emoji for a Conventional Commit type.
// Lookup is case-sensitive; unknown types map to DefaultEmoji.
func EmojiFor(commitType string) string {
	if e, ok := typeEmoji[commitType]; ok {
		return e
	}
	return DefaultEmoji
}

// KnownTypes returns the commit types that have a dedicated emoji.
func KnownTypes() []string {
	return []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert"}
}

package changelog

import "regexp"

var (
	cjkThenASCII = regexp.MustCompile("([一-龥])([a-zA-Z0-9`])")
	asciiThenCJK = regexp.MustCompile("([a-zA-Z0-9`])([一-龥])")
)

// FormatDescription inserts a space at every boundary between a CJK
// character and an ASCII letter, digit or backtick.
// CamelCase identifiers are not wrapped in backticks.
func FormatDescription(desc string) string {
	desc = cjkThenASCII.ReplaceAllString(desc, "${1} ${2}")
	return asciiThenCJK.ReplaceAllString(desc, "${1} ${2}")
}

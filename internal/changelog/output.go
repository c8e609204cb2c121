package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Output formats accepted by Render.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// UnknownFormatError is returned when Render is asked for an unsupported format.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (available: %s)", e.Format, strings.Join(Formats(), ", "))
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatMarkdown, FormatYAML}
}

// Render writes the changelog in the given format.
func Render(c *Changelog, format string, w io.Writer, opts RenderOptions) error {
	switch format {
	case FormatMarkdown, "":
		return RenderMarkdown(c, w, opts)
	case FormatYAML:
		return RenderYAML(c, w, opts)
	default:
		return &UnknownFormatError{Format: format}
	}
}

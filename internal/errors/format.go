package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// CommandFailure is implemented by errors from an external command that
// record the command line and what the command printed on failure.
// git.CommandError is the one used by changelog-gen.
type CommandFailure interface {
	error
	CommandLine() string
	Output() string
}

// AsCommandFailure returns the first CommandFailure in err's chain, or nil.
func AsCommandFailure(err error) CommandFailure {
	var cmd CommandFailure
	if stderrors.As(err, &cmd) {
		return cmd
	}
	return nil
}

// palette holds the styling used for each part of a formatted error.
type palette struct {
	label, message, category, section, usage, bullet func(a ...any) string
}

var (
	colorPalette = palette{
		label:    color.New(color.FgRed, color.Bold).SprintFunc(),
		message:  color.New(color.FgRed).SprintFunc(),
		category: color.New(color.FgYellow).SprintFunc(),
		section:  color.New(color.FgCyan, color.Bold).SprintFunc(),
		usage:    color.New(color.FgCyan).SprintFunc(),
		bullet:   color.New(color.FgGreen).SprintFunc(),
	}
	plainPalette = palette{
		label:    fmt.Sprint,
		message:  fmt.Sprint,
		category: fmt.Sprint,
		section:  fmt.Sprint,
		usage:    fmt.Sprint,
		bullet:   fmt.Sprint,
	}
)

// FormatError formats a CLIError for the terminal. Colors follow fatih/color,
// which turns itself off for NO_COLOR and non-terminal output.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	if color.NoColor {
		return formatError(err, plainPalette)
	}
	return formatError(err, colorPalette)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, plainPalette)
}

// formatError writes the header line followed by the failed command,
// the correct usage and the remediation steps, each only when present.
func formatError(err *CLIError, p palette) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]: %s\n", p.label("Error"), p.category(err.Category.String()), p.message(err.Message))

	if cmd := AsCommandFailure(err.Err); cmd != nil {
		fmt.Fprintf(&sb, "\n%s %s\n", p.section("Command:"), cmd.CommandLine())
		if out := strings.TrimSpace(cmd.Output()); out != "" {
			fmt.Fprintf(&sb, "%s\n", p.section("git said:"))
			for _, line := range strings.Split(out, "\n") {
				fmt.Fprintf(&sb, "  %s\n", line)
			}
		}
	}

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", p.section("Usage: "), p.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.section("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// FormatSimpleError formats any error. A CLIError in err's chain keeps its
// own category and remediation; other errors are shown under category.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{
		Category: category,
		Message:  err.Error(),
		Err:      err,
	})
}

// FprintSimpleError prints a formatted error to w.
func FprintSimpleError(w io.Writer, err error, category ErrorCategory) {
	fmt.Fprint(w, FormatSimpleError(err, category))
}

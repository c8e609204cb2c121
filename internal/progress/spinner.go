package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner reports which release is being read. A disabled Spinner is a no-op.
type Spinner struct {
	s       *spinner.Spinner
	symbols ProgressSymbols
	out     io.Writer
	enabled bool
}

// NewSpinner creates a spinner writing to out. It is enabled only when
// enabled is true and caps reports a terminal.
func NewSpinner(out io.Writer, caps TerminalCapabilities, enabled bool) *Spinner {
	symbols := SelectSymbols(caps)
	sp := &Spinner{
		symbols: symbols,
		out:     out,
		enabled: enabled && caps.IsTTY,
	}
	if sp.enabled {
		sp.s = spinner.New(spinner.CharSets[symbols.SpinnerSet], spinnerInterval, spinner.WithWriter(out))
	}
	return sp
}

// Enabled reports whether the spinner draws anything.
func (sp *Spinner) Enabled() bool {
	return sp.enabled
}

// Update sets the spinner text for release index of total and starts it
// if needed.
func (sp *Spinner) Update(tag string, index, total int) {
	if !sp.enabled {
		return
	}
	// the spinner goroutine reads Suffix under the same lock
	sp.s.Lock()
	sp.s.Suffix = fmt.Sprintf(" Reading %s (%d/%d)", tag, index+1, total)
	sp.s.Unlock()
	if !sp.s.Active() {
		sp.s.Start()
	}
}

// Done stops the spinner and prints a final status line.
func (sp *Spinner) Done(ok bool, message string) {
	if !sp.enabled {
		return
	}
	sp.s.Stop()

	symbol := sp.symbols.Checkmark
	if !ok {
		symbol = sp.symbols.Failure
	}
	fmt.Fprintf(sp.out, "%s %s\n", symbol, message)
}

package progress

import (
	"bytes"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps TerminalCapabilities
		want ProgressSymbols
	}{
		"unicode terminal": {
			caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			want: ProgressSymbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14},
		},
		"ascii fallback": {
			caps: TerminalCapabilities{IsTTY: true},
			want: ProgressSymbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SelectSymbols(tt.caps))
		})
	}
}

func TestDetectTerminalCapabilities_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	caps := DetectTerminalCapabilities(f)
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
	assert.False(t, caps.SupportsUnicode)
	assert.Zero(t, caps.Width)

	assert.False(t, DetectTerminalCapabilities(nil).IsTTY)
}

func TestSpinner_DisabledWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sp := NewSpinner(&buf, TerminalCapabilities{IsTTY: false}, true)
	assert.False(t, sp.Enabled())

	sp.Update("v2", 0, 1)
	sp.Done(true, "done")
	assert.Empty(t, buf.String())
}

func TestSpinner_DisabledByFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sp := NewSpinner(&buf, TerminalCapabilities{IsTTY: true}, false)
	assert.False(t, sp.Enabled())

	sp.Update("v2", 0, 1)
	sp.Done(false, "failed")
	assert.Empty(t, buf.String())
}

func TestSpinner_UpdateSuffix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sp := NewSpinner(&buf, TerminalCapabilities{IsTTY: true, SupportsUnicode: true}, true)
	require.True(t, sp.Enabled())

	suffix := func() string {
		sp.s.Lock()
		defer sp.s.Unlock()
		return sp.s.Suffix
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sp.Update("v"+strconv.Itoa(i), i, 4)
			_ = suffix()
		}(i)
	}
	wg.Wait()

	sp.Update("v3", 1, 4)
	assert.Equal(t, " Reading v3 (2/4)", suffix())

	sp.Done(true, "Read 3 releases, 9 commits")
	assert.Contains(t, buf.String(), "Read 3 releases, 9 commits\n")
}

package output

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStripsCSIColor(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("\x1b[1;31mhello\x1b[0m"))
	assert.Equal(t, "a b", Sanitize("a\x1b[2K \x1b[10;20Hb"))
}

func TestSanitizeStripsOSCHyperlink(t *testing.T) {
	link := "\x1b]8;;https://example.com\x1b\\click\x1b]8;;\x1b\\"
	assert.Equal(t, "click", Sanitize(link))
	assert.Equal(t, "title done", Sanitize("\x1b]0;window\x07title done"))
}

func TestSanitizeKeepsNewlineAndTab(t *testing.T) {
	assert.Equal(t, "a\tb\nc", Sanitize("a\tb\nc"))
}

func TestSanitizeDropsOtherControls(t *testing.T) {
	assert.Equal(t, "abc", Sanitize("a\x00b\x08\x7fc\r"))
	assert.Equal(t, "xy", Sanitize("x\x1by"))
	assert.Equal(t, "", Sanitize("\x1b[31"))
	assert.Equal(t, "ünïcødé ✦", Sanitize("ünïcødé ✦"))
}

func TestAppendDiscardsEmptyLines(t *testing.T) {
	b := NewBuffer(10)
	assert.False(t, b.Append(""))
	assert.False(t, b.Append("\x1b[0m"))
	assert.False(t, b.Append("   \t"))
	assert.True(t, b.Append("kept  "))
	assert.Equal(t, []string{"kept"}, b.Lines())
}

func TestRingEvictsOldestFirst(t *testing.T) {
	b := NewBuffer(DefaultCapacity)
	for i := 1; i <= 1205; i++ {
		require.True(t, b.Append(fmt.Sprintf("line %d", i)))
	}

	lines := b.Lines()
	require.Len(t, lines, 1200)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("line %d", i+6), line)
	}
	assert.Equal(t, "line 1205", b.Last())
}

func TestClearResetsBuffer(t *testing.T) {
	b := NewBuffer(3)
	for i := 0; i < 5; i++ {
		b.Append(fmt.Sprintf("%d", i))
	}
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.Last())
	b.Append("fresh")
	assert.Equal(t, []string{"fresh"}, b.Lines())
}

func TestViewWindowsFromNewest(t *testing.T) {
	b := NewBuffer(100)
	for i := 1; i <= 20; i++ {
		b.Append(fmt.Sprintf("line %d", i))
	}

	w := b.View("", 0, 5)
	assert.Equal(t, []string{"line 16", "line 17", "line 18", "line 19", "line 20"}, w.Lines)
	assert.Equal(t, 16, w.From)
	assert.Equal(t, 20, w.To)
	assert.Equal(t, 20, w.Total)

	w = b.View("", 3, 5)
	assert.Equal(t, "line 13", w.Lines[0])
	assert.Equal(t, "line 17", w.Lines[4])
}

func TestViewClampsOffset(t *testing.T) {
	b := NewBuffer(100)
	for i := 1; i <= 20; i++ {
		b.Append(fmt.Sprintf("line %d", i))
	}

	w := b.View("", 999, 5)
	assert.Equal(t, 15, w.Offset)
	assert.Equal(t, "line 1", w.Lines[0])

	w = b.View("", 4, 50)
	assert.Equal(t, 0, w.Offset)
	assert.Len(t, w.Lines, 20)
}

func TestViewFilterIsCaseInsensitive(t *testing.T) {
	b := NewBuffer(100)
	b.Append("Solana update")
	b.Append("bitcoin")
	b.Append("[stderr] SOLANA rate limit")

	w := b.View("solana", 0, 10)
	assert.Equal(t, []string{"Solana update", "[stderr] SOLANA rate limit"}, w.Lines)
	assert.Equal(t, 2, w.Total)
}

func TestViewEmptyFilterResult(t *testing.T) {
	b := NewBuffer(100)
	b.Append("only line")

	w := b.View("missing", 7, 10)
	assert.True(t, w.Empty())
	assert.Equal(t, 0, w.Total)
	assert.Equal(t, 0, w.Offset)
	assert.Equal(t, 0, w.From)
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(5, 3, 10))
	assert.Equal(t, 2, ClampOffset(5, 12, 10))
	assert.Equal(t, 0, ClampOffset(-3, 40, 10))
	assert.Equal(t, 7, ClampOffset(7, 40, 10))
}

package render

import (
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "..."

// Clip shortens s to at most width cells. Clipped text ends in "...", or is
// all dots when width is 3 or less.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// Pad right-pads s with spaces to exactly width cells. s must already fit.
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if s == "" {
		// the padding writer only pads lines it has seen content on
		return strings.Repeat(" ", width)
	}
	return padding.String(s, uint(width))
}

// Fit clips and pads s to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Clip(flatten(s), width), width)
}

// flatten expands tabs and folds line breaks so one logical line always
// occupies one row.
func flatten(s string) string {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}

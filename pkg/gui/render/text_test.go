package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestClip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "..."},
		{"hello", 2, ".."},
		{"hello", 0, ""},
		{"hello", -4, ""},
	}
	for _, tt := range tests {
		if got := Clip(tt.in, tt.width); got != tt.want {
			t.Fatalf("Clip(%q, %d) = %q want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFitProducesExactWidth(t *testing.T) {
	inputs := []string{
		"",
		"short",
		"a much longer line that will certainly need clipping to fit",
		"tab\tseparated\tvalues",
		"wide 漢字漢字漢字漢字漢字",
		"line\nbreak",
	}
	for _, in := range inputs {
		for _, width := range []int{1, 3, 4, 7, 12, 30} {
			if got := lipgloss.Width(Fit(in, width)); got != width {
				t.Fatalf("Fit(%q, %d) width = %d", in, width, got)
			}
		}
	}
}

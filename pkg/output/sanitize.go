package output

import (
	"strings"
	"unicode"
)

const (
	esc = '\x1b'
	bel = '\x07'
)

// Sanitize strips terminal control sequences from a line of subcommand output.
//
// CSI sequences (ESC '[' ... final byte in '@'..'~') and OSC sequences
// (ESC ']' ... BEL or ESC '\') are removed whole. Any other ESC is dropped on
// its own. Newlines, tabs and printable runes are kept; every other control
// character is dropped.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == esc {
			if i+1 < len(runes) {
				switch runes[i+1] {
				case '[':
					i = skipCSI(runes, i+2)
					continue
				case ']':
					i = skipOSC(runes, i+2)
					continue
				}
			}
			continue
		}
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// skipCSI returns the index of the final byte of a CSI sequence whose
// parameters start at i, or the last index when the sequence is unterminated.
func skipCSI(runes []rune, i int) int {
	for ; i < len(runes); i++ {
		if runes[i] >= '@' && runes[i] <= '~' {
			return i
		}
	}
	return len(runes) - 1
}

// skipOSC returns the index of the terminator of an OSC sequence whose
// payload starts at i.
func skipOSC(runes []rune, i int) int {
	for ; i < len(runes); i++ {
		if runes[i] == bel {
			return i
		}
		if runes[i] == esc && i+1 < len(runes) && runes[i+1] == '\\' {
			return i + 1
		}
	}
	return len(runes) - 1
}

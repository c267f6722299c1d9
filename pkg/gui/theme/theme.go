package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared by every preset. Badges and the selected row use
// these regardless of the active theme.
var (
	// Status colors
	SuccessStatus = "#50fa7b" // 83 - green for a clean exit
	WarningStatus = "#ffb86c" // 214 - orange for the inline prompt
	ErrorStatus   = "#ff5555" // 196 - red for failed runs
	InfoStatus    = "#8be9fd" // 86 - cyan for running subcommands

	// UI colors
	TextMuted    = "#7a7a7a" // 240 - idle badge
	RowHighlight = "#525252" // subtle medium gray for the selected action
)

// Token is one themable style: a foreground color plus weight.
type Token struct {
	Foreground string `yaml:"foreground" json:"foreground"`
	Bold       bool   `yaml:"bold" json:"bold"`
	Faint      bool   `yaml:"faint" json:"faint"`
}

// Style converts the token to a lipgloss style.
func (t Token) Style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(t.Bold).Faint(t.Faint)
	if t.Foreground != "" {
		s = s.Foreground(lipgloss.Color(t.Foreground))
	}
	return s
}

// Render styles text with the token.
func (t Token) Render(text string) string {
	return t.Style().Render(text)
}

// Theme is the set of style tokens used to draw the dashboard.
type Theme struct {
	Name   string
	Accent Token // titles, active tab, selected action
	Border Token // box borders
	Muted  Token // secondary text and hints
	Hero   Token // animated hero line
	Reset  Token // body text
}

// DefaultName is the preset used when no theme is configured.
const DefaultName = "classic"

var presets = map[string]Theme{
	"classic": {
		Accent: Token{Foreground: "6", Bold: true},
		Border: Token{Faint: true},
		Muted:  Token{Faint: true},
		Hero:   Token{Foreground: "4", Bold: true},
	},
	"minimal": {
		Accent: Token{Bold: true},
		Hero:   Token{Bold: true},
	},
	"ocean": {
		Accent: Token{Foreground: "14", Bold: true},
		Border: Token{Foreground: "39"},
		Muted:  Token{Foreground: "244"},
		Hero:   Token{Foreground: "12", Bold: true},
	},
	"amber": {
		Accent: Token{Foreground: "3", Bold: true},
		Border: Token{Foreground: "214"},
		Muted:  Token{Foreground: "244"},
		Hero:   Token{Foreground: "3", Bold: true},
	},
	"neon": {
		Accent: Token{Foreground: "13", Bold: true},
		Border: Token{Foreground: "45"},
		Muted:  Token{Foreground: "244"},
		Hero:   Token{Foreground: "10", Bold: true},
	},
}

// Preset returns the named preset, falling back to classic for unknown names.
func Preset(name string) Theme {
	key := strings.ToLower(strings.TrimSpace(name))
	t, ok := presets[key]
	if !ok {
		key = DefaultName
		t = presets[key]
	}
	t.Name = key
	return t
}

// Names lists the preset names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package icons provides consistent icon representations using Nerd Fonts
// for the actions and markers in the xint dashboard.
package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

// Action icons, one per catalog entry
var (
	Search = Icon{
		NerdFont: "\uf002", // Nerd Font magnifier
		Fallback: "⌕",
	}

	Trends = Icon{
		NerdFont: "\uf201", // Nerd Font line chart
		Fallback: "↗",
	}

	Profile = Icon{
		NerdFont: "\uf007", // Nerd Font user
		Fallback: "@",
	}

	Thread = Icon{
		NerdFont: "\uf086", // Nerd Font comments
		Fallback: "≡",
	}

	Article = Icon{
		NerdFont: "\uf15c", // Nerd Font text file
		Fallback: "¶",
	}

	Help = Icon{
		NerdFont: "\uf059", // Nerd Font question circle
		Fallback: "?",
	}

	Exit = Icon{
		NerdFont: "\uf08b", // Nerd Font sign out
		Fallback: "×",
	}
)

var actionIcons = map[string]Icon{
	"1": Search,
	"2": Trends,
	"3": Profile,
	"4": Thread,
	"5": Article,
	"6": Help,
	"0": Exit,
}

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	// Check common environment variables that indicate Nerd Font usage
	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"tmux-256color", "xterm-256color", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// ForAction returns the icon for a catalog action key, or a blank of the same
// width when the key has no icon.
func ForAction(key string) string {
	icon, ok := actionIcons[key]
	if !ok {
		return " "
	}
	return icon.Get()
}

package common

import (
	"strings"
)

// Footer builds the key-hint line at the bottom of the status box.
type Footer struct {
	shortcutOverlay *ShortcutOverlay
}

// NewFooter creates a new footer component
func NewFooter(overlay *ShortcutOverlay) *Footer {
	return &Footer{shortcutOverlay: overlay}
}

// GetShortcuts returns the current shortcuts to display based on mode
func (f *Footer) GetShortcuts() []Shortcut {
	if f.shortcutOverlay == nil {
		return nil
	}
	return f.shortcutOverlay.FormatShortcuts()
}

// View renders the hints as plain text, " key desc • key desc ". Styling and
// width fitting are left to the caller.
func (f *Footer) View() string {
	shortcuts := f.GetShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(shortcuts))
	for _, shortcut := range shortcuts {
		if shortcut.Description == "" {
			parts = append(parts, shortcut.Key)
			continue
		}
		parts = append(parts, shortcut.Key+" "+shortcut.Description)
	}
	return " " + strings.Join(parts, " • ") + " "
}

// Hints is a convenience for rendering the footer of a given mode and width.
func Hints(keyMap *GlobalKeyMap, mode Mode, wide bool) string {
	overlay := NewShortcutOverlay(keyMap)
	overlay.SetMode(mode)
	overlay.SetWide(wide)
	return NewFooter(overlay).View()
}

package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// Mode is the interaction mode the footer describes.
type Mode int

const (
	ModeNavigate Mode = iota
	ModePrompt
	ModeRunning
)

// ShortcutOverlay picks the shortcuts relevant to the current mode.
type ShortcutOverlay struct {
	keyMap *GlobalKeyMap
	mode   Mode
	wide   bool // double-pane layout, room for the longer hint set
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *GlobalKeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{
		keyMap: keyMap,
		mode:   ModeNavigate,
	}
}

// SetMode updates the interaction mode
func (s *ShortcutOverlay) SetMode(mode Mode) {
	s.mode = mode
}

// SetWide switches between the double-pane and single-pane hint sets.
func (s *ShortcutOverlay) SetWide(wide bool) {
	s.wide = wide
}

// Shortcut is one rendered footer hint.
type Shortcut struct {
	Key         string
	Description string
}

// FormatShortcuts returns the hints for the current mode.
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	k := s.keyMap
	switch s.mode {
	case ModePrompt:
		return s.format(k.Commit, k.Cancel, k.Backspace)
	case ModeRunning:
		return []Shortcut{{Key: "…", Description: "input paused while running"}}
	}

	var shortcuts []Shortcut
	if s.wide && k.Up.Enabled() && k.Down.Enabled() {
		shortcuts = append(shortcuts, Shortcut{Key: "↑↓", Description: "move"})
	}
	shortcuts = append(shortcuts, s.format(k.Run, k.NextTab, k.Filter, k.Palette)...)
	if k.PageUp.Enabled() && k.PageDown.Enabled() {
		desc := "scroll"
		if !s.wide {
			desc = ""
		}
		shortcuts = append(shortcuts, Shortcut{Key: "pgup/pgdn", Description: desc})
	}
	return append(shortcuts, s.format(k.Quit)...)
}

func (s *ShortcutOverlay) format(bindings ...key.Binding) []Shortcut {
	shortcuts := make([]Shortcut, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		shortcuts = append(shortcuts, Shortcut{
			Key:         binding.Help().Key,
			Description: binding.Help().Desc,
		})
	}
	return shortcuts
}

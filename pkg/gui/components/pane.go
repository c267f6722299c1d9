package components

import "github.com/charmbracelet/lipgloss"

// PaneBaseStyle is the bordered box every dashboard section is drawn in.
var PaneBaseStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder())

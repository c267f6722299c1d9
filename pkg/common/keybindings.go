package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the dashboard keybindings.
//
// Navigation keys only apply while no inline prompt is open and no
// subcommand is running. Prompt keys only apply while a prompt is open.
type GlobalKeyMap struct {
	// Global keys
	Quit key.Binding // q, Esc, Ctrl+C - leave the dashboard
	Help key.Binding // ? - open the Help tab

	// Navigation
	Up   key.Binding // ↑, k - previous action
	Down key.Binding // ↓, j - next action

	// Tabs
	NextTab     key.Binding // Tab - cycle tabs
	TabCommands key.Binding // 1
	TabOutput   key.Binding // 2
	TabHelp     key.Binding // 3

	// Output
	PageUp   key.Binding // PgUp - scroll toward older lines
	PageDown key.Binding // PgDn - scroll toward newer lines
	Filter   key.Binding // f, F - output search

	// Actions
	Run     key.Binding // Enter - run the selected action
	Palette key.Binding // / - command palette

	// Inline prompt
	Commit    key.Binding // Enter - commit the typed value
	Cancel    key.Binding // Esc, Ctrl+C - commit an empty value
	Backspace key.Binding // Backspace - delete one character
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help tab"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "views"),
		),
		TabCommands: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "commands tab"),
		),
		TabOutput: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "output tab"),
		),
		TabHelp: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "help tab"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "older output"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "newer output"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "filter"),
		),

		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Palette: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "palette"),
		),

		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Run,
		k.NextTab,
		k.Filter,
		k.Palette,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run},                              // Actions
		{k.NextTab, k.TabCommands, k.TabOutput, k.TabHelp}, // Tabs
		{k.Filter, k.PageUp, k.PageDown},                   // Output
		{k.Palette},                                        // Palette
		{k.Commit, k.Cancel, k.Backspace},                  // Inline prompt
		{k.Help, k.Quit},                                   // Global
	}
}

// HelpSectionOrder is the order GetHelpSections is rendered in.
var HelpSectionOrder = []string{"Actions", "Tabs", "Output", "Palette", "Inline Prompt", "Global"}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	full := k.FullHelp()
	sections := make(map[string][]key.Binding, len(HelpSectionOrder))
	for i, name := range HelpSectionOrder {
		sections[name] = full[i]
	}
	return sections
}

// HelpLines formats every section as indented "key: description" lines for
// the Help tab.
func (k *GlobalKeyMap) HelpLines() []string {
	sections := k.GetHelpSections()
	var lines []string
	for i, name := range HelpSectionOrder {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, name)
		for _, binding := range sections[name] {
			help := binding.Help()
			lines = append(lines, "  "+help.Key+": "+help.Desc)
		}
	}
	return lines
}

// SetNavigationEnabled toggles every key that is ignored while a prompt is
// open or a subcommand is running.
func (k *GlobalKeyMap) SetNavigationEnabled(enabled bool) {
	for _, binding := range []*key.Binding{
		&k.Quit, &k.Help, &k.Up, &k.Down,
		&k.NextTab, &k.TabCommands, &k.TabOutput, &k.TabHelp,
		&k.PageUp, &k.PageDown, &k.Filter, &k.Run, &k.Palette,
	} {
		binding.SetEnabled(enabled)
	}
}

// SetPromptEnabled toggles the inline prompt keys.
func (k *GlobalKeyMap) SetPromptEnabled(enabled bool) {
	k.Commit.SetEnabled(enabled)
	k.Cancel.SetEnabled(enabled)
	k.Backspace.SetEnabled(enabled)
}

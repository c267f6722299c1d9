package state

import (
	"xint/pkg/actions"
	"xint/pkg/output"
)

// Tab is one of the dashboard tabs.
type Tab int

const (
	TabCommands Tab = iota
	TabOutput
	TabHelp
)

// Tabs lists the tabs in strip order.
var Tabs = []Tab{TabCommands, TabOutput, TabHelp}

// Label returns the tab title.
func (t Tab) Label() string {
	switch t {
	case TabOutput:
		return "Output"
	case TabHelp:
		return "Help"
	default:
		return "Commands"
	}
}

// Number returns the 1-based position shown in the tab strip.
func (t Tab) Number() int {
	return int(t) + 1
}

// Next cycles Commands -> Output -> Help -> Commands.
func (t Tab) Next() Tab {
	return Tab(actions.Wrap(int(t)+1, len(Tabs)))
}

// PromptPurpose says what a committed inline prompt feeds.
type PromptPurpose int

const (
	// PurposeAction collects the value of a parameterized action.
	PurposeAction PromptPurpose = iota
	// PurposeFilter sets the output filter.
	PurposeFilter
	// PurposePalette resolves a palette query.
	PurposePalette
)

// InlinePrompt is the single-line editor drawn inside the dashboard.
type InlinePrompt struct {
	Label       string
	Placeholder string // previous value, shown when the buffer is empty
	Purpose     PromptPurpose
	ActionKey   string // set for PurposeAction

	value []rune
}

// Value returns the current buffer contents.
func (p *InlinePrompt) Value() string {
	return string(p.value)
}

// Len returns the buffer length in runes.
func (p *InlinePrompt) Len() int {
	return len(p.value)
}

// Insert appends runes to the buffer.
func (p *InlinePrompt) Insert(runes ...rune) {
	p.value = append(p.value, runes...)
}

// Backspace removes the last rune, if any.
func (p *InlinePrompt) Backspace() {
	if len(p.value) > 0 {
		p.value = p.value[:len(p.value)-1]
	}
}

// UI is the view state of the dashboard.
type UI struct {
	Selection int
	Tab       Tab
	Offset    int
	Filter    string
	Prompt    *InlinePrompt
}

// NewUI returns the initial view state: first action selected, Output tab.
func NewUI() *UI {
	return &UI{Tab: TabOutput}
}

// Prompting reports whether an inline prompt is open.
func (u *UI) Prompting() bool {
	return u.Prompt != nil
}

// MoveSelection moves the selection by delta, wrapping within n entries.
// It does nothing while a prompt is open.
func (u *UI) MoveSelection(delta, n int) {
	if u.Prompting() {
		return
	}
	u.Selection = actions.Wrap(u.Selection+delta, n)
}

// Select jumps to a catalog index.
func (u *UI) Select(index, n int) {
	u.Selection = actions.Wrap(index, n)
}

// NextTab advances to the next tab.
func (u *UI) NextTab() {
	u.Tab = u.Tab.Next()
}

// SetFilter replaces the output filter and scrolls back to the newest line.
func (u *UI) SetFilter(filter string) {
	u.Filter = filter
	u.Offset = 0
}

// ScrollBy moves the output offset by delta lines and clamps it against the
// current filtered line count and viewport height. Positive deltas scroll
// toward older lines.
func (u *UI) ScrollBy(delta, total, height int) {
	u.Offset = output.ClampOffset(u.Offset+delta, total, height)
}

// OpenPrompt opens an inline prompt, replacing any open one.
func (u *UI) OpenPrompt(label, placeholder string, purpose PromptPurpose, actionKey string) *InlinePrompt {
	u.Prompt = &InlinePrompt{
		Label:       label,
		Placeholder: placeholder,
		Purpose:     purpose,
		ActionKey:   actionKey,
	}
	return u.Prompt
}

// ClosePrompt closes the prompt and returns it so the caller can act on the
// committed value. It returns nil when no prompt was open.
func (u *UI) ClosePrompt() *InlinePrompt {
	p := u.Prompt
	u.Prompt = nil
	return p
}

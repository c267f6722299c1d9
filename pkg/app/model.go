package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"xint/internal/debug"
	"xint/pkg/actions"
	"xint/pkg/common"
	"xint/pkg/gui/components"
	"xint/pkg/gui/layout"
	"xint/pkg/gui/render"
	"xint/pkg/gui/theme"
	"xint/pkg/palette"
	"xint/pkg/plan"
	"xint/pkg/runner"
	"xint/pkg/state"
)

// scrollStep is how far PgUp/PgDn move the output window.
const scrollStep = 10

// Options configures a dashboard session.
type Options struct {
	Catalog actions.Catalog
	Builder plan.Builder
	Runner  Runner
	Theme   theme.Theme
	Hero    bool

	// ThemeEvents, when set, delivers reloaded themes.
	ThemeEvents <-chan theme.Theme
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Catalog == nil {
		o.Catalog = actions.Default
	}
	if o.Builder == nil {
		o.Builder = plan.Default
	}
	if o.Theme.Name == "" {
		o.Theme = theme.Preset(theme.DefaultName)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type runTickMsg struct {
	id string
}

type animTickMsg struct{}

type themeChangedMsg struct {
	theme theme.Theme
}

// Model is the bubbletea model of the dashboard. UI and session state live
// behind pointers so the value receivers below share them.
type Model struct {
	ctx     context.Context
	opts    Options
	keys    *common.GlobalKeyMap
	layout  *layout.Layout
	ui      *state.UI
	session *state.Session
	theme   theme.Theme

	run      *runner.Run
	quitting bool
	err      error
}

// New creates the model for a cols x rows terminal.
func New(ctx context.Context, opts Options, cols, rows int) Model {
	opts = opts.withDefaults()
	return Model{
		ctx:     ctx,
		opts:    opts,
		keys:    common.NewGlobalKeyMap(),
		layout:  layout.NewLayout(cols, rows, opts.Hero),
		ui:      state.NewUI(),
		session: state.NewSession(),
		theme:   opts.Theme,
	}
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// UI exposes the view state.
func (m Model) UI() *state.UI {
	return m.ui
}

// Session exposes the session state.
func (m Model) Session() *state.Session {
	return m.session
}

// Running reports whether a subcommand is live.
func (m Model) Running() bool {
	return m.run != nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(animTick(), waitForTheme(m.opts.ThemeEvents))
}

func animTick() tea.Cmd {
	return tea.Tick(components.HeroInterval, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

func runTick(id string) tea.Cmd {
	return tea.Tick(runner.Quantum, func(time.Time) tea.Msg {
		return runTickMsg{id: id}
	})
}

func waitForTheme(events <-chan theme.Theme) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-events
		if !ok {
			return nil
		}
		return themeChangedMsg{theme: t}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		return m, nil

	case animTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, animTick()

	case runTickMsg:
		if m.run == nil || m.run.ID != msg.id {
			return m, nil
		}
		return m.stepRun()

	case themeChangedMsg:
		m.theme = msg.theme
		debug.Log("theme reloaded: %s", msg.theme.Name)
		return m, waitForTheme(m.opts.ThemeEvents)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.run != nil {
		return m, nil
	}
	if m.ui.Prompting() {
		return m.handlePromptKey(msg)
	}

	n := len(m.opts.Catalog)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.ui.MoveSelection(-1, n)
	case key.Matches(msg, m.keys.Down):
		m.ui.MoveSelection(1, n)
	case key.Matches(msg, m.keys.NextTab):
		m.ui.NextTab()
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.TabHelp):
		m.ui.Tab = state.TabHelp
	case key.Matches(msg, m.keys.TabCommands):
		m.ui.Tab = state.TabCommands
	case key.Matches(msg, m.keys.TabOutput):
		m.ui.Tab = state.TabOutput
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(scrollStep)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(-scrollStep)
	case key.Matches(msg, m.keys.Run):
		m.ui.Tab = state.TabOutput
		return m.activate(m.ui.Selection)
	case key.Matches(msg, m.keys.Filter):
		m.openPrompt("Output search (blank clears)", "", state.PurposeFilter, "")
	case key.Matches(msg, m.keys.Palette):
		m.openPrompt("Palette (/)", "", state.PurposePalette, "")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		idx := m.opts.Catalog.Index(m.opts.Catalog.Normalize(string(msg.Runes)))
		if idx < 0 {
			return m, nil
		}
		m.ui.Select(idx, n)
		return m.activate(idx)
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		return m.commitPrompt(m.ui.Prompt.Value())
	case key.Matches(msg, m.keys.Cancel):
		return m.commitPrompt("")
	case key.Matches(msg, m.keys.Backspace):
		m.ui.Prompt.Backspace()
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		m.ui.Prompt.Insert(msg.Runes...)
	}
	return m, nil
}

// scroll moves the output window on the Output tab. Positive deltas show
// older lines.
func (m Model) scroll(delta int) {
	if m.ui.Tab != state.TabOutput {
		return
	}
	total := len(m.session.Output.Filtered(m.ui.Filter))
	m.ui.ScrollBy(delta, total, m.layout.OutputViewport(m.ui.Prompting()))
}

func (m Model) openPrompt(label, placeholder string, purpose state.PromptPurpose, actionKey string) {
	m.ui.Tab = state.TabOutput
	m.ui.OpenPrompt(label, placeholder, purpose, actionKey)
	m.keys.SetNavigationEnabled(false)
	m.keys.SetPromptEnabled(true)
}

func (m Model) closePrompt() *state.InlinePrompt {
	p := m.ui.ClosePrompt()
	m.keys.SetPromptEnabled(false)
	m.keys.SetNavigationEnabled(true)
	return p
}

// activate starts the action at a catalog index: quit, prompt for its value,
// or run it straight away.
func (m Model) activate(index int) (tea.Model, tea.Cmd) {
	action := m.opts.Catalog.At(index)
	if action.Quit {
		return m.quit()
	}
	if action.Prompt == nil {
		return m.runAction(action, "")
	}
	previous, _ := m.session.LastValue(action.Key)
	m.openPrompt(action.Prompt.Label, previous, state.PurposeAction, action.Key)
	return m, nil
}

func (m Model) commitPrompt(value string) (tea.Model, tea.Cmd) {
	p := m.closePrompt()
	if p == nil {
		return m, nil
	}

	switch p.Purpose {
	case state.PurposeFilter:
		m.ui.SetFilter(strings.TrimSpace(value))
		m.ui.Tab = state.TabOutput
		m.session.SetStatus(state.Info(filterStatus(m.ui.Filter)))
		return m, nil

	case state.PurposePalette:
		idx, ok := palette.BestMatch(m.opts.Catalog, value)
		if !ok {
			m.session.SetStatus(state.Info(paletteMissStatus(m.opts.Catalog, value)))
			return m, nil
		}
		m.ui.Select(idx, len(m.opts.Catalog))
		m.ui.Tab = state.TabOutput
		return m.activate(idx)
	}

	idx := m.opts.Catalog.Index(p.ActionKey)
	if idx < 0 {
		m.session.SetStatus(state.Info(invalidSelection))
		return m, nil
	}
	previous, _ := m.session.LastValue(p.ActionKey)
	return m.runAction(m.opts.Catalog[idx], resolveValue(value, previous))
}

func (m Model) runAction(action actions.Action, value string) (tea.Model, tea.Cmd) {
	pl, ok := preparePlan(m.session, m.opts.Builder, action, value)
	if !ok {
		return m, nil
	}
	m.session.Output.Clear()
	m.ui.Offset = 0
	run, err := m.opts.Runner.Start(m.ctx, pl.Args)
	if err != nil {
		m.err = err
		return m.quit()
	}
	m.run = run
	m.keys.SetNavigationEnabled(false)
	m.session.SetStatus(state.Running(runner.RunningStatus(run.Spinner())))
	debug.Log("run %s: %s", run.ID, pl.Display)
	return m, runTick(run.ID)
}

// stepRun is one supervising step: drain queued lines, check for exit,
// advance the spinner.
func (m Model) stepRun() (tea.Model, tea.Cmd) {
	run := m.run
	run.Drain(m.appendLine)
	if res, done := run.Poll(); done {
		run.Drain(m.appendLine)
		m.run = nil
		m.keys.SetNavigationEnabled(true)
		if res.Success() {
			m.session.SetStatus(state.Success(res.Status()))
		} else {
			m.session.SetStatus(state.Failure(res.Status()))
		}
		return m, nil
	}
	m.session.SetStatus(state.Running(runner.RunningStatus(run.Spinner())))
	return m, runTick(run.ID)
}

func (m Model) appendLine(line string) {
	m.session.Output.Append(line)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return render.Render(render.View{
		UI:      m.ui,
		Session: m.session,
		Catalog: m.opts.Catalog,
		Theme:   m.theme,
		Keys:    m.keys,
		Hero:    m.layout.HasHero(),
		Now:     m.opts.Now(),
	}, m.layout.GetWidth(), m.layout.GetHeight())
}

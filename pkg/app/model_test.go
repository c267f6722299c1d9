package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xint/pkg/runner"
	"xint/pkg/state"
)

// echoArgs prints the forwarded policy flag and plan args on one line.
const echoArgs = `echo "$@"`

func shellRunner(script string) *runner.Runner {
	return &runner.Runner{
		Executable: "/bin/sh",
		Prefix:     []string{"-c", script, "xint"},
	}
}

func newModel(script string) Model {
	return New(context.Background(), Options{
		Runner: shellRunner(script),
		Hero:   true,
		Now:    func() time.Time { return time.UnixMilli(0) },
	}, 120, 32)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = update(m, msg)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, runes(string(r)))
	}
	return m
}

func finish(t *testing.T, m Model) Model {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for m.Running() {
		if time.Now().After(deadline) {
			t.Fatal("run did not finish")
		}
		time.Sleep(10 * time.Millisecond)
		m, _ = update(m, runTickMsg{id: m.run.ID})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitialState(t *testing.T) {
	m := newModel(echoArgs)
	assert.Equal(t, state.TabOutput, m.UI().Tab)
	assert.Equal(t, 0, m.UI().Selection)
	assert.False(t, m.UI().Prompting())

	view := m.View()
	assert.Equal(t, 32, lipgloss.Height(view))
	assert.Equal(t, 120, lipgloss.Width(view))
}

func TestTabKeys(t *testing.T) {
	m := newModel(echoArgs)

	m = press(m, runes("1"))
	assert.Equal(t, state.TabCommands, m.UI().Tab)
	m = press(m, runes("3"))
	assert.Equal(t, state.TabHelp, m.UI().Tab)
	m = press(m, runes("2"))
	assert.Equal(t, state.TabOutput, m.UI().Tab)
	m = press(m, runes("?"))
	assert.Equal(t, state.TabHelp, m.UI().Tab)
	m = press(m, keyOf(tea.KeyTab))
	assert.Equal(t, state.TabCommands, m.UI().Tab)
}

func TestSelectionWraps(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, keyOf(tea.KeyUp))
	assert.Equal(t, 6, m.UI().Selection)
	m = press(m, keyOf(tea.KeyDown), keyOf(tea.KeyDown))
	assert.Equal(t, 1, m.UI().Selection)
	m = press(m, runes("k"))
	assert.Equal(t, 0, m.UI().Selection)
}

func TestSearchRunsPlan(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("1"), keyOf(tea.KeyEnter))
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "Search query", m.UI().Prompt.Label)
	assert.Equal(t, state.TabOutput, m.UI().Tab, "opening a prompt shows the Output tab")

	m = typeText(m, "ai & solana")
	m, cmd := update(m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.True(t, m.Running())
	assert.Equal(t, state.StatusRunning, m.Session().Status.Kind)
	assert.Equal(t, "running |", m.Session().Status.Message)

	m = finish(t, m)
	assert.Equal(t, "xint search ai AND solana", m.Session().LastCommand)
	assert.Equal(t, []string{"--policy read_only search ai AND solana"}, m.Session().Output.Lines())
	assert.Equal(t, state.Success("success"), m.Session().Status)
	assert.Equal(t, state.PhaseDone, state.DerivePhase(m.UI(), m.Session()))
}

func TestRequiredValueSetsStatus(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, keyOf(tea.KeyEnter), keyOf(tea.KeyEnter))
	assert.False(t, m.UI().Prompting())
	assert.False(t, m.Running())
	assert.Equal(t, "query is required", m.Session().Status.Message)
	assert.Equal(t, state.PhaseIdle, state.DerivePhase(m.UI(), m.Session()))
}

func TestEscCommitsEmptyValue(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("s"))
	m = typeText(m, "abc")
	m = press(m, keyOf(tea.KeyEsc))
	assert.False(t, m.UI().Prompting())
	assert.Equal(t, "query is required", m.Session().Status.Message)
}

func TestEmptyCommitReusesPreviousValue(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("s"))
	m = typeText(m, "ai")
	m = press(m, keyOf(tea.KeyEnter))
	m = finish(t, m)

	m = press(m, runes("s"))
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "ai", m.UI().Prompt.Placeholder)
	m = press(m, keyOf(tea.KeyEnter))
	m = finish(t, m)
	assert.Equal(t, "xint search ai", m.Session().LastCommand)
}

func TestTrendsWithBlankValueIsGlobal(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("t"), keyOf(tea.KeyEnter))
	m = finish(t, m)
	assert.Equal(t, "xint trends", m.Session().LastCommand)
	assert.Equal(t, 1, m.UI().Selection)
	assert.Equal(t, []string{"--policy read_only trends"}, m.Session().Output.Lines())
}

func TestProfileStripsAt(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("p"))
	m = typeText(m, "@nyk")
	m = press(m, keyOf(tea.KeyEnter))
	m = finish(t, m)
	assert.Equal(t, "xint profile nyk", m.Session().LastCommand)
	value, ok := m.Session().LastValue("3")
	assert.True(t, ok)
	assert.Equal(t, "nyk", value)
}

func TestProfileRequiresUsername(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("p"))
	m = typeText(m, "@")
	m = press(m, keyOf(tea.KeyEnter))
	assert.False(t, m.Running())
	assert.Equal(t, "username is required", m.Session().Status.Message)
}

func TestLetterQIsTextInsidePrompt(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("s"))
	m, cmd := update(m, runes("q"))
	assert.False(t, isQuit(cmd))
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "q", m.UI().Prompt.Value())

	m = press(m, keyOf(tea.KeyBackspace))
	assert.Equal(t, "", m.UI().Prompt.Value())
	m = press(m, runes("a"), keyOf(tea.KeySpace), runes("b"))
	assert.Equal(t, "a b", m.UI().Prompt.Value())
}

func TestFilterResetsOffset(t *testing.T) {
	m := newModel(echoArgs)
	for i := 0; i < 100; i++ {
		m.Session().Output.Append("line")
	}
	m = press(m, keyOf(tea.KeyPgUp))
	require.Equal(t, 10, m.UI().Offset)

	m = press(m, runes("f"))
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "Output search (blank clears)", m.UI().Prompt.Label)
	m = typeText(m, " LINE ")
	m = press(m, keyOf(tea.KeyEnter))
	assert.Equal(t, "LINE", m.UI().Filter)
	assert.Equal(t, 0, m.UI().Offset)
	assert.Equal(t, "output filter active: LINE", m.Session().Status.Message)

	m = press(m, runes("F"), keyOf(tea.KeyEnter))
	assert.Equal(t, "", m.UI().Filter)
	assert.Equal(t, "output filter cleared", m.Session().Status.Message)
}

func TestPageKeysOnlyScrollOutputTab(t *testing.T) {
	m := newModel(echoArgs)
	for i := 0; i < 100; i++ {
		m.Session().Output.Append("line")
	}
	m = press(m, runes("1"), keyOf(tea.KeyPgUp))
	assert.Equal(t, 0, m.UI().Offset)

	m = press(m, runes("2"), keyOf(tea.KeyPgUp), keyOf(tea.KeyPgUp), keyOf(tea.KeyPgDown))
	assert.Equal(t, 10, m.UI().Offset)
	m = press(m, keyOf(tea.KeyPgDown), keyOf(tea.KeyPgDown))
	assert.Equal(t, 0, m.UI().Offset)
}

func TestPaletteMiss(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("/"))
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "Palette (/)", m.UI().Prompt.Label)
	m = typeText(m, "zzz")
	m = press(m, keyOf(tea.KeyEnter))
	assert.Equal(t, "no palette match: zzz", m.Session().Status.Message)
	assert.False(t, m.Running())

	m = press(m, runes("/"), keyOf(tea.KeyEnter))
	assert.Equal(t, "no palette match: (empty)", m.Session().Status.Message)
}

func TestPaletteSubsequenceOnlyHints(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("/"))
	m = typeText(m, "sr")
	m = press(m, keyOf(tea.KeyEnter))

	assert.Equal(t, "no palette match: sr (did you mean Search?)", m.Session().Status.Message)
	assert.False(t, m.Running())
	assert.False(t, m.UI().Prompting())
	assert.Equal(t, 0, m.UI().Selection)
}

func TestPaletteMatchSelectsAndActivates(t *testing.T) {
	m := newModel(echoArgs)
	m = press(m, runes("1"), runes("/"))
	m = typeText(m, "trend")
	m = press(m, keyOf(tea.KeyEnter))
	assert.Equal(t, 1, m.UI().Selection)
	assert.Equal(t, state.TabOutput, m.UI().Tab)
	require.True(t, m.UI().Prompting())
	assert.Equal(t, "Location (blank for worldwide)", m.UI().Prompt.Label)
}

func TestKeysIgnoredWhileRunning(t *testing.T) {
	m := newModel(`sleep 0.3; echo done`)
	m = press(m, runes("h"))
	require.True(t, m.Running())

	m, cmd := update(m, runes("q"))
	assert.False(t, isQuit(cmd))
	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyDown))
	assert.Equal(t, state.TabOutput, m.UI().Tab)
	assert.Equal(t, 5, m.UI().Selection)

	m = finish(t, m)
	assert.Equal(t, "xint --help", m.Session().LastCommand)
	assert.Equal(t, []string{"done"}, m.Session().Output.Lines())
}

func TestFailedRunSetsErrorPhase(t *testing.T) {
	m := newModel(`echo boom >&2; exit 2`)
	m = press(m, runes("6"))
	m = finish(t, m)
	assert.Equal(t, state.Failure("failed (exit 2)"), m.Session().Status)
	assert.Equal(t, state.PhaseError, state.DerivePhase(m.UI(), m.Session()))
	assert.Equal(t, []string{"[stderr] boom"}, m.Session().Output.Lines())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), keyOf(tea.KeyEsc), keyOf(tea.KeyCtrlC), runes("0")} {
		m := newModel(echoArgs)
		m, cmd := update(m, msg)
		assert.True(t, isQuit(cmd), "key %s", msg)
		assert.Equal(t, "", m.View())
	}
}

func TestSpawnFailureIsFatal(t *testing.T) {
	m := New(context.Background(), Options{
		Runner: &runner.Runner{Executable: "/nonexistent/xint-binary"},
	}, 120, 32)
	m, cmd := update(m, runes("h"))
	assert.True(t, isQuit(cmd))
	assert.Error(t, m.Err())
	assert.False(t, m.Running())
}

func TestWindowResize(t *testing.T) {
	m := newModel(echoArgs)
	m, _ = update(m, tea.WindowSizeMsg{Width: 90, Height: 30})
	view := m.View()
	assert.Equal(t, 90, lipgloss.Width(view))
	assert.Equal(t, 30, lipgloss.Height(view))
}

func TestStaleRunTickIgnored(t *testing.T) {
	m := newModel(echoArgs)
	m, cmd := update(m, runTickMsg{id: "stale"})
	assert.Nil(t, cmd)
	assert.False(t, m.Running())
}

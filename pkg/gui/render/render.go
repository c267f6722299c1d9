// Package render draws the dashboard frame. Render is a pure function of its
// inputs: it never touches the terminal, and every row it returns is exactly
// as wide as the terminal.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"xint/pkg/actions"
	"xint/pkg/common"
	"xint/pkg/gui/components"
	"xint/pkg/gui/layout"
	"xint/pkg/gui/theme"
	"xint/pkg/state"
)

// View is everything a frame is drawn from.
type View struct {
	UI      *state.UI
	Session *state.Session
	Catalog actions.Catalog
	Theme   theme.Theme
	Keys    *common.GlobalKeyMap
	Hero    bool
	Now     time.Time
}

// TrackerWidth is the rail width requested for the header focus tracker.
const TrackerWidth = 16

// Render draws the full frame for a cols x rows terminal. The frame is
// always cols cells wide; it is rows tall unless rows is below the minimum
// body height.
func Render(v View, cols, rows int) string {
	v = v.withDefaults()
	l := layout.NewLayout(cols, rows, v.Hero)

	header := renderHeader(v, l)
	body := renderBody(v, l)
	status := renderStatus(v, l)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (v View) withDefaults() View {
	if v.UI == nil {
		v.UI = state.NewUI()
	}
	if v.Session == nil {
		v.Session = state.NewSession()
	}
	if v.Catalog == nil {
		v.Catalog = actions.Default
	}
	if v.Keys == nil {
		v.Keys = common.NewGlobalKeyMap()
	}
	if v.Theme.Name == "" {
		v.Theme = theme.Preset(theme.DefaultName)
	}
	return v
}

func renderHeader(v View, l *layout.Layout) string {
	width := l.GetInnerWidth()
	phase := state.DerivePhase(v.UI, v.Session)

	var lines []string
	if l.HasHero() {
		hero := " xint intelligence console  " + components.HeroWave(v.Now, phase == state.PhaseRunning)
		lines = append(lines, v.Theme.Hero.Render(Fit(hero, width)))
	}
	lines = append(lines,
		v.Theme.Reset.Render(Fit(" xint dashboard "+TabStrip(v.UI.Tab), width)),
		v.Theme.Accent.Render(Fit(" "+components.Tracker(TrackerWidth, trackerBasis(v.UI)), width)),
	)
	return box(v.Theme, lines)
}

// TabStrip renders the tab strip, e.g. "‹1:Commands› [2:Output] [3:Help]".
func TabStrip(active state.Tab) string {
	parts := make([]string, 0, len(state.Tabs))
	for _, tab := range state.Tabs {
		label := strconv.Itoa(tab.Number()) + ":" + tab.Label()
		if tab == active {
			parts = append(parts, "‹"+label+"›")
		} else {
			parts = append(parts, "["+label+"]")
		}
	}
	return strings.Join(parts, " ")
}

func trackerBasis(ui *state.UI) int {
	if ui.Prompt != nil {
		return ui.Prompt.Len()
	}
	return ui.Selection*4 + ui.Offset
}

func renderBody(v View, l *layout.Layout) string {
	if l.IsDouble() {
		leftWidth, rows := l.GetLeftDimensions()
		rightWidth, _ := l.GetRightDimensions()

		left := paneBox(v, MenuLines(v.Catalog, v.UI.Selection), leftWidth, rows, false)
		right := paneBox(v, tabLines(v, l, rightWidth), rightWidth, rows, v.UI.Tab == state.TabOutput)
		gutter := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", layout.GutterWidth)+"\n", rows+2), "\n")
		return lipgloss.JoinHorizontal(lipgloss.Top, left, gutter, right)
	}

	width, rows := l.GetLeftDimensions()
	var lines []string
	if v.UI.Tab == state.TabCommands {
		lines = append(MenuLines(v.Catalog, v.UI.Selection), "")
		lines = append(lines, DrawerLines(v.Catalog, v.UI.Selection)...)
	} else {
		lines = tabLines(v, l, width)
	}
	return paneBox(v, lines, width, rows, v.UI.Tab == state.TabOutput)
}

func tabLines(v View, l *layout.Layout, width int) []string {
	switch v.UI.Tab {
	case state.TabHelp:
		return append([]string{"Help", ""}, v.Keys.HelpLines()...)
	case state.TabOutput:
		return OutputLines(v.UI, v.Session, l.OutputViewport(v.UI.Prompting()), width, v.Now)
	default:
		return DrawerLines(v.Catalog, v.UI.Selection)
	}
}

// paneBox fits lines into a width x rows box. Overflowing content keeps its
// head, or its tail when keepTail is set so the newest output stays visible.
func paneBox(v View, lines []string, width, rows int, keepTail bool) string {
	if len(lines) > rows {
		if keepTail {
			lines = lines[len(lines)-rows:]
		} else {
			lines = lines[:rows]
		}
	}

	styled := make([]string, rows)
	for i := range styled {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		fitted := Fit(line, width)
		if strings.HasPrefix(line, "> ") {
			styled[i] = v.Theme.Accent.Render(fitted)
		} else {
			styled[i] = v.Theme.Muted.Render(fitted)
		}
	}
	return box(v.Theme, styled)
}

func box(t theme.Theme, lines []string) string {
	style := components.PaneBaseStyle
	switch {
	case t.Border.Foreground != "":
		style = style.BorderForeground(lipgloss.Color(t.Border.Foreground))
	case t.Border.Faint:
		style = style.BorderForeground(lipgloss.Color(theme.TextMuted))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderStatus(v View, l *layout.Layout) string {
	width := l.GetInnerWidth()
	mode := common.ModeNavigate
	switch {
	case v.UI.Prompting():
		mode = common.ModePrompt
	case state.DerivePhase(v.UI, v.Session) == state.PhaseRunning:
		mode = common.ModeRunning
	}
	hints := common.Hints(v.Keys, mode, l.IsDouble())

	lines := []string{
		statusLine(v, width),
		v.Theme.Muted.Render(Fit(hints, width)),
	}
	return box(v.Theme, lines)
}

func statusLine(v View, width int) string {
	phase := state.DerivePhase(v.UI, v.Session)
	badge := Badge(phase, v.Now)
	line := Fit(StatusText(v.UI, v.Session, v.Catalog, v.Now), width)

	prefix := " " + badge
	if !strings.HasPrefix(line, prefix) {
		return v.Theme.Accent.Render(line)
	}
	return v.Theme.Accent.Render(" ") +
		BadgeStyle(phase).Render(badge) +
		v.Theme.Accent.Render(line[len(prefix):])
}

// StatusText is the unstyled status line:
// " badge key:label | tab:Output | last status ".
func StatusText(ui *state.UI, session *state.Session, catalog actions.Catalog, now time.Time) string {
	selected := catalog.At(ui.Selection)
	focus := "tab:" + ui.Tab.Label()
	if ui.Prompt != nil {
		focus = "input:" + ui.Prompt.Label
	}
	status := session.Status.Message
	if status == "" {
		status = "-"
	}
	return " " + Badge(state.DerivePhase(ui, session), now) + " " +
		selected.Key + ":" + selected.Label + " | " + focus + " | " + status + " "
}

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"xint/pkg/actions"
	"xint/pkg/gui/components"
	"xint/pkg/gui/icons"
	"xint/pkg/gui/theme"
	"xint/pkg/state"
)

// EmptyOutput is shown in place of the output window when no line matches.
const EmptyOutput = "(no output lines for current filter)"

// MenuLines lists every action with its hint. The selected entry starts
// with "> ".
func MenuLines(catalog actions.Catalog, selection int) []string {
	lines := []string{"Menu", ""}
	selected := actions.Wrap(selection, len(catalog))
	for i, action := range catalog {
		pointer := " "
		if i == selected {
			pointer = ">"
		}
		aliases := ""
		if len(action.Aliases) > 0 {
			aliases = " (" + strings.Join(action.Aliases, ", ") + ")"
		}
		lines = append(lines,
			fmt.Sprintf("%s %s) %s %s%s", pointer, action.Key, icons.ForAction(action.Key), action.Label, aliases),
			"    "+action.Hint,
		)
	}
	return lines
}

// DrawerLines describes the selected action.
func DrawerLines(catalog actions.Catalog, selection int) []string {
	selected := catalog.At(selection)
	return []string{
		"Command details",
		"",
		"Selected: " + selected.Label,
		"Summary: " + selected.Summary,
		"Example: " + selected.Example,
		"Cost: " + selected.CostHint,
	}
}

// OutputLines renders the Output tab for a pane width cells wide: the last
// run summary, the inline prompt when one is open, a viewport-high window of
// filtered output and the window position.
func OutputLines(ui *state.UI, session *state.Session, viewport, width int, now time.Time) []string {
	command := session.LastCommand
	if command == "" {
		command = "-"
	}
	status := session.Status.Message
	if status == "" {
		status = "-"
	}
	filter := strings.TrimSpace(ui.Filter)
	if filter == "" {
		filter = "(none)"
	}

	lines := []string{
		"Last run",
		"",
		"phase: " + Badge(state.DerivePhase(ui, session), now),
		"command: " + command,
		"status: " + status,
		"filter: " + filter,
		"",
		"output:",
	}

	if ui.Prompt != nil {
		lines = append(lines, "", ui.Prompt.Label, PromptInput(ui.Prompt, width, now), "")
	}

	window := session.Output.View(ui.Filter, ui.Offset, viewport)
	if window.Empty() {
		lines = append(lines, EmptyOutput)
	} else {
		lines = append(lines, window.Lines...)
	}

	return append(lines, "", fmt.Sprintf("view %d-%d of %d | offset %d", window.From, window.To, window.Total, window.Offset))
}

// PromptInput renders the editable line of an inline prompt. An empty buffer
// shows the previous value as a bracketed placeholder. A value too long for
// width loses its head so the cursor stays in view.
func PromptInput(p *state.InlinePrompt, width int, now time.Time) string {
	const marker = "> "
	cursor := components.FrameAt(components.BlinkingCursor, now)
	if p.Len() == 0 {
		line := marker + cursor
		if p.Placeholder != "" {
			line += " [" + p.Placeholder + "]"
		}
		return line
	}

	value := p.Value()
	room := width - len(marker) - runewidth.StringWidth(cursor) - len(ellipsis)
	if over := runewidth.StringWidth(value) - room - len(ellipsis); width > 0 && room > 0 && over > 0 {
		value = runewidth.TruncateLeft(value, runewidth.StringWidth(value)-room, ellipsis)
	}
	return marker + value + cursor
}

// Badge is the phase indicator shown in the status line and on the Output
// tab. The running badge animates with the wall clock.
func Badge(phase state.Phase, now time.Time) string {
	switch phase {
	case state.PhaseRunning:
		return "[RUNNING " + components.FrameAt(components.RunningSpinner, now) + "]"
	case state.PhaseInput:
		return "[INPUT <>]"
	case state.PhaseDone:
		return "[DONE ok]"
	case state.PhaseError:
		return "[ERROR !!]"
	default:
		return "[IDLE]"
	}
}

// BadgeStyle colors a badge by phase.
func BadgeStyle(phase state.Phase) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch phase {
	case state.PhaseRunning:
		return style.Foreground(lipgloss.Color(theme.InfoStatus))
	case state.PhaseInput:
		return style.Foreground(lipgloss.Color(theme.WarningStatus))
	case state.PhaseDone:
		return style.Foreground(lipgloss.Color(theme.SuccessStatus))
	case state.PhaseError:
		return style.Foreground(lipgloss.Color(theme.ErrorStatus))
	default:
		return style.Foreground(lipgloss.Color(theme.TextMuted))
	}
}

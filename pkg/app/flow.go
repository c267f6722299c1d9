// Package app runs the xint dashboard: the full-screen bubbletea model when
// both ends are terminals, and a line-oriented fallback otherwise.
package app

import (
	"context"
	"strings"

	"xint/pkg/actions"
	"xint/pkg/palette"
	"xint/pkg/plan"
	"xint/pkg/runner"
	"xint/pkg/state"
)

// Runner starts delegated subcommands. *runner.Runner is the production
// implementation.
type Runner interface {
	Start(ctx context.Context, args []string) (*runner.Run, error)
	Run(ctx context.Context, args []string, hooks runner.Hooks) (runner.Result, error)
}

// Status messages set outside of a run.
const (
	invalidSelection = "invalid selection"
	filterCleared    = "output filter cleared"
)

// resolveValue applies the previous value to an empty commit.
func resolveValue(raw string, previous string) string {
	if strings.TrimSpace(raw) == "" {
		return previous
	}
	return raw
}

// preparePlan validates the value committed for action, remembers it and
// builds the plan. On failure it sets the status and returns false.
func preparePlan(session *state.Session, builder plan.Builder, action actions.Action, value string) (plan.Plan, bool) {
	if p := action.Prompt; p != nil {
		if p.StripPrefix != "" {
			value = strings.TrimLeft(value, p.StripPrefix)
		}
		if p.Required && strings.TrimSpace(value) == "" {
			session.SetStatus(state.Info(p.RequiredMessage))
			return plan.Plan{}, false
		}
		session.Remember(action.Key, value)
	}

	pl, err := builder.Build(action.Key, value)
	if err != nil {
		session.SetStatus(state.Info(err.Error()))
		return plan.Plan{}, false
	}
	session.LastCommand = pl.Display
	return pl, true
}

// filterStatus is the status shown after the output filter changes.
func filterStatus(filter string) string {
	if filter == "" {
		return filterCleared
	}
	return "output filter active: " + filter
}

// paletteMissStatus is the status shown when a palette query matches nothing.
// A close fuzzy candidate is offered as a hint but never run.
func paletteMissStatus(catalog actions.Catalog, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "no palette match: (empty)"
	}
	status := "no palette match: " + query
	if idx, ok := palette.Suggest(catalog, query); ok {
		status += " (did you mean " + catalog[idx].Label + "?)"
	}
	return status
}

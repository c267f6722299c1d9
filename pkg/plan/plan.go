// Package plan turns a chosen action and its value into a concrete
// subcommand invocation.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Plan is the ready-to-execute form of an action.
type Plan struct {
	Display string   // shown as the last command, e.g. "xint search ai"
	Args    []string // argument vector handed to the subcommand
}

// Builder builds plans. Validating the shape of the value is the builder's job.
type Builder interface {
	Build(actionKey, value string) (Plan, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(actionKey, value string) (Plan, error)

// Build calls f.
func (f BuilderFunc) Build(actionKey, value string) (Plan, error) {
	return f(actionKey, value)
}

// Program is the display name of the delegated executable.
const Program = "xint"

// Default is the xint plan builder.
var Default Builder = BuilderFunc(build)

func build(actionKey, value string) (Plan, error) {
	normalized := strings.TrimSpace(value)

	switch actionKey {
	case "1":
		if normalized == "" {
			return Plan{}, errors.New("query is required")
		}
		return newPlan("search", normalizeSearchQuery(normalized)), nil
	case "2":
		if normalized == "" {
			return newPlan("trends"), nil
		}
		return newPlan("trends", normalized), nil
	case "3":
		username := strings.TrimLeft(normalized, "@")
		if username == "" {
			return Plan{}, errors.New("username is required")
		}
		return newPlan("profile", username), nil
	case "4":
		if normalized == "" {
			return Plan{}, errors.New("tweet id/url is required")
		}
		return newPlan("thread", normalized), nil
	case "5":
		if normalized == "" {
			return Plan{}, errors.New("article url is required")
		}
		return newPlan("article", normalized), nil
	case "6":
		return newPlan("--help"), nil
	default:
		return Plan{}, fmt.Errorf("unsupported action key: %s", actionKey)
	}
}

func newPlan(args ...string) Plan {
	return Plan{
		Display: strings.Join(append([]string{Program}, args...), " "),
		Args:    args,
	}
}

// normalizeSearchQuery collapses whitespace and replaces a bare "&" token with AND.
func normalizeSearchQuery(value string) string {
	tokens := strings.Fields(value)
	for i, token := range tokens {
		if token == "&" {
			tokens[i] = "AND"
		}
	}
	return strings.Join(tokens, " ")
}

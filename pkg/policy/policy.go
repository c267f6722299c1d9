// Package policy defines the access policy mode that every delegated
// subcommand is started with.
package policy

import (
	"fmt"
	"strings"
)

// Mode is the policy the dashboard forwards to its subcommands.
type Mode int

const (
	ReadOnly Mode = iota
	Engagement
)

// Flag is the command-line flag the mode is forwarded as.
const Flag = "--policy"

// String returns the wire name of the mode
func (m Mode) String() string {
	switch m {
	case Engagement:
		return "engagement"
	default:
		return "read_only"
	}
}

// Parse converts a user supplied name into a Mode. Hyphens and case are ignored.
func Parse(raw string) (Mode, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", "_")
	switch value {
	case "", "read_only", "readonly":
		return ReadOnly, nil
	case "engagement":
		return Engagement, nil
	default:
		return ReadOnly, fmt.Errorf("unknown policy mode %q (want read_only or engagement)", raw)
	}
}

// Args returns the flag pair forwarded ahead of a subcommand's own arguments.
func (m Mode) Args() []string {
	return []string{Flag, m.String()}
}

// Set implements pflag.Value so the mode can be bound directly to a cobra flag.
func (m *Mode) Set(raw string) error {
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "policy"
}

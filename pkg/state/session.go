// Package state holds the mutable session and UI model of one dashboard run.
// Both values are owned by the event loop; nothing here is safe for
// concurrent use.
package state

import (
	"strings"

	"xint/pkg/output"
)

// StatusKind classifies the last status message.
type StatusKind int

const (
	// StatusNone means no status has been set yet.
	StatusNone StatusKind = iota
	// StatusInfo is a neutral notice such as a validation message.
	StatusInfo
	StatusRunning
	StatusSuccess
	StatusFailure
)

// Status is the last status line together with its kind.
type Status struct {
	Kind    StatusKind
	Message string
}

// Info returns a neutral status.
func Info(message string) Status { return Status{Kind: StatusInfo, Message: message} }

// Running returns a status for an in-flight subcommand.
func Running(message string) Status { return Status{Kind: StatusRunning, Message: message} }

// Success returns a status for a subcommand that exited cleanly.
func Success(message string) Status { return Status{Kind: StatusSuccess, Message: message} }

// Failure returns a status for a subcommand that failed.
func Failure(message string) Status { return Status{Kind: StatusFailure, Message: message} }

// Session is what the dashboard remembers between actions.
type Session struct {
	LastCommand string
	Status      Status
	Output      *output.Buffer

	values map[string]string
}

// NewSession returns an empty session with a default sized output buffer.
func NewSession() *Session {
	return &Session{
		Output: output.NewBuffer(output.DefaultCapacity),
		values: make(map[string]string),
	}
}

// SetStatus replaces the status.
func (s *Session) SetStatus(status Status) {
	s.Status = status
}

// Remember stores the last value used for a parameterized action.
func (s *Session) Remember(actionKey, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[actionKey] = value
}

// LastValue returns the value last used for an action, if any.
func (s *Session) LastValue(actionKey string) (string, bool) {
	value, ok := s.values[actionKey]
	return value, ok
}

// Phase is the coarse state shown in the status badge.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInput
	PhaseRunning
	PhaseDone
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// DerivePhase computes the phase from the UI and session. An open prompt
// always wins. An explicit status kind comes next; neutral statuses fall back
// to reading the message.
func DerivePhase(ui *UI, session *Session) Phase {
	if ui != nil && ui.Prompt != nil {
		return PhaseInput
	}
	if session == nil {
		return PhaseIdle
	}

	switch session.Status.Kind {
	case StatusRunning:
		return PhaseRunning
	case StatusSuccess:
		return PhaseDone
	case StatusFailure:
		return PhaseError
	}
	return inferPhase(session.Status.Message)
}

func inferPhase(message string) Phase {
	status := strings.ToLower(message)
	switch {
	case strings.HasPrefix(status, "running"):
		return PhaseRunning
	case strings.Contains(status, "failed"), strings.Contains(status, "error"):
		return PhaseError
	case strings.Contains(status, "success"):
		return PhaseDone
	default:
		return PhaseIdle
	}
}

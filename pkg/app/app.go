package app

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"xint/internal/debug"
	"xint/pkg/terminal"
)

// Run starts a dashboard session on the process's stdin and stdout. When
// either is not a terminal the line-oriented fallback runs instead. The
// terminal is restored on every exit path before an error is returned.
func Run(ctx context.Context, opts Options) error {
	return runOn(ctx, os.Stdin, os.Stdout, opts)
}

func runOn(ctx context.Context, in, out *os.File, opts Options) (err error) {
	guard, err := terminal.Acquire(in, out)
	defer func() {
		if releaseErr := guard.Release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()
	if err != nil {
		return err
	}

	if !guard.Active() {
		debug.Log("dashboard: using line fallback")
		return Fallback(ctx, in, out, opts)
	}

	cols, rows := terminal.Size(out)
	p := tea.NewProgram(
		New(ctx, opts, cols, rows),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

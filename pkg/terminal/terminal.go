// Package terminal owns the controlling terminal while the dashboard is up.
package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/creack/pty"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"xint/internal/debug"
)

// Fallback geometry used when the terminal cannot be queried.
const (
	DefaultCols = 120
	DefaultRows = 32
)

// Guard holds the saved terminal state for the duration of a dashboard
// session. The zero value is an inactive guard.
type Guard struct {
	in     *os.File
	output *termenv.Output
	saved  *term.State
	active bool

	once sync.Once
}

// Interactive reports whether both files are terminals.
func Interactive(in, out *os.File) bool {
	if in == nil || out == nil {
		return false
	}
	return isTTY(in) && isTTY(out)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Acquire switches in to raw mode and out to the alternate screen with a
// hidden cursor. When either file is not a terminal it returns an inactive
// guard and leaves both untouched. Callers defer Release right away.
func Acquire(in, out *os.File) (*Guard, error) {
	g := &Guard{in: in}
	if !Interactive(in, out) {
		debug.Log("terminal: not interactive, guard inactive")
		return g, nil
	}

	saved, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return g, fmt.Errorf("enter raw mode: %w", err)
	}
	g.saved = saved
	g.output = termenv.NewOutput(out)
	g.output.AltScreen()
	g.output.HideCursor()
	g.active = true
	debug.Log("terminal: acquired")
	return g, nil
}

// Active reports whether the guard changed the terminal.
func (g *Guard) Active() bool {
	return g != nil && g.active
}

// Release shows the cursor, leaves the alternate screen and restores the
// saved input mode. Only the first call has any effect.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	var err error
	g.once.Do(func() {
		if g.output != nil {
			g.output.ShowCursor()
			g.output.ExitAltScreen()
		}
		if g.saved != nil {
			if restoreErr := term.Restore(int(g.in.Fd()), g.saved); restoreErr != nil {
				err = fmt.Errorf("restore terminal: %w", restoreErr)
			}
		}
		g.active = false
		debug.Log("terminal: released")
	})
	return err
}

// Size returns the terminal geometry of out, or DefaultCols x DefaultRows
// when it is not available.
func Size(out *os.File) (cols, rows int) {
	if out == nil {
		return DefaultCols, DefaultRows
	}
	rows, cols, err := pty.Getsize(out)
	if err != nil || cols <= 0 || rows <= 0 {
		return DefaultCols, DefaultRows
	}
	return cols, rows
}

package terminal

import (
	"io"
	"os"
	"reflect"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// openTTY returns the terminal end of a fresh pty. Everything written to it
// is drained from the controlling end.
func openTTY(t *testing.T) *os.File {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := pty.Setsize(tty, &pty.Winsize{Rows: 40, Cols: 132}); err != nil {
		t.Fatalf("setsize: %v", err)
	}
	drained := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, ptmx)
		close(drained)
	}()
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
		<-drained
	})
	return tty
}

func stateOf(t *testing.T, f *os.File) *term.State {
	t.Helper()
	st, err := term.GetState(int(f.Fd()))
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	return st
}

func TestAcquireOnTTYEntersRawModeAndReleaseRestores(t *testing.T) {
	tty := openTTY(t)
	before := stateOf(t, tty)

	g, err := Acquire(tty, tty)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !g.Active() {
		t.Fatalf("guard should be active on a tty")
	}
	if reflect.DeepEqual(before, stateOf(t, tty)) {
		t.Fatalf("terminal state unchanged after Acquire")
	}

	if err := g.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if g.Active() {
		t.Fatalf("guard still active after Release")
	}
	if !reflect.DeepEqual(before, stateOf(t, tty)) {
		t.Fatalf("terminal state not restored")
	}
}

func TestSecondReleaseLeavesTerminalAlone(t *testing.T) {
	tty := openTTY(t)
	before := stateOf(t, tty)

	g, err := Acquire(tty, tty)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := g.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// put the tty into raw mode behind the guard's back
	raw, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		t.Fatalf("MakeRaw: %v", err)
	}
	rawState := stateOf(t, tty)
	if err := g.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if !reflect.DeepEqual(rawState, stateOf(t, tty)) {
		t.Fatalf("second Release changed the terminal")
	}
	if err := term.Restore(int(tty.Fd()), raw); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !reflect.DeepEqual(before, stateOf(t, tty)) {
		t.Fatalf("cleanup did not restore the terminal")
	}
}

func TestSizeReadsTTYGeometry(t *testing.T) {
	cols, rows := Size(openTTY(t))
	if cols != 132 || rows != 40 {
		t.Fatalf("got %dx%d want 132x40", cols, rows)
	}
}

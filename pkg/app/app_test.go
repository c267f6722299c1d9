package app

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"xint/pkg/runner"
)

func TestRunRestoresTerminalWhenSpawnFails(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.NoError(t, pty.Setsize(tty, &pty.Winsize{Rows: 32, Cols: 120}))

	go func() { _, _ = io.Copy(io.Discard, ptmx) }()

	before, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- runOn(context.Background(), tty, tty, Options{
			Runner: &runner.Runner{Executable: "/nonexistent/xint-binary"},
		})
	}()

	// "6" runs Help straight away, which has to spawn the backend.
	var runErr error
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(10 * time.Second)
wait:
	for {
		select {
		case runErr = <-done:
			break wait
		case <-ticker.C:
			_, _ = ptmx.Write([]byte("6"))
		case <-deadline:
			t.Fatal("dashboard did not exit")
		}
	}

	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "/nonexistent/xint-binary")

	after, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunUsesFallbackOffTerminal(t *testing.T) {
	in, err := os.CreateTemp(t.TempDir(), "in")
	require.NoError(t, err)
	defer in.Close()
	out, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer out.Close()

	_, err = in.WriteString("0\n")
	require.NoError(t, err)
	_, err = in.Seek(0, io.SeekStart)
	require.NoError(t, err)

	require.NoError(t, runOn(context.Background(), in, out, Options{Runner: shellRunner(echoArgs)}))

	written, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.Contains(t, string(written), "=== xint interactive ===")
}

// Package runner starts delegated xint subcommands and streams their output
// back to the dashboard one line at a time.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"xint/internal/debug"
	"xint/pkg/policy"
)

const (
	// Quantum is the pause between supervising steps while a run is live.
	Quantum = 90 * time.Millisecond

	// StderrPrefix tags every line read from the child's stderr.
	StderrPrefix = "[stderr] "

	lineBuffer = 256
)

// Runner describes how subcommands are launched: the executable, any fixed
// leading arguments, the forwarded policy and extra environment.
type Runner struct {
	Executable string
	Prefix     []string
	Policy     policy.Mode
	Env        []string
}

// New returns a runner for the given executable. An empty executable means
// the currently running binary.
func New(executable string, mode policy.Mode) (*Runner, error) {
	if executable == "" {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locate executable: %w", err)
		}
		executable = self
	}
	return &Runner{Executable: executable, Policy: mode}, nil
}

// Argv returns the arguments passed after the executable:
// Prefix..., --policy <mode>, args...
func (r *Runner) Argv(args []string) []string {
	argv := make([]string, 0, len(r.Prefix)+2+len(args))
	argv = append(argv, r.Prefix...)
	argv = append(argv, r.Policy.Args()...)
	return append(argv, args...)
}

// Start spawns the subcommand with piped stdout and stderr. Stdin is not
// forwarded. A spawn failure is returned as is; nothing is started.
func (r *Runner) Start(ctx context.Context, args []string) (*Run, error) {
	argv := r.Argv(args)
	cmd := exec.CommandContext(ctx, r.Executable, argv...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", r.Executable, err)
	}

	run := &Run{
		ID:    uuid.NewString(),
		Args:  args,
		lines: make(chan string, lineBuffer),
		done:  make(chan struct{}),
	}
	debug.Log("run %s: started pid=%d argv=%q", run.ID, cmd.Process.Pid, argv)

	var readers errgroup.Group
	readers.Go(func() error { return pump(stdout, "", run.lines) })
	readers.Go(func() error { return pump(stderr, StderrPrefix, run.lines) })

	go func() {
		if err := readers.Wait(); err != nil {
			debug.Log("run %s: read error: %v", run.ID, err)
		}
		close(run.lines)

		waitErr := cmd.Wait()
		run.result = resultOf(cmd.ProcessState, waitErr)
		debug.L().Zap().Debug("run finished",
			zap.String("id", run.ID),
			zap.Strings("args", run.Args),
			zap.Int("exit_code", run.result.ExitCode),
			zap.String("status", run.result.Status()),
		)
		close(run.done)
	}()

	return run, nil
}

// Hooks receive the progress of a synchronous Run.
type Hooks struct {
	// Line is called for every delivered output line, in arrival order.
	Line func(line string)
	// Tick is called once per quantum with a "running <glyph>" status.
	Tick func(status string)
}

func (h Hooks) line(line string) {
	if h.Line != nil {
		h.Line(line)
	}
}

func (h Hooks) tick(status string) {
	if h.Tick != nil {
		h.Tick(status)
	}
}

// Run starts the subcommand and supervises it until it exits: drain queued
// lines, check for completion, report a spinner tick, wait one quantum or
// until the child is reaped. Lines still queued when the child exits are
// drained before the result returns.
func (r *Runner) Run(ctx context.Context, args []string, hooks Hooks) (Result, error) {
	run, err := r.Start(ctx, args)
	if err != nil {
		return Result{}, err
	}

	ticker := time.NewTicker(Quantum)
	defer ticker.Stop()
	for {
		run.Drain(hooks.line)
		if res, ok := run.Poll(); ok {
			run.Drain(hooks.line)
			return res, nil
		}
		hooks.tick(RunningStatus(run.Spinner()))
		select {
		case <-ticker.C:
		case <-run.Done():
		}
	}
}

// RunningStatus is the status shown while a subcommand is live.
func RunningStatus(glyph string) string {
	return "running " + glyph
}

// Run is one live subcommand.
type Run struct {
	ID   string
	Args []string

	lines  chan string
	done   chan struct{}
	result Result
	frame  int
}

// Drain delivers every line queued so far to fn without blocking and
// returns how many were delivered.
func (r *Run) Drain(fn func(string)) int {
	n := 0
	for {
		select {
		case line, ok := <-r.lines:
			if !ok {
				return n
			}
			fn(line)
			n++
		default:
			return n
		}
	}
}

// Poll reports the result once the child has been reaped.
func (r *Run) Poll() (Result, bool) {
	select {
	case <-r.done:
		return r.result, true
	default:
		return Result{}, false
	}
}

// Done is closed once the child has been reaped.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Spinner returns the next glyph of the | / - \ cycle.
func (r *Run) Spinner() string {
	frames := spinner.Line.Frames
	glyph := strings.TrimSpace(frames[r.frame%len(frames)])
	r.frame++
	return glyph
}

// Result is how a subcommand ended.
type Result struct {
	// ExitCode is the child's exit code, or -1 when it was killed by a
	// signal or never produced one.
	ExitCode int
	Err      error
}

// Success reports a zero exit code.
func (r Result) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// Status is the final status line: "success", "failed (exit N)" or
// "failed (exit signal)".
func (r Result) Status() string {
	switch {
	case r.Success():
		return "success"
	case r.ExitCode >= 0:
		return fmt.Sprintf("failed (exit %d)", r.ExitCode)
	default:
		return "failed (exit signal)"
	}
}

func resultOf(state *os.ProcessState, waitErr error) Result {
	if state == nil {
		return Result{ExitCode: -1, Err: waitErr}
	}
	res := Result{ExitCode: state.ExitCode()}
	if res.ExitCode != 0 {
		res.Err = waitErr
	}
	return res
}

package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"xint/pkg/actions"
	"xint/pkg/runner"
	"xint/pkg/state"
)

// Fallback runs the dashboard as a plain menu loop over in and out. It
// prints the menu, reads a choice, prompts for the action's value, runs the
// subcommand synchronously and prints its output and final status. It
// returns when Exit is chosen or in is exhausted.
func Fallback(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	opts = opts.withDefaults()
	session := state.NewSession()
	reader := bufio.NewReader(in)

	for {
		printMenu(out, opts.Catalog)
		choice, err := promptLine(reader, out, "\nSelect option (number or alias): ")
		if err != nil {
			return eofIsDone(err)
		}

		action, ok := opts.Catalog.Lookup(choice)
		if !ok {
			session.SetStatus(state.Info(invalidSelection))
			printStatus(out, session)
			continue
		}
		if action.Quit {
			return nil
		}

		var value string
		if action.Prompt != nil {
			previous, hasPrevious := session.LastValue(action.Key)
			label := action.Prompt.Label + ": "
			if hasPrevious {
				label = fmt.Sprintf("%s [%s]: ", action.Prompt.Label, previous)
			}
			raw, err := promptLine(reader, out, label)
			if err != nil {
				return eofIsDone(err)
			}
			value = resolveValue(raw, previous)
		}

		pl, ok := preparePlan(session, opts.Builder, action, value)
		if !ok {
			printStatus(out, session)
			continue
		}

		session.Output.Clear()
		res, err := opts.Runner.Run(ctx, pl.Args, runner.Hooks{
			Line: func(line string) {
				if session.Output.Append(line) {
					fmt.Fprintln(out, session.Output.Last())
				}
			},
		})
		if err != nil {
			return err
		}
		if res.Success() {
			session.SetStatus(state.Success(res.Status()))
		} else {
			session.SetStatus(state.Failure(res.Status()))
		}
		printStatus(out, session)
	}
}

func printMenu(out io.Writer, catalog actions.Catalog) {
	fmt.Fprintln(out, "\n=== xint interactive ===")
	for _, action := range catalog {
		aliases := ""
		if len(action.Aliases) > 0 {
			aliases = " (" + strings.Join(action.Aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "%s) %s%s\n", action.Key, action.Label, aliases)
		fmt.Fprintf(out, "   - %s\n", action.Hint)
	}
}

func printStatus(out io.Writer, session *state.Session) {
	fmt.Fprintf(out, "status: %s\n", session.Status.Message)
}

// promptLine writes label and reads one trimmed line. A final line without a
// newline is still returned; io.EOF is reported only when nothing was read.
func promptLine(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func eofIsDone(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

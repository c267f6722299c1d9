package runner

import (
	"bufio"
	"bytes"
	"io"
)

const maxLineSize = 1024 * 1024

// scanLines splits on "\n", "\r\n" and a bare "\r" so progress output that
// redraws a line with carriage returns arrives as separate lines. A trailing
// partial line is returned at EOF.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// truncatingLines wraps scanLines so a line longer than max is cut to its
// first max bytes. The rest of that line is dropped and scanning carries on
// with the next one.
func truncatingLines(max int) bufio.SplitFunc {
	discarding := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := scanLines(data, atEOF)
		if discarding {
			if advance > 0 {
				discarding = false
				return advance, nil, err
			}
			// keep a trailing "\r" until we know whether "\n" follows
			if n := len(data); n > 0 && data[n-1] == '\r' {
				return n - 1, nil, nil
			}
			return len(data), nil, nil
		}
		if advance > 0 {
			if len(token) > max {
				token = token[:max]
			}
			return advance, token, err
		}
		if len(data) < max {
			return 0, nil, nil
		}

		cut := len(data)
		if data[cut-1] == '\r' {
			cut--
		}
		discarding = true
		return cut, data[:min(cut, max)], nil
	}
}

// pump sends every line of r, prefixed, to out. Lines over maxLineSize are
// truncated. After a read error the rest of r is discarded so the child
// never blocks on a full pipe.
func pump(r io.Reader, prefix string, out chan<- string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*maxLineSize)
	scanner.Split(truncatingLines(maxLineSize))
	for scanner.Scan() {
		out <- prefix + scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// Package output keeps the bounded, filterable log of subcommand output shown
// on the dashboard's Output tab.
package output

import "strings"

// DefaultCapacity is the number of lines kept before the oldest are evicted.
const DefaultCapacity = 1200

// Buffer is a fixed-capacity FIFO ring of sanitized lines.
// It is not safe for concurrent use; the dashboard's main loop owns it.
type Buffer struct {
	lines []string
	start int
	count int
}

// NewBuffer returns an empty buffer holding at most capacity lines.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{lines: make([]string, capacity)}
}

// Append sanitizes raw and stores it. Lines that are empty after sanitizing
// and trimming trailing whitespace are discarded; Append reports whether the
// line was kept.
func (b *Buffer) Append(raw string) bool {
	line := strings.TrimRight(Sanitize(raw), " \t\r\n")
	if line == "" {
		return false
	}

	capacity := len(b.lines)
	if b.count < capacity {
		b.lines[(b.start+b.count)%capacity] = line
		b.count++
		return true
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % capacity
	return true
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	return b.count
}

// Clear drops every buffered line.
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = ""
	}
	b.start = 0
	b.count = 0
}

// Lines returns the buffered lines, oldest first.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.count)
	for i := 0; i < b.count; i++ {
		out = append(out, b.at(i))
	}
	return out
}

// Last returns the newest line, or "" when the buffer is empty.
func (b *Buffer) Last() string {
	if b.count == 0 {
		return ""
	}
	return b.at(b.count - 1)
}

func (b *Buffer) at(i int) string {
	return b.lines[(b.start+i)%len(b.lines)]
}

// Filtered returns the buffered lines containing filter, case-insensitively.
// A blank filter matches every line.
func (b *Buffer) Filtered(filter string) []string {
	query := strings.ToLower(strings.TrimSpace(filter))
	if query == "" {
		return b.Lines()
	}
	var out []string
	for i := 0; i < b.count; i++ {
		line := b.at(i)
		if strings.Contains(strings.ToLower(line), query) {
			out = append(out, line)
		}
	}
	return out
}

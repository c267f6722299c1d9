package output

// Window is the slice of filtered output visible in the viewport.
type Window struct {
	Lines  []string
	From   int // 1-based index of the first visible line, 0 when empty
	To     int // 1-based index of the last visible line, 0 when empty
	Total  int // number of lines matching the filter
	Offset int // scroll offset after clamping
}

// Empty reports whether nothing is visible.
func (w Window) Empty() bool {
	return len(w.Lines) == 0
}

// View filters the buffer and returns up to height lines ending offset lines
// before the newest match. The offset is clamped with ClampOffset first.
func (b *Buffer) View(filter string, offset, height int) Window {
	filtered := b.Filtered(filter)
	total := len(filtered)
	if height < 1 {
		height = 1
	}
	offset = ClampOffset(offset, total, height)

	end := total - offset
	start := end - height
	if start < 0 {
		start = 0
	}

	w := Window{Total: total, Offset: offset}
	if start >= end {
		return w
	}
	w.Lines = append([]string(nil), filtered[start:end]...)
	w.From = start + 1
	w.To = end
	return w
}

// ClampOffset limits a scroll offset to [0, max(0, total-height)].
func ClampOffset(offset, total, height int) int {
	if height < 1 {
		height = 1
	}
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

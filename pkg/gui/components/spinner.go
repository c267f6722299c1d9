package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// RunningSpinner drives the running badge: | / - \ advancing every 120ms.
var RunningSpinner = spinner.Spinner{
	Frames: spinner.Line.Frames,
	FPS:    time.Millisecond * 120,
}

// BlinkingCursor is a simple on/off cursor spinner
var BlinkingCursor = spinner.Spinner{
	Frames: []string{"█", "░"},
	FPS:    time.Millisecond * 500, // Blink every 500ms
}

// FrameAt returns the frame of s showing at instant now. Frames are derived
// from wall-clock time so every render of the same instant agrees.
func FrameAt(s spinner.Spinner, now time.Time) string {
	if len(s.Frames) == 0 {
		return ""
	}
	if s.FPS <= 0 {
		return s.Frames[0]
	}
	tick := now.UnixMilli() / s.FPS.Milliseconds()
	return s.Frames[int(tick%int64(len(s.Frames)))]
}

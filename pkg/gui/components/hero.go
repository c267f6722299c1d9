// Package components holds the small animated pieces of the dashboard
// header: spinners, the hero wave and the focus tracker.
package components

import (
	"strings"
	"time"
)

const (
	// HeroWidth is the number of glyphs in the hero wave.
	HeroWidth = 12
	// HeroInterval is how often the wave shifts by one glyph.
	HeroInterval = 110 * time.Millisecond
)

var (
	runningPalette = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇"}
	idlePalette    = []string{"·", "•", "·", "•", "·"}
)

// HeroWave returns the 12-glyph wave for instant now. Running subcommands get
// the bar palette; everything else gets dots.
func HeroWave(now time.Time, running bool) string {
	palette := idlePalette
	if running {
		palette = runningPalette
	}
	tick := int(now.UnixMilli() / HeroInterval.Milliseconds())

	var b strings.Builder
	for i := 0; i < HeroWidth; i++ {
		b.WriteString(palette[(tick+i)%len(palette)])
	}
	return b.String()
}

const (
	minRail = 8
	maxRail = 18
)

// Tracker draws "focus ···●···" on a rail of width cells clamped to [8, 18].
// The cursor sits at basis modulo the rail width.
func Tracker(width, basis int) string {
	rail := width
	if rail < minRail {
		rail = minRail
	}
	if rail > maxRail {
		rail = maxRail
	}
	if basis < 0 {
		basis = 0
	}
	pos := basis % rail
	return "focus " + strings.Repeat("·", pos) + "●" + strings.Repeat("·", rail-pos-1)
}

package layout

import (
	"xint/pkg/gui/components"
)

const (
	// DoublePaneMinWidth is the terminal width at which the menu and the
	// active tab are shown side by side.
	DoublePaneMinWidth = 110
	LeftPaneMinWidth   = 46
	LeftPanePercent    = 45
	GutterWidth        = 1

	HeroRows    = 1
	TitleRows   = 1 // title and tab strip
	TrackerRows = 1
	StatusRows  = 2 // status line and key hints

	MinBodyRowsDouble = 12
	MinBodyRowsSingle = 10

	// OutputChromeRows is the number of fixed lines around the output window
	// on the Output tab: the "Last run" block, the "output:" marker and the
	// trailing view summary.
	OutputChromeRows = 10
	// PromptRows is the height of the inline prompt block.
	PromptRows = 4
)

// Layout manages the section dimensions of the dashboard frame.
type Layout struct {
	width  int
	height int
	hero   bool

	double bool

	// Full box widths (with borders)
	leftWidth  int
	rightWidth int

	// Content dimensions (without borders)
	innerWidth        int
	leftContentWidth  int
	rightContentWidth int
	bodyRows          int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int, hero bool) *Layout {
	l := &Layout{
		width:  width,
		height: height,
		hero:   hero,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// calculate computes all section dimensions based on terminal size
func (l *Layout) calculate() {
	frameWidth := components.PaneBaseStyle.GetHorizontalFrameSize()

	l.double = l.width >= DoublePaneMinWidth
	l.innerWidth = max(1, l.width-frameWidth)

	if l.double {
		l.leftWidth = max(LeftPaneMinWidth, l.width*LeftPanePercent/100)
		l.rightWidth = l.width - l.leftWidth - GutterWidth
		l.leftContentWidth = l.leftWidth - frameWidth
		l.rightContentWidth = l.rightWidth - frameWidth
	} else {
		l.leftWidth = l.width
		l.rightWidth = 0
		l.leftContentWidth = l.innerWidth
		l.rightContentWidth = 0
	}

	minBody := MinBodyRowsSingle
	if l.double {
		minBody = MinBodyRowsDouble
	}
	l.bodyRows = max(minBody, l.height-l.ChromeRows())
}

// HeaderRows returns the content rows of the header box.
func (l *Layout) HeaderRows() int {
	rows := TitleRows + TrackerRows
	if l.hero {
		rows += HeroRows
	}
	return rows
}

// ChromeRows returns every row that is not body content: the header and
// status boxes plus the borders of the body boxes.
func (l *Layout) ChromeRows() int {
	frameHeight := components.PaneBaseStyle.GetVerticalFrameSize()
	return l.HeaderRows() + StatusRows + frameHeight*3
}

// IsDouble reports whether the double-pane layout is active.
func (l *Layout) IsDouble() bool {
	return l.double
}

// HasHero reports whether the hero row is shown.
func (l *Layout) HasHero() bool {
	return l.hero
}

// GetInnerWidth returns the content width of the full-width header and
// status boxes.
func (l *Layout) GetInnerWidth() int {
	return l.innerWidth
}

// GetLeftDimensions returns the content dimensions of the menu box, or of
// the only body box in single-pane mode.
func (l *Layout) GetLeftDimensions() (width, height int) {
	return l.leftContentWidth, l.bodyRows
}

// GetRightDimensions returns the content dimensions of the tab box. Both
// are zero in single-pane mode.
func (l *Layout) GetRightDimensions() (width, height int) {
	if !l.double {
		return 0, 0
	}
	return l.rightContentWidth, l.bodyRows
}

// BodyRows returns the number of content rows in the body boxes.
func (l *Layout) BodyRows() int {
	return l.bodyRows
}

// OutputViewport returns how many output lines fit on the Output tab.
func (l *Layout) OutputViewport(prompting bool) int {
	rows := l.bodyRows - OutputChromeRows
	if prompting {
		rows -= PromptRows
	}
	return max(1, rows)
}

// GetWidth returns the layout width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height
func (l *Layout) GetHeight() int {
	return l.height
}

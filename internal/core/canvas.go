package core

import (
	"math"
	"unicode/utf8"
)

// Default logical size of one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	DefaultCellW = 10
	DefaultCellH = 20
)

// FillRune is the glyph used for solid rectangles.
const FillRune = '█'

// Canvas adapts a Screen to the Renderer interface by mapping logical units
// onto character cells. Font sizes are ignored: every glyph is one cell.
type Canvas struct {
	screen       *Screen
	cellW, cellH float64
}

// NewCanvas wraps a screen with the given logical cell size.
func NewCanvas(s *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	return &Canvas{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// ClearBackground blanks every cell. Terminals keep their own background
// color, so the requested color is not painted.
func (c *Canvas) ClearBackground(Color) {
	c.screen.Clear()
}

// DrawRectangle fills every cell whose origin falls inside r.
// Any rectangle on screen covers at least one cell.
func (c *Canvas) DrawRectangle(r Rect, col Color) {
	x0 := int(math.Floor(r.X / c.cellW))
	y0 := int(math.Floor(r.Y / c.cellH))
	x1 := int(math.Floor(r.Right() / c.cellW))
	y1 := int(math.Floor(r.Bottom() / c.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(x0, y0, x1-x0, y1-y0, FillRune, col)
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(text string, x, y, _ float64, col Color) {
	c.screen.DrawText(int(math.Floor(x/c.cellW)), int(math.Floor(y/c.cellH)), text, col)
}

// MeasureText returns the logical size of text rendered one glyph per cell.
func (c *Canvas) MeasureText(text string, _ float64) (w, h float64) {
	return float64(utf8.RuneCountInString(text)) * c.cellW, c.cellH
}

// ScreenSize returns the logical size covered by the screen.
func (c *Canvas) ScreenSize() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

package core

import "image/color"

// Color is a named palette entry. Platforms translate it to whatever their
// backend understands (RGBA for a window, ANSI codes for a terminal).
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorBlue
	ColorRed
	ColorOrange
	ColorDarkGray
)

var palette = map[Color]color.RGBA{
	ColorDefault:  {R: 0, G: 0, B: 0, A: 0},
	ColorWhite:    {R: 255, G: 255, B: 255, A: 255},
	ColorBlack:    {R: 0, G: 0, B: 0, A: 255},
	ColorBlue:     {R: 0, G: 121, B: 241, A: 255},
	ColorRed:      {R: 230, G: 41, B: 55, A: 255},
	ColorOrange:   {R: 255, G: 161, B: 0, A: 255},
	ColorDarkGray: {R: 80, G: 80, B: 80, A: 255},
}

// RGBA returns the 8-bit RGBA value for the color.
func (c Color) RGBA() color.RGBA {
	return palette[c]
}

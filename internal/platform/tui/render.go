package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. White and black are left
// to the terminal's own background and foreground so the game reads on both
// light and dark themes.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWhite:    lipgloss.NewStyle(),
	core.ColorBlack:    lipgloss.NewStyle().Bold(true),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

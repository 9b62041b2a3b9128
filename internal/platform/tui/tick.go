// Package tui runs the breakout simulation in a terminal through Bubble Tea,
// locally or per SSH session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameTime caps dt after a stall so balls do not tunnel through the paddle.
const maxFrameTime = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the seconds elapsed since the previous tick. The first
// tick assumes one nominal frame.
func frameTime(last, now time.Time, tickRate int) float64 {
	if last.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameTime {
		return maxFrameTime
	}
	return dt
}

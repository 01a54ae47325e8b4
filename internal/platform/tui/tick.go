// Package tui provides the Bubble Tea integration for the racer.
// It handles the terminal UI loop, input mapping, and race orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a race simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into step durations.
type frameClock struct {
	last     time.Time
	tickRate int
}

// advance returns the seconds since the previous tick. The first tick
// after a reset uses the nominal frame time.
func (c *frameClock) advance(now time.Time) float64 {
	nominal := 1.0 / float64(max(c.tickRate, 1))
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return nominal
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// reset forgets the previous tick, e.g. after a pause in ticking.
func (c *frameClock) reset() {
	c.last = time.Time{}
}

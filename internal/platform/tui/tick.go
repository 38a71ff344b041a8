// Package tui provides the Bubble Tea integration for the light cycle game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time fed to a single step after a stall.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks. The first tick of a round
// (zero last) gets the nominal interval.
func frameDelta(last, now time.Time, nominal time.Duration) time.Duration {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last)
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}

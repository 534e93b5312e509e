// Package tui provides the Bubble Tea front end: an interactive board
// with optional AI autopilot, a results scoreboard and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one autopilot move.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate (moves per second).
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 4
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

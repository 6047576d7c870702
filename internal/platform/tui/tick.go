// Package tui runs the trainer in a terminal: the menu, the session field,
// history, and the SSH server that serves them remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the session by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next step. The session measures time from its own
// clock, so a late tick only delays movement, never the timer.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

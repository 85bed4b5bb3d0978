// Package tui is the Bubble Tea front end. It owns the terminal, the key
// bindings and the fixed-rate clock, and drives registered games through
// the registry interface.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickID atomic.Int64

// nextTickID returns a fresh id for a tick loop.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// TickMsg is sent to trigger a game simulation tick. id ties it to the
// loop that scheduled it so a stale tick cannot start a second loop.
type TickMsg struct {
	Time time.Time
	id   int64
}

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, id: id}
	})
}

// Package tui provides the Bubble Tea integration for the dash platform.
// It handles the terminal UI loop, input mapping, and level orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// TickMsg is sent to trigger a fixed-rate simulation tick.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// FrameMsg is sent to trigger one animation frame of the build pump.
type FrameMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd returns a command that sends one tick message after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// frameCmd returns a command that sends one frame message after interval.
func frameCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}

// driverCmd schedules exactly one message for the driver d.
func driverCmd(d core.Driver, gen uint64, tick, frame time.Duration) tea.Cmd {
	if d == core.DriverFrame {
		return frameCmd(gen, frame)
	}
	return tickCmd(gen, tick)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminals report key presses and auto-repeats but never releases.
// HoldTracker turns that stream into press and release edges: the key
// counts as released once no repeat arrived within the timeout. The first
// timeout covers the keyboard's initial repeat delay.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration

	held    bool
	repeats int
	last    time.Time
	seq     uint64
}

// Default hold timeouts, sized for common keyboard repeat settings.
const (
	DefaultHoldInitial = 550 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

// HoldCheckMsg asks the model whether the held key has been released.
type HoldCheckMsg struct {
	Seq uint64
	At  time.Time
}

// NewHoldTracker creates a tracker with the given timeouts.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Press records a key press at now. It reports whether this is the rising
// edge and returns the sequence the release check must carry.
func (h *HoldTracker) Press(now time.Time) (rising bool, seq uint64) {
	rising = !h.held
	if rising {
		h.held = true
		h.repeats = 0
	} else {
		h.repeats++
	}
	h.last = now
	h.seq++
	return rising, h.seq
}

// Timeout returns how long to wait for the next repeat.
func (h *HoldTracker) Timeout() time.Duration {
	if h.repeats == 0 {
		return h.initial
	}
	return h.repeat
}

// Check reports whether the key is released at now. Checks from older
// presses are ignored.
func (h *HoldTracker) Check(seq uint64, now time.Time) bool {
	if !h.held || seq != h.seq {
		return false
	}
	if now.Sub(h.last) < h.Timeout() {
		return false
	}
	h.held = false
	h.repeats = 0
	return true
}

// Release forces a release and reports whether the key was held.
func (h *HoldTracker) Release() bool {
	was := h.held
	h.held = false
	h.repeats = 0
	h.seq++
	return was
}

// holdCheckCmd schedules a release check for seq.
func holdCheckCmd(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return HoldCheckMsg{Seq: seq, At: t}
	})
}

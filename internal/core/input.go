package core

// Action represents a semantic game command, abstracted from physical key presses.
// Hit-testing of menu or restart buttons happens in the platform layer; the
// core only ever sees the resolved command.
type Action int

const (
	ActionNone         Action = iota
	ActionJumpPressed         // Space, W, Up went down
	ActionJumpReleased        // Space, W, Up went up (synthesized in terminals)
	ActionSlowMode            // M - toggle fly-through practice mode
	ActionPause               // P, Escape - pause/unpause
	ActionMenu                // B - back to the level menu
	ActionRestart             // R - restart while paused or after the level ended
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPressed:
		return "JumpPressed"
	case ActionJumpReleased:
		return "JumpReleased"
	case ActionSlowMode:
		return "SlowMode"
	case ActionPause:
		return "Pause"
	case ActionMenu:
		return "Menu"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the commands received since the previous simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	TickInterval  time.Duration // Fixed simulation tick period
	FrameInterval time.Duration // Animation-frame period used by the frame driver
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickInterval:  15 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
	}
}

// Driver identifies which of the two mutually exclusive clocks advances the
// simulation: the fixed-rate tick or the per-animation-frame pump.
type Driver int

const (
	DriverTick Driver = iota
	DriverFrame
)

// String returns the driver name.
func (d Driver) String() string {
	if d == DriverFrame {
		return "frame"
	}
	return "tick"
}

// GameState is the HUD-level state returned to the platform.
type GameState struct {
	Percent  int  // Level progress 0-100
	Attempts int  // Attempt counter, starts at 1
	Paused   bool // Simulation halted by the player
	Ended    bool // LevelEnd reached, player flying out
	Complete bool // Player left the screen after LevelEnd
	Menu     bool // Player asked to return to the menu
}

// StepResult is returned by Game.Step and Game.Frame.
type StepResult struct {
	State GameState

	// Next is the driver that must advance the game next. The platform
	// schedules exactly one message for it.
	Next Driver

	// Generation identifies the run that produced this result. It changes
	// on every reset; messages carrying an older generation are stale.
	Generation uint64

	// Died is set on the step the player died. The reset follows after
	// the death delay.
	Died bool
	// Completed is set once, on the step the level became complete.
	Completed bool
}

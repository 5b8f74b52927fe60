package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// EventKind discriminates timed events.
type EventKind int

const (
	EventPaletteSwap EventKind = iota
	EventStaticCamera
	EventLevelEnd
	EventTextureSwap
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPaletteSwap:
		return "palette"
	case EventStaticCamera:
		return "static-camera"
	case EventLevelEnd:
		return "end"
	case EventTextureSwap:
		return "texture"
	default:
		return "unknown"
	}
}

// FadeState tracks an in-progress palette fade. From is captured the first
// time the event fires.
type FadeState struct {
	From      core.RGB
	To        core.RGB
	Total     int
	StepsDone int
	Started   bool
}

// TimedEvent is a pending effect keyed by a world x coordinate.
type TimedEvent struct {
	TriggerX float64
	Kind     EventKind

	Slot    Slot     // palette slot for EventPaletteSwap
	Color   core.RGB // target colour for EventPaletteSwap
	Texture int      // index for EventTextureSwap

	// Fade is non-nil for gradual palette swaps.
	Fade *FadeState
}

// NewPaletteSwap creates a palette event. steps == 0 means an immediate swap.
func NewPaletteSwap(x float64, slot Slot, c core.RGB, steps int) *TimedEvent {
	ev := &TimedEvent{TriggerX: x, Kind: EventPaletteSwap, Slot: slot, Color: c}
	if steps > 0 {
		ev.Fade = &FadeState{To: c, Total: steps}
	}
	return ev
}

// Step applies one activation of a palette event to p and reports whether
// the event is finished and must be removed.
func (e *TimedEvent) Step(p *Palette) bool {
	if e.Fade == nil {
		p.Set(e.Slot, e.Color)
		return true
	}
	f := e.Fade
	if !f.Started {
		f.From = p.Get(e.Slot)
		f.Started = true
	}
	f.StepsDone++
	p.Set(e.Slot, f.From.Lerp(f.To, f.StepsDone, f.Total))
	return f.StepsDone >= f.Total
}

// String describes the event for logs.
func (e *TimedEvent) String() string {
	switch e.Kind {
	case EventPaletteSwap:
		if e.Fade != nil {
			return fmt.Sprintf("%s %s->%s over %d @%.0f", e.Kind, e.Slot, e.Color, e.Fade.Total, e.TriggerX)
		}
		return fmt.Sprintf("%s %s->%s @%.0f", e.Kind, e.Slot, e.Color, e.TriggerX)
	case EventTextureSwap:
		return fmt.Sprintf("%s %d @%.0f", e.Kind, e.Texture, e.TriggerX)
	default:
		return fmt.Sprintf("%s @%.0f", e.Kind, e.TriggerX)
	}
}

// TrailDot is an ephemeral marker left behind the player.
type TrailDot struct {
	X, Y         float64
	SpawnPlayerX float64
}

// Alpha returns the dot opacity relative to the player's x, fading to zero
// over fadeDistance pixels.
func (d TrailDot) Alpha(playerX, fadeDistance float64) float64 {
	if fadeDistance <= 0 {
		return 0
	}
	return core.ClampF(1-(playerX-d.X)/fadeDistance, 0, 1)
}

package entity

import "github.com/vovakirdan/tui-dash/internal/core"

// Direction is a vertical direction for animations and gravity.
type Direction int

const (
	Down Direction = iota
	Up
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Animation moves an entity vertically by Distance at Rate pixels per tick
// once the entity has scrolled left of TriggerX. Done is monotonic.
type Animation struct {
	Direction Direction
	Distance  float64
	Rate      float64
	TriggerX  float64
	OriginY   float64
	Done      bool
}

// Target returns the y the animation settles on.
func (a *Animation) Target() float64 {
	if a.Direction == Up {
		return a.OriginY - a.Distance
	}
	return a.OriginY + a.Distance
}

// Step advances the animation by one tick, moving r. It reports whether r moved.
func (a *Animation) Step(r *core.Rect) bool {
	if a.Done || r.X >= a.TriggerX {
		return false
	}
	target := a.Target()
	if a.Direction == Up {
		r.Y -= a.Rate
		if r.Y <= target {
			r.Y = target
			a.Done = true
		}
	} else {
		r.Y += a.Rate
		if r.Y >= target {
			r.Y = target
			a.Done = true
		}
	}
	return true
}

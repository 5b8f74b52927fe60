package sim

import (
	"math"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// ScrollState is the camera state machine.
type ScrollState int

const (
	// Scrolling moves the world left by the scroll speed every tick.
	Scrolling ScrollState = iota
	// FrozenBuildingAhead holds the world still while the player advances
	// and, once handed to the frame driver, the script fills the hidden buffer.
	FrozenBuildingAhead
	// RebuildSettling eases the world and player back until the player is
	// at its nominal x.
	RebuildSettling
)

// String returns the state name.
func (s ScrollState) String() string {
	switch s {
	case Scrolling:
		return "scrolling"
	case FrozenBuildingAhead:
		return "frozen"
	case RebuildSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// spawn interprets one line while the build cursor is within the lookahead.
func (w *World) spawn() {
	if w.cursor > w.cfg.Scroll.LookaheadX {
		return
	}
	w.pumpLine()
}

// pumpLine interprets exactly one line at the build cursor.
func (w *World) pumpLine() {
	if w.interpDone {
		return
	}
	b, err := w.interp.Next(w.cursor, w.texture)
	if err != nil {
		// Programs are validated when the world is built, so this only
		// happens for a level mutated after load. Stop building.
		w.log.Error("script", "level", w.level.ID, "err", err)
		w.interpDone = true
		return
	}
	if b.Complete {
		w.interpDone = true
		w.log.Debug("script exhausted", "level", w.level.ID)
		return
	}
	w.entities = append(w.entities, b.Entities...)
	w.events.Add(b.Events...)
	w.columns = append(w.columns, b.Columns...)
	w.cursor += b.Advance
}

// scrollWorld moves entities, column markers, trail dots and the build
// cursor by dx. Events stop at the trigger proximity.
func (w *World) scrollWorld(dx float64) {
	for _, e := range w.entities {
		e.Rect.Move(dx, 0)
	}
	for i := range w.columns {
		w.columns[i] += dx
	}
	for i := range w.dots {
		w.dots[i].X += dx
	}
	w.cursor += dx
	w.scrolled -= dx
	w.events.Scroll(dx, w.cfg.Scroll.TriggerProximity)
}

// shiftAll moves every world object, pending event and the player by dx.
func (w *World) shiftAll(dx float64) {
	for _, e := range w.entities {
		e.Rect.Move(dx, 0)
	}
	for i := range w.columns {
		w.columns[i] += dx
	}
	for i := range w.dots {
		w.dots[i].X += dx
		w.dots[i].SpawnPlayerX += dx
	}
	w.cursor += dx
	w.scrolled -= dx
	w.events.Shift(dx)
	w.player.Rect.Move(dx, 0)
}

// retire drops entities fully past the left edge.
func (w *World) retire() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Rect.Right() >= 0 {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}

// pruneDots drops dots off screen or fully faded.
func (w *World) pruneDots() {
	px := w.player.Rect.X
	fade := w.cfg.Trail.FadeDistance
	kept := w.dots[:0]
	for _, d := range w.dots {
		if d.X >= 0 && d.Alpha(px, fade) > 0 {
			kept = append(kept, d)
		}
	}
	w.dots = kept
}

// advanceStatic moves the player forward through the frozen world and hands
// off to the frame driver once it reaches the static target.
func (w *World) advanceStatic() {
	p := w.player
	if p.Dying {
		return
	}
	p.Rect.X += w.cfg.Scroll.StaticAdvance
	if p.Rect.X > w.cfg.Scroll.StaticTargetX {
		w.dots = nil
		w.clock.Handoff(core.DriverFrame)
		w.log.Debug("static camera", "state", "rebuild", "cursor", w.cursor)
	}
}

// pumpRebuild interprets one line per frame into the hidden buffer.
func (w *World) pumpRebuild() {
	w.pumpLine()
	if w.interpDone || w.cursor > w.cfg.Scroll.RebuildExtent {
		w.scroll = RebuildSettling
		w.settleDeg = 0
		w.settleFrame = 0
		w.log.Debug("static camera", "state", w.scroll, "cursor", w.cursor)
	}
}

// settle eases everything left along a sine profile until the player is
// back at its nominal x, then returns control to the tick driver.
func (w *World) settle() {
	p := w.player
	remaining := p.Rect.X - w.cfg.Player.NominalX
	w.settleDeg += w.cfg.Scroll.SettleStepDeg
	sin := math.Sin(w.settleDeg * math.Pi / 180)
	move := w.speed * w.cfg.Scroll.SettleGain * sin
	if sin <= 0 || move >= remaining {
		move = remaining
	}
	w.shiftAll(-move)
	p.Velocity = 0
	if p.Rect.X >= w.cfg.Player.NominalX && w.settleFrame%w.cfg.Trail.SettlePeriod == 0 {
		w.dropDot()
	}
	w.settleFrame++
	if p.Rect.X <= w.cfg.Player.NominalX {
		p.Rect.X = w.cfg.Player.NominalX
		w.scroll = Scrolling
		w.clock.Handoff(core.DriverTick)
		w.log.Debug("static camera", "state", w.scroll, "frames", w.settleFrame)
	}
}

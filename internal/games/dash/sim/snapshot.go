package sim

import (
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

// EntityView is the draw data of one entity.
type EntityView struct {
	Kind     entity.Kind
	Rect     core.Rect
	Inverted bool
	Texture  int
	Function int
	Enabled  bool
	Animated bool
	Text     string
	// Color is the palette colour for blocks and animated entities.
	Color  core.RGB
	Tinted bool
}

// PlayerView is the draw data of the player.
type PlayerView struct {
	Rect    core.Rect
	Scheme  Scheme
	Gravity entity.Direction
	Facing  entity.Direction
	Glyph   rune
	Dying   bool
}

// DotView is a trail dot with its current opacity.
type DotView struct {
	X, Y  float64
	Alpha float64
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	LevelID   string
	LevelName string

	Entities []EntityView
	Dots     []DotView
	Player   PlayerView
	Palette  entity.Palette

	Ground  core.Rect
	Ceiling core.Rect
	// Scrolled is the total distance the world has moved left.
	Scrolled float64

	Phase      Phase
	Scroll     ScrollState
	FlyThrough bool
	Speed      float64
	Pending    int
	State      core.GameState
}

// Snapshot copies the world for rendering.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		LevelID:    w.level.ID,
		LevelName:  w.level.Name,
		Entities:   make([]EntityView, 0, len(w.entities)),
		Dots:       make([]DotView, 0, len(w.dots)),
		Palette:    w.palette,
		Ground:     w.ground.Rect,
		Ceiling:    w.ceiling.Rect,
		Scrolled:   w.scrolled,
		Phase:      w.phase,
		Scroll:     w.scroll,
		FlyThrough: w.flyThrough,
		Speed:      w.speed,
		Pending:    w.events.Len(),
		State:      w.State(),
	}
	for _, e := range w.entities {
		v := EntityView{
			Kind:     e.Kind,
			Rect:     e.Rect,
			Inverted: e.Inverted,
			Texture:  e.Texture,
			Function: e.Function,
			Enabled:  e.Enabled,
			Animated: e.Animated(),
			Text:     e.Text,
		}
		switch {
		case e.Animated():
			v.Color, v.Tinted = w.palette.Get(entity.SlotAnimated), true
		case e.Kind == entity.KindBlock:
			v.Color, v.Tinted = w.palette.Get(entity.SlotForeground), true
		}
		s.Entities = append(s.Entities, v)
	}
	px := w.player.Rect.X
	for _, d := range w.dots {
		s.Dots = append(s.Dots, DotView{X: d.X, Y: d.Y, Alpha: d.Alpha(px, w.cfg.Trail.FadeDistance)})
	}
	p := w.player
	s.Player = PlayerView{
		Rect:    p.Rect,
		Scheme:  p.Scheme(),
		Gravity: p.Gravity,
		Facing:  p.Facing(),
		Glyph:   p.Glyph(),
		Dying:   p.Dying,
	}
	return s
}

package sim

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

// Scheme identifies a player kinematics variant.
type Scheme int

const (
	SchemeFreeFall Scheme = iota
	SchemeHover
	SchemeGravityBall
	SchemeArrow
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeFreeFall:
		return "free-fall"
	case SchemeHover:
		return "hover"
	case SchemeGravityBall:
		return "gravity-ball"
	case SchemeArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Kinematics is the per-scheme behaviour of the player. Variants are plain
// values; a portal swaps the whole Player rather than mutating the scheme.
type Kinematics interface {
	Scheme() Scheme

	// MoveUp and MoveDown integrate one tick for the current gravity
	// direction and report whether a trail dot is due.
	MoveUp(p *Player, held bool) bool
	MoveDown(p *Player, held bool) bool

	// CheckCollisions runs every contact check after portals.
	CheckCollisions(p *Player, w *World, held bool)

	// Support is the response to touching a floor or ceiling surface.
	Support(p *Player, surface core.Rect, floor, held bool)

	// Press handles the rising edge of the jump input.
	Press(p *Player)

	// TouchesPortal is the contact predicate used for portals.
	TouchesPortal(p, portal core.Rect) bool

	// Glyph is the terminal glyph drawn for the player.
	Glyph(p *Player) rune
}

// Player is the controllable square.
type Player struct {
	Rect     core.Rect
	Velocity float64
	Gravity  entity.Direction

	Dying  bool
	Active bool // jump held, arms rings

	OnFloor   bool
	OnCeiling bool

	kin    Kinematics
	dotGen int
}

func newPlayer(k Kinematics, x, y, size float64) *Player {
	return &Player{Rect: core.NewRect(x, y, size, size), kin: k}
}

// Scheme returns the active kinematics variant.
func (p *Player) Scheme() Scheme {
	return p.kin.Scheme()
}

// Glyph returns the glyph for the current scheme and motion.
func (p *Player) Glyph() rune {
	return p.kin.Glyph(p)
}

// Facing returns the vertical direction the player is travelling.
func (p *Player) Facing() entity.Direction {
	if p.Velocity < 0 {
		return entity.Up
	}
	return entity.Down
}

func (p *Player) checkInit() {
	p.OnFloor = false
	p.OnCeiling = false
}

func (p *Player) move(held bool) bool {
	if p.Dying {
		return false
	}
	if p.Gravity == entity.Up {
		return p.kin.MoveUp(p, held)
	}
	return p.kin.MoveDown(p, held)
}

// dotEvery counts trail ticks and reports every n-th.
func (p *Player) dotEvery(n int) bool {
	p.dotGen++
	if n <= 1 {
		return true
	}
	return p.dotGen%n == 0
}

// bounds are the vertical limits shared by every scheme.
type bounds struct {
	top    float64
	bottom float64
}

func newKinematics(s Scheme, cfg config.DashConfig) Kinematics {
	b := bounds{top: cfg.Player.TopBound, bottom: cfg.Player.BottomBound}
	switch s {
	case SchemeHover:
		return hover{bounds: b, accel: cfg.Physics.HoverAccel, impulse: cfg.Physics.HoverImpulse, lift: cfg.Physics.HoverLift, period: cfg.Trail.Period}
	case SchemeGravityBall:
		return gravityBall{bounds: b, accel: cfg.Physics.GravityBallAccel}
	case SchemeArrow:
		return arrow{bounds: b, step: cfg.Physics.ArrowStep, reach: cfg.Player.ArrowReach}
	default:
		return freeFall{bounds: b, accel: cfg.Physics.FreeFallAccel, period: cfg.Trail.Period}
	}
}

// freeFall accelerates toward gravity and against it while jump is held.
type freeFall struct {
	bounds
	accel  float64
	period int
}

func (freeFall) Scheme() Scheme { return SchemeFreeFall }

func (k freeFall) MoveDown(p *Player, held bool) bool {
	switch {
	case held && p.Rect.Y > k.top && !p.OnCeiling:
		p.Velocity -= k.accel
		p.Rect.Y += p.Velocity
	case !held && p.Rect.Y < k.bottom && !p.OnFloor:
		p.Velocity += k.accel
		p.Rect.Y += p.Velocity
	}
	return p.dotEvery(k.period)
}

func (k freeFall) MoveUp(p *Player, held bool) bool {
	switch {
	case !held && p.Rect.Y > k.top && !p.OnCeiling:
		p.Velocity -= k.accel
		p.Rect.Y += p.Velocity
	case held && p.Rect.Y < k.bottom && !p.OnFloor:
		p.Velocity += k.accel
		p.Rect.Y += p.Velocity
	}
	return p.dotEvery(k.period)
}

func (freeFall) CheckCollisions(p *Player, w *World, held bool) {
	w.standardCollisions(p, held)
}

// Support snaps onto the surface unless jump is held.
func (freeFall) Support(p *Player, surface core.Rect, floor, held bool) {
	if held {
		return
	}
	if floor {
		p.Rect.Y = surface.Y - p.Rect.H
	} else {
		p.Rect.Y = surface.Bottom()
	}
	p.Velocity = 0
}

func (freeFall) Press(*Player) {}

func (freeFall) TouchesPortal(p, portal core.Rect) bool {
	return p.IntersectsPortal(portal)
}

func (freeFall) Glyph(*Player) rune { return '■' }

// hover falls freely and gets a fixed impulse on every press.
type hover struct {
	bounds
	accel   float64
	impulse float64
	lift    float64
	period  int
}

func (hover) Scheme() Scheme { return SchemeHover }

func (k hover) MoveDown(p *Player, _ bool) bool {
	k.clampBounds(p)
	if !p.OnFloor {
		p.Velocity += k.accel
		p.Rect.Y += p.Velocity
	}
	return p.dotEvery(k.period)
}

func (k hover) MoveUp(p *Player, _ bool) bool {
	k.clampBounds(p)
	if !p.OnCeiling {
		p.Velocity -= k.accel
		p.Rect.Y += p.Velocity
	}
	return p.dotEvery(k.period)
}

// clampBounds stops the player at the movement bounds.
func (k hover) clampBounds(p *Player) {
	switch {
	case p.Rect.Y < k.top:
		p.Velocity = 0
		p.OnCeiling = true
	case p.Rect.Y > k.bottom:
		p.Velocity = 0
		p.OnFloor = true
	}
}

func (hover) CheckCollisions(p *Player, w *World, held bool) {
	w.standardCollisions(p, held)
}

// Support zeroes velocity without snapping.
func (hover) Support(p *Player, _ core.Rect, _, _ bool) {
	p.Velocity = 0
}

func (k hover) Press(p *Player) {
	if p.Gravity == entity.Up {
		p.Velocity = k.impulse
		if p.OnCeiling {
			p.Rect.Y += k.lift
			p.OnCeiling = false
		}
		return
	}
	p.Velocity = -k.impulse
	if p.OnFloor {
		p.Rect.Y -= k.lift
		p.OnFloor = false
	}
}

func (hover) TouchesPortal(p, portal core.Rect) bool {
	return p.IntersectsPortal(portal)
}

func (hover) Glyph(*Player) rune { return '◆' }

// gravityBall rolls along the supporting surface and flips gravity on press.
type gravityBall struct {
	bounds
	accel float64
}

func (gravityBall) Scheme() Scheme { return SchemeGravityBall }

func (k gravityBall) MoveDown(p *Player, _ bool) bool {
	if p.Rect.Y < k.bottom && !p.OnFloor {
		p.Velocity += k.accel
		p.Rect.Y += p.Velocity
	}
	return true
}

func (k gravityBall) MoveUp(p *Player, _ bool) bool {
	if p.Rect.Y > k.top && !p.OnCeiling {
		p.Velocity -= k.accel
		p.Rect.Y += p.Velocity
	}
	return true
}

func (gravityBall) CheckCollisions(p *Player, w *World, held bool) {
	w.standardCollisions(p, held)
}

// Support stops the ball only on the side gravity pulls toward.
func (gravityBall) Support(p *Player, _ core.Rect, floor, _ bool) {
	if floor == (p.Gravity == entity.Down) {
		p.Velocity = 0
	}
}

func (gravityBall) Press(p *Player) {
	supported := p.OnFloor
	if p.Gravity == entity.Up {
		supported = p.OnCeiling
	}
	if supported {
		p.Gravity = p.Gravity.Opposite()
		p.Velocity = 0
	}
}

func (gravityBall) TouchesPortal(p, portal core.Rect) bool {
	return p.IntersectsPortal(portal)
}

func (gravityBall) Glyph(p *Player) rune {
	if p.Gravity == entity.Up {
		return '◓'
	}
	return '◒'
}

// arrow moves diagonally at a constant rate and dies on any contact.
type arrow struct {
	bounds
	step  float64
	reach float64
}

func (arrow) Scheme() Scheme { return SchemeArrow }

func (k arrow) MoveDown(p *Player, held bool) bool {
	p.Velocity = k.step
	switch {
	case held && p.Rect.Y > k.top:
		p.Rect.Y -= k.step
	case !held && p.Rect.Y < k.bottom:
		p.Rect.Y += k.step
	}
	return true
}

func (k arrow) MoveUp(p *Player, held bool) bool {
	p.Velocity = k.step
	switch {
	case !held && p.Rect.Y > k.top:
		p.Rect.Y -= k.step
	case held && p.Rect.Y < k.bottom:
		p.Rect.Y += k.step
	}
	return true
}

// CheckCollisions kills the arrow on any contact with an obstacle ahead.
func (k arrow) CheckCollisions(p *Player, w *World, _ bool) {
	for _, e := range w.entities {
		if !e.Obstacle() || e.Rect.X <= p.Rect.X-k.reach {
			continue
		}
		if p.Rect.IntersectsSide(e.Rect) || p.Rect.IntersectsDown(e.Rect) || p.Rect.IntersectsUp(e.Rect) {
			p.Dying = true
			return
		}
	}
}

func (arrow) Support(*Player, core.Rect, bool, bool) {}

func (arrow) Press(*Player) {}

func (arrow) TouchesPortal(p, portal core.Rect) bool {
	return p.IntersectsSide(portal)
}

func (arrow) Glyph(p *Player) rune {
	if p.Active != (p.Gravity == entity.Up) {
		return '↗'
	}
	return '↘'
}

package sim

import "github.com/vovakirdan/tui-dash/internal/games/dash/entity"

// collidePortals fires every enabled portal or gravity trigger the player
// touches. A scheme portal replaces w.player; the caller must reload it.
func (w *World) collidePortals() {
	for _, e := range w.entities {
		if !e.Activator() || !e.Enabled {
			continue
		}
		p := w.player
		if !p.kin.TouchesPortal(p.Rect, e.Rect) {
			continue
		}
		w.activatePortal(e)
		e.Enabled = false
	}
}

func (w *World) activatePortal(e *entity.Entity) {
	p := w.player
	switch e.Function {
	case entity.FuncGravityUp:
		p.Gravity = entity.Up
	case entity.FuncGravityDown:
		p.Gravity = entity.Down
	case entity.FuncArrow:
		w.swapScheme(SchemeArrow)
	case entity.FuncFreeFall:
		w.swapScheme(SchemeFreeFall)
	case entity.FuncGravityBall:
		w.swapScheme(SchemeGravityBall)
	case entity.FuncHover:
		w.swapScheme(SchemeHover)
	case entity.FuncTeleportUp:
		p.Rect.Y = e.Rect.Y - w.cfg.Physics.TeleportDistance
	case entity.FuncTeleportDown:
		p.Rect.Y = e.Rect.Y + w.cfg.Physics.TeleportDistance
	case entity.FuncSpeedFast:
		w.setSpeed(w.cfg.Scroll.FastSpeed)
	case entity.FuncSpeedNormal:
		w.setSpeed(w.cfg.Scroll.Speed)
	}
	w.log.Debug("portal", "fn", entity.PortalFunctionName(e.Function), "x", e.Rect.X, "scheme", w.player.Scheme())
}

// swapScheme replaces the player with a fresh one of scheme s at the same
// position. Gravity resets to down.
func (w *World) swapScheme(s Scheme) {
	old := w.player
	p := newPlayer(newKinematics(s, w.cfg), old.Rect.X, old.Rect.Y, w.cfg.Player.Size)
	p.Active = old.Active
	w.player = p
}

// standardCollisions is the contact sequence shared by every scheme except
// the arrow: side, floor, ceiling, rings, then the screen bounds.
func (w *World) standardCollisions(p *Player, held bool) {
	w.collideSide(p)
	w.collideFloor(p, held)
	w.collideCeiling(p, held)
	w.collideRings(p)
	w.clampBounds(p)
}

// collideSide kills the player on an obstacle directly ahead.
func (w *World) collideSide(p *Player) {
	reach := p.Rect.X + w.cfg.Player.SideReach
	for _, e := range w.entities {
		if !e.Obstacle() || e.Rect.X <= p.Rect.X || e.Rect.X >= reach {
			continue
		}
		if p.Rect.IntersectsSide(e.Rect) {
			p.Dying = true
			return
		}
	}
}

func (w *World) collideFloor(p *Player, held bool) {
	touched := false
	if p.Rect.IntersectsDown(w.ground.Rect) {
		p.kin.Support(p, w.ground.Rect, true, held)
		touched = true
	}
	for _, e := range w.entities {
		if !e.Obstacle() || e.Rect.Y <= p.Rect.Y {
			continue
		}
		if !p.Rect.IntersectsDown(e.Rect) {
			continue
		}
		touched = true
		if e.Deadly() {
			p.Dying = true
			break
		}
		p.kin.Support(p, e.Rect, true, held)
	}
	p.OnFloor = touched
}

func (w *World) collideCeiling(p *Player, held bool) {
	touched := false
	if p.Rect.IntersectsUp(w.ceiling.Rect) {
		p.kin.Support(p, w.ceiling.Rect, false, held)
		touched = true
	}
	for _, e := range w.entities {
		if !e.Obstacle() || e.Rect.Y >= p.Rect.Y {
			continue
		}
		if !p.Rect.IntersectsUp(e.Rect) {
			continue
		}
		touched = true
		if e.Deadly() {
			p.Dying = true
			break
		}
		p.kin.Support(p, e.Rect, false, held)
	}
	p.OnCeiling = touched
}

// collideRings fires armed rings while the player is supported or touching
// a ceiling and holds jump.
func (w *World) collideRings(p *Player) {
	if !p.Active {
		return
	}
	for _, e := range w.entities {
		if !e.Ring() || !e.Enabled {
			continue
		}
		if !p.Rect.IntersectsDown(e.Rect) && !p.Rect.IntersectsUp(e.Rect) {
			continue
		}
		w.activateRing(p, e)
		e.Enabled = false
	}
}

func (w *World) activateRing(p *Player, e *entity.Entity) {
	switch e.Kind {
	case entity.KindJumpRing:
		if p.Gravity == entity.Down {
			p.Velocity = -w.cfg.Physics.JumpRingImpulse
		} else {
			p.Velocity = w.cfg.Physics.JumpRingImpulse
		}
	case entity.KindGravityRing:
		p.Velocity = w.cfg.Physics.GravityRingImpulse
		if p.Gravity == entity.Down {
			p.Velocity = -p.Velocity
		}
		p.Gravity = p.Gravity.Opposite()
	}
	w.log.Debug("ring", "kind", e.Kind, "x", e.Rect.X, "gravity", p.Gravity)
}

// clampBounds keeps the player between the floor and ceiling lines.
func (w *World) clampBounds(p *Player) {
	switch {
	case p.Rect.Y >= w.cfg.Player.FloorY:
		p.OnFloor = true
		p.Rect.Y = w.cfg.Player.FloorY
	case p.Rect.Y <= w.cfg.Player.CeilingY:
		p.OnCeiling = true
		p.Rect.Y = w.cfg.Player.CeilingY
	}
}

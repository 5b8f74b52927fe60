// Package entity defines the world objects spawned by the level script:
// tagged entity variants, their animation state, timed events and palettes.
package entity

import "github.com/vovakirdan/tui-dash/internal/core"

// Size is the edge length of a grid cell in world pixels.
const Size = 30

// Kind discriminates entity variants. Collision and damage rules are derived
// from Kind and Spike only.
type Kind int

const (
	KindBlock Kind = iota
	KindSpike
	KindHalfSpike
	KindJumpRing
	KindGravityRing
	KindPortal
	KindGravityTrigger
	KindText
	KindGround
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindSpike:
		return "spike"
	case KindHalfSpike:
		return "half-spike"
	case KindJumpRing:
		return "jump-ring"
	case KindGravityRing:
		return "gravity-ring"
	case KindPortal:
		return "portal"
	case KindGravityTrigger:
		return "gravity-trigger"
	case KindText:
		return "text"
	case KindGround:
		return "ground"
	default:
		return "unknown"
	}
}

// SpikeKind is the damage class of an entity.
type SpikeKind int

const (
	SpikeNone SpikeKind = iota
	SpikeFull
	SpikeHalf
)

// Entity is one live world object.
type Entity struct {
	Rect  core.Rect
	Kind  Kind
	Spike SpikeKind

	// Inverted marks the short "low" spike orientation drawn hanging from
	// the cell above.
	Inverted bool

	// Texture is the block texture index active when the entity spawned.
	Texture int

	// Anim is non-nil for animated blocks and spikes. Each entity owns its copy.
	Anim *Animation

	// Function selects the effect of portals, rings and gravity triggers.
	Function int
	// Enabled is true until a one-shot entity has fired.
	Enabled bool

	// Text is the message of a text marker.
	Text string
}

// NewBlock creates a solid 30x30 block.
func NewBlock(x, y float64, texture int) *Entity {
	return &Entity{Rect: core.NewRect(x, y, Size, Size), Kind: KindBlock, Texture: texture}
}

// NewSpike creates a full-height spike.
func NewSpike(x, y float64, inverted bool) *Entity {
	return &Entity{Rect: core.NewRect(x, y, Size, Size), Kind: KindSpike, Spike: SpikeFull, Inverted: inverted}
}

// NewHalfSpike creates a half-height spike at y.
func NewHalfSpike(x, y float64, inverted bool) *Entity {
	return &Entity{Rect: core.NewRect(x, y, Size, Size/2), Kind: KindHalfSpike, Spike: SpikeHalf, Inverted: inverted}
}

// NewRing creates a one-shot ring of the given kind.
func NewRing(kind Kind, x, y float64, fn int) *Entity {
	return &Entity{Rect: core.NewRect(x, y, Size, Size), Kind: kind, Function: fn, Enabled: true}
}

// NewPortal creates a three-cell tall portal. Gravity function ids produce a
// gravity trigger instead of a scheme portal.
func NewPortal(x, y float64, fn int) *Entity {
	kind := KindPortal
	if fn == FuncGravityUp || fn == FuncGravityDown {
		kind = KindGravityTrigger
	}
	return &Entity{Rect: core.NewRect(x, y, Size, 3*Size), Kind: kind, Function: fn, Enabled: true}
}

// NewText creates a text marker.
func NewText(x, y float64, msg string) *Entity {
	return &Entity{Rect: core.NewRect(x, y, Size, Size), Kind: KindText, Text: msg}
}

// NewGround creates a boundary strip (floor or ceiling) spanning the screen.
func NewGround(y float64) *Entity {
	return &Entity{Rect: core.NewRect(-40, y, 860, 150), Kind: KindGround}
}

// Solid reports whether the entity supports the player.
func (e *Entity) Solid() bool {
	return e.Kind == KindBlock || e.Kind == KindGround
}

// Deadly reports whether touching the entity kills the player.
func (e *Entity) Deadly() bool {
	return e.Spike != SpikeNone
}

// Obstacle reports whether the entity takes part in floor, ceiling and side checks.
func (e *Entity) Obstacle() bool {
	return e.Solid() || e.Deadly()
}

// Ring reports whether the entity is a jump or gravity ring.
func (e *Entity) Ring() bool {
	return e.Kind == KindJumpRing || e.Kind == KindGravityRing
}

// Activator reports whether the entity is a portal or gravity trigger.
func (e *Entity) Activator() bool {
	return e.Kind == KindPortal || e.Kind == KindGravityTrigger
}

// Animated reports whether the entity carries animation state.
func (e *Entity) Animated() bool {
	return e.Anim != nil
}

package entity

import "github.com/vovakirdan/tui-dash/internal/core"

// Slot names one of the four palette colours.
type Slot int

const (
	SlotForeground Slot = iota // static blocks
	SlotAnimated               // animated blocks and spikes
	SlotBackground
	SlotGround
	slotCount
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotForeground:
		return "foreground"
	case SlotAnimated:
		return "animated"
	case SlotBackground:
		return "background"
	case SlotGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a palette slot.
func (s Slot) Valid() bool {
	return s >= SlotForeground && s < slotCount
}

// Palette holds the active colour of every slot.
type Palette [slotCount]core.RGB

// Get returns the colour of slot s.
func (p Palette) Get(s Slot) core.RGB {
	return p[s]
}

// Set replaces the colour of slot s.
func (p *Palette) Set(s Slot, c core.RGB) {
	p[s] = c
}

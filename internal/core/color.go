package core

import (
	"fmt"
	"strconv"
)

// RGB is a 24-bit colour used for palette slots.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("core: invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level defaults.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Lerp returns the colour step/total of the way from c to to.
// Every channel is floored, and step >= total yields to exactly.
func (c RGB) Lerp(to RGB, step, total int) RGB {
	if total <= 0 || step >= total {
		return to
	}
	if step <= 0 {
		return c
	}
	return RGB{
		R: lerpChannel(c.R, to.R, step, total),
		G: lerpChannel(c.G, to.G, step, total),
		B: lerpChannel(c.B, to.B, step, total),
	}
}

// lerpChannel computes floor(from + (to-from)*step/total) with integer math.
func lerpChannel(from, to uint8, step, total int) uint8 {
	delta := (int(to) - int(from)) * step
	q := delta / total
	if delta%total != 0 && delta < 0 {
		q--
	}
	return uint8(int(from) + q)
}

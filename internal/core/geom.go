// Package core provides fundamental types and utilities for the dash runtime.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in world pixels with y growing downwards.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Move shifts the rectangle by (dx, dy). Size never changes.
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// overlapsX reports whether the horizontal spans of r and o overlap.
func (r Rect) overlapsX(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right()
}

// IntersectsDown reports floor contact: r overlaps o horizontally and o's
// top edge lies inside r's vertical span.
func (r Rect) IntersectsDown(o Rect) bool {
	return r.overlapsX(o) && r.Bottom() > o.Y && r.Y < o.Y
}

// IntersectsUp reports ceiling contact: r overlaps o horizontally and
// vertically, with r reaching into o from below.
func (r Rect) IntersectsUp(o Rect) bool {
	return r.overlapsX(o) && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// IntersectsSide reports an obstacle directly ahead: r's right edge has
// reached o and r's top lies within half of o's height around o's top.
func (r Rect) IntersectsSide(o Rect) bool {
	return r.Right() >= o.X && r.Y > o.Y-o.H/2 && r.Y < o.Y+o.H/2
}

// IntersectsPortal is the wide-tolerance variant of IntersectsSide used for
// portals: 5px of slack above and below the portal's span.
func (r Rect) IntersectsPortal(o Rect) bool {
	return r.Right() >= o.X && r.Y > o.Y-5 && r.Y < o.Bottom()+5
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

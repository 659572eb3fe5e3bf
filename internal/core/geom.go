// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
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
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned bounding box in world units.
// The simulation works in a continuous coordinate space where y grows
// downward and the ground line sits near the bottom of the viewport.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height, never negative
}

// NewBox creates a box, clamping negative dimensions to zero.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: math.Max(0, w), H: math.Max(0, h)}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes intersect. Each axis is tested on its
// own: two positive extents must share interior length, so touching edges
// do not count. An axis where either box has zero extent is tested as a
// closed interval, so a collapsed box still hits the box it lies in and
// every box overlaps its copy.
func (b Box) Overlaps(other Box) bool {
	return spans(b.X, b.W, other.X, other.W) && spans(b.Y, b.H, other.Y, other.H)
}

// spans tests one axis of Overlaps.
func spans(a, aLen, b, bLen float64) bool {
	if aLen > 0 && bLen > 0 {
		return a < b+bLen && b < a+aLen
	}
	return a <= b+bLen && b <= a+aLen
}

// Inset shrinks the box by padX on the left and right and padY on the top
// and bottom. When the padding exceeds the box, the result collapses to a
// zero-sized box at the original center.
func (b Box) Inset(padX, padY float64) Box {
	out := Box{X: b.X + padX, Y: b.Y + padY, W: b.W - 2*padX, H: b.H - 2*padY}
	if out.W < 0 {
		out.X = b.X + b.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = b.Y + b.H/2
		out.H = 0
	}
	return out
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
// NaN collapses to min so bad input never leaks into the simulation.
func ClampF(val, min, max float64) float64 {
	if math.IsNaN(val) || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates from start to end by t.
// Both endpoints are returned exactly at t=0 and t=1.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

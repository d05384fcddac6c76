// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or velocity in continuous world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned bounding box in world units.
// X, Y is the top-left corner; Y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAround returns the square box enclosing a circle.
func BoxAround(c Vec2, r float64) Box {
	return Box{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the centre point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlap returns the penetration depth on each axis.
// ok is false when the boxes do not strictly overlap (touching edges do not count).
func (b Box) Overlap(o Box) (ox, oy float64, ok bool) {
	ox = math.Min(b.Right(), o.Right()) - math.Max(b.Left(), o.Left())
	oy = math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Top(), o.Top())
	return ox, oy, ox > 0 && oy > 0
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, b.Left(), b.Right()),
		Y: ClampF(p.Y, b.Top(), b.Bottom()),
	}
}

// CircleHits reports whether a circle touches or overlaps the box.
func (b Box) CircleHits(c Vec2, r float64) bool {
	return c.Sub(b.ClosestPoint(c)).Len() < r
}

// Rect represents an axis-aligned rectangle on the character grid.
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

// Finite reports whether every component of v is a real number.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

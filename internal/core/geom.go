// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in field pixels.
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

// OverlapsX reports whether the horizontal spans of r and other overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// WithinY reports whether the vertical span of r lies fully inside [top, bottom].
func (r Rect) WithinY(top, bottom float64) bool {
	return r.Y >= top && r.Bottom() <= bottom
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Vec is a point or offset in field pixels.
type Vec struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// CirclesTouch reports whether two circles overlap strictly.
func CirclesTouch(a Vec, ra float64, b Vec, rb float64) bool {
	return a.Dist(b) < ra+rb
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

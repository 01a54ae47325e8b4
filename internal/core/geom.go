// Package core provides fundamental types and utilities for the racer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
// World space is measured in pixels with y growing downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rotate applies the standard 2D rotation matrix for angle (radians).
// With y pointing down a positive angle turns clockwise on screen.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

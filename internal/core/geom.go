// Package core provides fundamental types and utilities shared by the
// simulation engines. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector with float64 components, used for continuous-space
// positions and velocities (Pong court coordinates, pixels and pixels/second).
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude. Cheaper than Len when only
// comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// WithLen returns a vector pointing in the same direction with the given
// magnitude. A zero vector is given a positive X direction so callers can
// floor degenerate velocities to a minimum speed without producing NaN.
func (v Vec2) WithLen(length float64) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{X: length, Y: 0}
	}
	return v.Scale(length / l)
}

// RectF is an axis-aligned rectangle in continuous space.
type RectF struct {
	X, Y, W, H float64
}

// ClosestPoint returns the point inside the rectangle closest to (px, py).
// Used for circle-vs-rectangle collision tests.
func (r RectF) ClosestPoint(px, py float64) (float64, float64) {
	return ClampF(px, r.X, r.X+r.W), ClampF(py, r.Y, r.Y+r.H)
}

// Rect represents an axis-aligned bounding box on the integer cell grid.
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

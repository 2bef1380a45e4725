// Package core provides fundamental types and utilities for the invaders
// platform. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

import "math"

// Rect is an integer, cell-aligned rectangle used by the Screen buffer.
type Rect struct {
	X, Y int // Top-left corner cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a center-anchored, axis-aligned bounding box in world units.
// It makes no assumption about the direction of the y axis.
type Box struct {
	X, Y float64 // Center
	W, H float64 // Width and height
}

// NewBox creates a box centered on (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// MinX returns the smallest x covered by the box.
func (b Box) MinX() float64 { return b.X - b.W/2 }

// MaxX returns the largest x covered by the box.
func (b Box) MaxX() float64 { return b.X + b.W/2 }

// MinY returns the smallest y covered by the box.
func (b Box) MinY() float64 { return b.Y - b.H/2 }

// MaxY returns the largest y covered by the box.
func (b Box) MaxY() float64 { return b.Y + b.H/2 }

// Contains reports whether the point (x, y) lies inside the box.
// Edges are inclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX() && x <= b.MaxX() && y >= b.MinY() && y <= b.MaxY()
}

// Finite reports whether v is neither NaN nor an infinity.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

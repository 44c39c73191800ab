// Package core provides fundamental types shared by the simulation and the
// platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is an integer coordinate on the drawing surface.
// It doubles as a velocity (dx, dy) for the snake.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Wrap folds a coordinate that stepped off one axis back onto it.
// Negative values land on the last cell, values at or past extent land on 0.
func Wrap(v, extent, cell int) int {
	if v < 0 {
		return extent - cell
	}
	if v >= extent {
		return 0
	}
	return v
}

// RectF is an axis-aligned rectangle in surface units.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Covers returns true if other lies entirely inside r.
func (r RectF) Covers(other RectF) bool {
	return r.X <= other.X && r.Y <= other.Y &&
		r.Right() >= other.Right() && r.Bottom() >= other.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Origin returns the top-left corner.
func (r Rect) Origin() math.Vec2 {
	return math.Vec2{X: r.X, Y: r.Y}
}

// Intersects reports whether the two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Shrink moves every side of the rectangle inward by offset.
func (r Rect) Shrink(offset float64) Rect {
	return Rect{
		X: r.X + offset,
		Y: r.Y + offset,
		W: r.W - 2*offset,
		H: r.H - 2*offset,
	}
}

// Grow is Shrink with the sign flipped.
func (r Rect) Grow(offset float64) Rect {
	return r.Shrink(-offset)
}

package gamemath

import "github.com/yohamta/donburi/features/math"

// ClipToRect returns the point where the segment p1→p2 leaves r after r has
// been shrunk by offset on every side. It is a Liang–Barsky clip that only
// keeps the exit parameter nearest to p1.
//
// p1 must lie inside the shrunk rectangle and p2 outside of it; the result is
// unspecified otherwise.
func ClipToRect(p1, p2 math.Vec2, r Rect, offset float64) math.Vec2 {
	minX := r.X + offset
	minY := r.Y + offset
	maxX := r.X + r.W - offset
	maxY := r.Y + r.H - offset

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	// p is the segment's travel toward a side, q the room left before it.
	sides := [4][2]float64{
		{-dx, p1.X - minX}, // left
		{dx, maxX - p1.X},  // right
		{-dy, p1.Y - minY}, // top
		{dy, maxY - p1.Y},  // bottom
	}

	t := 1.0
	for _, side := range sides {
		p, q := side[0], side[1]
		if p <= 0 {
			continue
		}
		if u := q / p; u < t {
			t = u
		}
	}
	if t < 0 {
		t = 0
	}

	return math.Vec2{X: p1.X + t*dx, Y: p1.Y + t*dy}
}

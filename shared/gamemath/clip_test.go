package gamemath

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func onBoundary(p math.Vec2, r Rect) bool {
	withinX := p.X >= r.X-eps && p.X <= r.Right()+eps
	withinY := p.Y >= r.Y-eps && p.Y <= r.Bottom()+eps
	onVertical := gomath.Abs(p.X-r.X) < eps || gomath.Abs(p.X-r.Right()) < eps
	onHorizontal := gomath.Abs(p.Y-r.Y) < eps || gomath.Abs(p.Y-r.Bottom()) < eps
	return (onVertical && withinY) || (onHorizontal && withinX)
}

func TestClipToRect(t *testing.T) {
	view := NewRect(-100, -100, 200, 200)

	tests := []struct {
		name   string
		p1, p2 math.Vec2
		offset float64
		want   math.Vec2
	}{
		{"right edge", math.Vec2{X: 0, Y: 0}, math.Vec2{X: 300, Y: 0}, 50, math.Vec2{X: 50, Y: 0}},
		{"left edge", math.Vec2{X: 0, Y: 0}, math.Vec2{X: -300, Y: 0}, 50, math.Vec2{X: -50, Y: 0}},
		{"top edge", math.Vec2{X: 0, Y: 0}, math.Vec2{X: 0, Y: -400}, 10, math.Vec2{X: 0, Y: -90}},
		{"bottom edge", math.Vec2{X: 0, Y: 0}, math.Vec2{X: 0, Y: 400}, 0, math.Vec2{X: 0, Y: 100}},
		{"corner diagonal", math.Vec2{X: 0, Y: 0}, math.Vec2{X: 200, Y: 200}, 50, math.Vec2{X: 50, Y: 50}},
		{"off-centre start", math.Vec2{X: 20, Y: -10}, math.Vec2{X: 220, Y: 90}, 0, math.Vec2{X: 100, Y: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipToRect(tt.p1, tt.p2, view, tt.offset)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestClipToRectParallelSidesSkipped(t *testing.T) {
	// dy == 0 means both horizontal sides have p == 0.
	got := ClipToRect(math.Vec2{X: 10, Y: 99}, math.Vec2{X: 500, Y: 99}, NewRect(0, 0, 100, 100), 0)
	assert.False(t, gomath.IsNaN(got.X) || gomath.IsNaN(got.Y))
	assert.InDelta(t, 100.0, got.X, eps)
	assert.InDelta(t, 99.0, got.Y, eps)
}

func TestClipToRectLandsOnShrunkBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	view := NewRect(-320, -180, 640, 360)

	for i := 0; i < 2000; i++ {
		offset := rng.Float64() * 60
		shrunk := view.Shrink(offset)

		p1 := math.Vec2{
			X: shrunk.X + 1 + rng.Float64()*(shrunk.W-2),
			Y: shrunk.Y + 1 + rng.Float64()*(shrunk.H-2),
		}
		// Pick a far point in a random direction so it is always outside.
		angle := rng.Float64() * 2 * gomath.Pi
		dist := 800 + rng.Float64()*2000
		p2 := math.Vec2{X: p1.X + gomath.Cos(angle)*dist, Y: p1.Y + gomath.Sin(angle)*dist}

		got := ClipToRect(p1, p2, view, offset)
		if !onBoundary(got, shrunk) {
			t.Fatalf("case %d: %v not on boundary of %+v (p1=%v p2=%v)", i, got, shrunk, p1, p2)
		}
	}
}

func TestClipToRectDeterministic(t *testing.T) {
	p1 := math.Vec2{X: 12.5, Y: -3.25}
	p2 := math.Vec2{X: 913.1, Y: 411.7}
	view := NewRect(-200, -150, 400, 300)

	first := ClipToRect(p1, p2, view, 40)
	for i := 0; i < 10; i++ {
		again := ClipToRect(p1, p2, view, 40)
		assert.Equal(t, gomath.Float64bits(first.X), gomath.Float64bits(again.X))
		assert.Equal(t, gomath.Float64bits(first.Y), gomath.Float64bits(again.Y))
	}
}

func TestRectIntersects(t *testing.T) {
	view := NewRect(0, 0, 100, 100)

	assert.True(t, view.Intersects(NewRect(90, 90, 20, 20)))
	assert.True(t, view.Intersects(NewRect(-10, -10, 500, 500)))
	assert.False(t, view.Intersects(NewRect(100, 0, 10, 10)), "touching edge")
	assert.False(t, view.Intersects(NewRect(200, 200, 10, 10)))
}

func TestRectShrink(t *testing.T) {
	r := NewRect(-100, -100, 200, 200).Shrink(50)
	assert.Equal(t, NewRect(-50, -50, 100, 100), r)
	assert.Equal(t, math.Vec2{X: 0, Y: 0}, r.Center())
}

func TestRectGrow(t *testing.T) {
	r := NewRect(0, 0, 10, 20).Grow(5)
	assert.Equal(t, NewRect(-5, -5, 20, 30), r)
	assert.True(t, r.Contains(math.Vec2{X: -5, Y: 25}))
}

func TestRectOrigin(t *testing.T) {
	assert.Equal(t, math.Vec2{X: -40, Y: 12}, NewRect(-40, 12, 5, 5).Origin())
}

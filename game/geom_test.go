package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Vec2{X: 25, Y: 40}, r.Center())
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, a.Overlaps(NewRect(5, 5, 10, 10)))
	assert.True(t, a.Overlaps(NewRect(-5, -5, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(20, 0, 10, 10)))

	// Shared edges are not overlap.
	assert.False(t, a.Overlaps(NewRect(10, 0, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(0, 10, 10, 10)))
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.Contains(Vec2{X: 0, Y: 0}))
	assert.True(t, r.Contains(Vec2{X: 9.9, Y: 9.9}))
	assert.False(t, r.Contains(Vec2{X: 10, Y: 5}), "right edge is exclusive")
	assert.False(t, r.Contains(Vec2{X: -0.1, Y: 5}))
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	g := r.Inflate(5, 3)

	assert.Equal(t, NewRect(5, 7, 30, 26), g)
	assert.Equal(t, r.Center(), g.Center())
}

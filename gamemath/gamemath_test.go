package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOr(t *testing.T) {
	assert.Equal(t, Down, NormalizeOr(Vec2{}, Down))
	assert.Equal(t, Down, NormalizeOr(V(1e-7, 0), Down), "too short for a direction")
	assert.Equal(t, V(0, 1), NormalizeOr(V(0, 5), Down))
	assert.InDelta(t, 1, NormalizeOr(V(3, 4), Down).Magnitude(), 1e-12)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 0, AngleBetween(V(1, 0), V(5, 0)), 1e-9)
	assert.InDelta(t, 90, AngleBetween(V(1, 0), V(0, -2)), 1e-9)
	assert.InDelta(t, 180, AngleBetween(V(1, 0), V(-1, 0)), 1e-9)
	assert.InDelta(t, 45, AngleBetween(V(1, 0), V(1, 1)), 1e-9)
	assert.Equal(t, 180.0, AngleBetween(Vec2{}, V(1, 0)))
}

func TestHeading(t *testing.T) {
	assert.InDelta(t, 0, Heading(V(1, 0)), 1e-9)
	assert.InDelta(t, 90, Heading(V(0, 1)), 1e-9)
	assert.InDelta(t, 180, Heading(V(-1, 0)), 1e-9)
	assert.InDelta(t, 270, Heading(V(0, -1)), 1e-9)
}

func TestCompassOfHeading(t *testing.T) {
	tests := []struct {
		deg  float64
		want Compass
	}{
		{0, East},
		{22.5, East},
		{22.6, NorthEast},
		{67.5, NorthEast},
		{90, North},
		{180, West},
		{202.5, West},
		{270, South},
		{337.5, SouthEast},
		{337.6, East},
		{-90, South},
		{720, East},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompassOfHeading(tt.deg), "heading %v", tt.deg)
	}
}

func TestSnapToCompass(t *testing.T) {
	v, c := SnapToCompass(V(0.9, 1))
	assert.Equal(t, NorthEast, c)
	assert.InDelta(t, math.Sqrt2/2, v.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, v.Y, 1e-12)

	v, c = SnapToCompass(V(-3, 0.2))
	assert.Equal(t, West, c)
	assert.Equal(t, V(-1, 0), v)

	_, c = SnapToCompass(Vec2{})
	assert.Equal(t, South, c, "zero snaps to down")
}

func TestDeathIndex(t *testing.T) {
	want := map[Compass]int{
		South:     0,
		West:      1,
		SouthWest: 2,
		NorthWest: 3,
		East:      4,
		SouthEast: 5,
		NorthEast: 6,
		North:     7,
	}
	seen := map[int]bool{}
	for c, idx := range want {
		assert.Equal(t, idx, c.DeathIndex(), c.String())
		seen[c.DeathIndex()] = true

		back, ok := CompassOfDeathIndex(idx)
		assert.True(t, ok)
		assert.Equal(t, c, back)
	}
	assert.Len(t, seen, 8)

	_, ok := CompassOfDeathIndex(8)
	assert.False(t, ok)
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 3.0, Approach(0, 10, 3))
	assert.Equal(t, 10.0, Approach(9, 10, 3))
	assert.Equal(t, -3.0, Approach(0, -10, 3))
	assert.Equal(t, V(3, 4), ApproachVec(Vec2{}, V(3, 4), 10))
	assert.InDelta(t, 1, ApproachVec(Vec2{}, V(3, 4), 1).Magnitude(), 1e-12)
}

func TestClampAndFriction(t *testing.T) {
	assert.InDelta(t, 5, ClampMagnitude(V(30, 40), 5).Magnitude(), 1e-12)
	assert.Equal(t, V(1, 1), ClampMagnitude(V(1, 1), 5))
	assert.Equal(t, Vec2{}, ApplyFriction(V(1, 0), 2))
	assert.InDelta(t, 3, ApplyFriction(V(5, 0), 2).X, 1e-12)
	assert.Equal(t, 0.0, ClampFloat(-1, 0, 1))
	assert.Equal(t, 1.0, ClampFloat(2, 0, 1))
}

// Package gamemath holds the 2D helpers shared by the combat core, the
// spatial queries and the ECS systems. Vectors are donburi's math.Vec2.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is a 2D vector in world space. Y grows upward.
type Vec2 = dmath.Vec2

// Down is the canonical fallback direction for facing, hits and deaths.
var Down = Vec2{X: 0, Y: -1}

func V(x, y float64) Vec2 { return dmath.NewVec2(x, y) }

// NormalizeOr returns the unit vector of v, or fallback when v is too short
// to carry a direction.
func NormalizeOr(v, fallback Vec2) Vec2 {
	if v.Magnitude() <= dmath.Epsilon {
		return fallback
	}
	return v.Normalized()
}

// AngleBetween returns the unsigned angle between a and b in degrees, in
// [0,180]. If either vector is zero the angle is reported as 180.
func AngleBetween(a, b Vec2) float64 {
	if a.Magnitude() <= dmath.Epsilon || b.Magnitude() <= dmath.Epsilon {
		return 180
	}
	an, bn := a.Normalized(), b.Normalized()
	cos := ClampFloat(an.Dot(&bn), -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// Heading returns the counter-clockwise angle of v from +X in degrees,
// normalised to [0,360).
func Heading(v Vec2) float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	if deg >= 360 {
		deg = 0
	}
	return deg
}

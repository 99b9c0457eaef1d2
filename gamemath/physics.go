package gamemath

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by at most maxDelta.
func Approach(current, target, maxDelta float64) float64 {
	if current < target {
		if current+maxDelta > target {
			return target
		}
		return current + maxDelta
	}
	if current-maxDelta < target {
		return target
	}
	return current - maxDelta
}

// ApproachVec moves current toward target by at most maxDelta in length.
func ApproachVec(current, target Vec2, maxDelta float64) Vec2 {
	diff := target.Sub(current)
	dist := diff.Magnitude()
	if dist <= maxDelta || dist < 1e-9 {
		return target
	}
	return current.Add(diff.MulScalar(maxDelta / dist))
}

// ClampMagnitude limits the length of v to max.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	l := v.Magnitude()
	if l <= max || l < 1e-9 {
		return v
	}
	return v.MulScalar(max / l)
}

// ApplyFriction reduces the length of v toward zero by friction.
func ApplyFriction(v Vec2, friction float64) Vec2 {
	l := v.Magnitude()
	if l <= friction {
		return Vec2{}
	}
	return v.MulScalar((l - friction) / l)
}

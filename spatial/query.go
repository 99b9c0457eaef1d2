package spatial

import (
	"cmp"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/gamemath"
)

var _ combat.SpatialQuery = (*Space)(nil)

// QueryCircle returns the actors with the given tag whose body overlaps the
// circle, ordered by ID.
func (s *Space) QueryCircle(center gamemath.Vec2, radius float64, tag combat.Tag) []combat.TargetRef {
	var out []combat.TargetRef
	for _, a := range s.candidates(center, radius, tag) {
		if a.Position().Distance(center) <= radius+a.Radius {
			out = append(out, a.ref())
		}
	}
	return out
}

// QueryCone narrows QueryCircle to actors whose centre lies within
// halfAngle degrees of direction. An actor standing on the origin is
// always inside.
func (s *Space) QueryCone(origin, direction gamemath.Vec2, radius, halfAngle float64, tag combat.Tag) []combat.TargetRef {
	var out []combat.TargetRef
	for _, ref := range s.QueryCircle(origin, radius, tag) {
		to := ref.Position.Sub(origin)
		if to.IsZero() || gamemath.AngleBetween(direction, to) <= halfAngle {
			out = append(out, ref)
		}
	}
	return out
}

// RaycastObstacle walks from one point to the other in losStep increments
// and reports whether a square sensor of half-size losWidth touches a solid.
// Boxes are tested directly so the query never mutates the space.
func (s *Space) RaycastObstacle(from, to gamemath.Vec2) bool {
	diff := to.Sub(from)
	dist := diff.Magnitude()
	if dist == 0 {
		return false
	}
	dir := diff.MulScalar(1 / dist)
	solids := s.Obstacles()
	w := s.losWidth

	for d := s.losStep; d < dist-s.losStep; d += s.losStep {
		p := from.Add(dir.MulScalar(d))
		for _, obj := range solids {
			if p.X+w > obj.X && p.X-w < obj.X+obj.W &&
				p.Y+w > obj.Y && p.Y-w < obj.Y+obj.H {
				return true
			}
		}
	}
	return false
}

// candidates uses a temporary sensor object to collect the actors sharing a
// cell with the circle's bounding box.
func (s *Space) candidates(center gamemath.Vec2, radius float64, tag combat.Tag) []*Actor {
	sensor := resolv.NewObject(center.X-radius, center.Y-radius, radius*2, radius*2)
	s.space.Add(sensor)
	defer s.space.Remove(sensor)

	check := sensor.Check(0, 0, string(tag))
	if check == nil {
		return nil
	}
	var out []*Actor
	for _, obj := range check.Objects {
		a, ok := obj.Data.(*Actor)
		if !ok || a.Tag != tag || slices.Contains(out, a) {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y *Actor) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

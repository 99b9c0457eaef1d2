// Package spatial wraps a resolv space with the overlap, cone and
// line-of-sight queries the combat core asks for, and moves actor bodies
// against the arena's solid obstacles.
//
// World coordinates grow upward on Y. resolv never cares about the axis
// direction, so the space is laid out in world units with the origin at
// the bottom-left corner of the arena.
package spatial

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/gamemath"
)

// Resolv tags
const (
	TagSolid = "solid"
	TagActor = "actor"
)

type Space struct {
	space    *resolv.Space
	width    float64
	height   float64
	losStep  float64
	losWidth float64
}

// New creates a space of width x height world units split into square
// cells. losStep and losWidth tune the line-of-sight walk.
func New(width, height, cellSize int, losStep, losWidth float64) *Space {
	if losStep <= 0 {
		losStep = 4
	}
	return &Space{
		space:    resolv.NewSpace(width, height, cellSize, cellSize),
		width:    float64(width),
		height:   float64(height),
		losStep:  losStep,
		losWidth: losWidth,
	}
}

func (s *Space) Width() float64  { return s.width }
func (s *Space) Height() float64 { return s.height }

// Resolv exposes the underlying space for debug drawing.
func (s *Space) Resolv() *resolv.Space { return s.space }

// AddObstacle inserts a solid axis-aligned rectangle with its bottom-left
// corner at (x, y).
func (s *Space) AddObstacle(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.space.Add(obj)
	return obj
}

// Obstacles returns every solid object in the space.
func (s *Space) Obstacles() []*resolv.Object {
	var out []*resolv.Object
	for _, obj := range s.space.Objects() {
		if obj.HasTags(TagSolid) {
			out = append(out, obj)
		}
	}
	return out
}

// Actor is a circular body registered in the space. Its resolv object is
// the bounding square of the circle.
type Actor struct {
	ID     combat.ActorID
	Tag    combat.Tag
	Radius float64
	obj    *resolv.Object
}

func (a *Actor) Object() *resolv.Object { return a.obj }

// Position returns the centre of the actor.
func (a *Actor) Position() gamemath.Vec2 {
	return gamemath.V(a.obj.X+a.Radius, a.obj.Y+a.Radius)
}

func (a *Actor) ref() combat.TargetRef {
	return combat.TargetRef{ID: a.ID, Position: a.Position(), Tag: a.Tag}
}

func (s *Space) AddActor(id combat.ActorID, tag combat.Tag, pos gamemath.Vec2, radius float64) *Actor {
	a := &Actor{ID: id, Tag: tag, Radius: radius}
	a.obj = resolv.NewObject(pos.X-radius, pos.Y-radius, radius*2, radius*2, TagActor, string(tag))
	a.obj.Data = a
	s.space.Add(a.obj)
	return a
}

func (s *Space) RemoveActor(a *Actor) {
	if a == nil || a.obj == nil {
		return
	}
	s.space.Remove(a.obj)
}

// Teleport places the actor's centre at pos without collision.
func (s *Space) Teleport(a *Actor, pos gamemath.Vec2) {
	a.obj.X = pos.X - a.Radius
	a.obj.Y = pos.Y - a.Radius
	a.obj.Update()
}

// Move displaces the actor by delta, stopping each axis at the first solid
// obstacle and at the arena edge. It returns the displacement applied.
func (s *Space) Move(a *Actor, delta gamemath.Vec2) gamemath.Vec2 {
	obj := a.obj

	dx := clampAxis(obj.X, obj.W, delta.X, s.width)
	dx = sweepX(obj, dx)
	obj.X += dx

	dy := clampAxis(obj.Y, obj.H, delta.Y, s.height)
	dy = sweepY(obj, dy)
	obj.Y += dy

	obj.Update()
	return gamemath.V(dx, dy)
}

func clampAxis(pos, size, d, limit float64) float64 {
	if pos+d < 0 {
		return -pos
	}
	if pos+size+d > limit {
		return limit - size - pos
	}
	return d
}

// sweepX shortens dx so the object stops flush against the nearest solid
// it would enter. Solids it already overlaps are ignored so a body pushed
// into a wall can still walk out.
func sweepX(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx, 0, TagSolid)
	if check == nil {
		return dx
	}
	for _, o := range check.ObjectsByTags(TagSolid) {
		if obj.Y >= o.Y+o.H || obj.Y+obj.H <= o.Y {
			continue
		}
		if dx > 0 && obj.X+obj.W <= o.X && obj.X+obj.W+dx > o.X {
			dx = o.X - (obj.X + obj.W)
		} else if dx < 0 && obj.X >= o.X+o.W && obj.X+dx < o.X+o.W {
			dx = o.X + o.W - obj.X
		}
	}
	return dx
}

func sweepY(obj *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	check := obj.Check(0, dy, TagSolid)
	if check == nil {
		return dy
	}
	for _, o := range check.ObjectsByTags(TagSolid) {
		if obj.X >= o.X+o.W || obj.X+obj.W <= o.X {
			continue
		}
		if dy > 0 && obj.Y+obj.H <= o.Y && obj.Y+obj.H+dy > o.Y {
			dy = o.Y - (obj.Y + obj.H)
		} else if dy < 0 && obj.Y >= o.Y+o.H && obj.Y+dy < o.Y+o.H {
			dy = o.Y + o.H - obj.Y
		}
	}
	return dy
}

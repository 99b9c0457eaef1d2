package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/spatial"
)

// Body is an actor's kinematic state backed by its resolv object. The
// coordinator sets the intent velocity; knockback arrives as an impulse that
// decays on its own.
type Body struct {
	space    *spatial.Space
	actor    *spatial.Actor
	velocity gamemath.Vec2
	impulse  gamemath.Vec2
}

var _ combat.Body = (*Body)(nil)

func NewBody(space *spatial.Space, actor *spatial.Actor) *Body {
	return &Body{space: space, actor: actor}
}

func (b *Body) Actor() *spatial.Actor        { return b.actor }
func (b *Body) Position() gamemath.Vec2      { return b.actor.Position() }
func (b *Body) Velocity() gamemath.Vec2      { return b.velocity }
func (b *Body) SetVelocity(v gamemath.Vec2)  { b.velocity = v }
func (b *Body) Impulse() gamemath.Vec2       { return b.impulse }
func (b *Body) ApplyImpulse(v gamemath.Vec2) { b.impulse = b.impulse.Add(v) }

// SetPosition teleports the actor and drops any pending knockback.
func (b *Body) SetPosition(p gamemath.Vec2) {
	b.space.Teleport(b.actor, p)
	b.impulse = gamemath.Vec2{}
}

// Step moves the actor by (velocity + impulse) * dt against the obstacles and
// decays the impulse by decay * dt. It returns the displacement applied.
func (b *Body) Step(dt, decay float64) gamemath.Vec2 {
	moved := b.space.Move(b.actor, b.velocity.Add(b.impulse).MulScalar(dt))
	b.impulse = gamemath.ApplyFriction(b.impulse, decay*dt)
	return moved
}

type PhysicsData struct {
	Body *Body
}

var Physics = donburi.NewComponentType[PhysicsData]()

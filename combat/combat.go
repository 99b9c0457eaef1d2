// Package combat implements the attack, hurt, shield, roll and death state
// machines shared by the player and enemies. It is a pure tick-driven
// library: everything it touches outside its own state is reached through
// the small collaborator interfaces declared here, so the ECS layer, the
// spatial index and the renderer can all be swapped for fakes in tests.
package combat

import (
	"github.com/automoto/shieldbearer/gamemath"
)

// phaseEpsilon absorbs float drift when summing fixed ticks against a
// configured duration.
const phaseEpsilon = 1e-9

// ActorID identifies an actor across the roster and spatial queries.
type ActorID uint64

// Tag filters spatial queries by faction.
type Tag string

const (
	TagPlayer Tag = "player"
	TagEnemy  Tag = "enemy"
)

// TargetRef is one result of a spatial overlap query.
type TargetRef struct {
	ID       ActorID
	Position gamemath.Vec2
	Tag      Tag
}

// SpatialQuery answers overlap and line-of-sight questions about the world.
type SpatialQuery interface {
	QueryCircle(center gamemath.Vec2, radius float64, tag Tag) []TargetRef
	QueryCone(origin, direction gamemath.Vec2, radius, halfAngle float64, tag Tag) []TargetRef
	// RaycastObstacle reports whether an obstacle lies between from and to.
	RaycastObstacle(from, to gamemath.Vec2) bool
}

// Combatant is what an attacker needs from a target to resolve a strike.
type Combatant interface {
	ID() ActorID
	Vitals() *Vitals
	Defense() float64
	// Shield returns nil for actors that cannot block.
	Shield() *Shield
	Position() gamemath.Vec2
}

// Pushable is a combatant that struck hits knock back.
type Pushable interface {
	Push(impulse gamemath.Vec2)
}

// MovementBlockable is an actor that can be frozen in place. A frozen actor
// cannot move, attack, shield or roll; timers keep running.
type MovementBlockable interface {
	SetFrozen(frozen bool)
	Frozen() bool
}

// Roster looks up combatants by ID.
type Roster interface {
	Lookup(id ActorID) (Combatant, bool)
}

// Body is the kinematic state of an actor. Integration against obstacles
// happens outside the core. Impulses decay independently of the velocity
// set by the actor.
type Body interface {
	Position() gamemath.Vec2
	SetPosition(p gamemath.Vec2)
	Velocity() gamemath.Vec2
	SetVelocity(v gamemath.Vec2)
	ApplyImpulse(v gamemath.Vec2)
}

// TelegraphSink shows and hides the warning marker of an attack.
type TelegraphSink interface {
	ShowTelegraph(owner ActorID, at gamemath.Vec2, radius float64)
	HideTelegraph(owner ActorID)
}

// EffectSink receives fire-and-forget hit feedback.
type EffectSink interface {
	DamageNumber(at gamemath.Vec2, amount int, critical bool)
	// Blocked reports a strike stopped by blocker's shield.
	Blocked(blocker ActorID, at gamemath.Vec2)
	Missed(at gamemath.Vec2)
}

// Dice is the randomness source. *rand.Rand from math/rand/v2 satisfies it.
type Dice interface {
	Float64() float64
	IntN(n int) int
}

// Action names an activity that other activities may lock out.
type Action int

const (
	ActionAttack Action = iota
	ActionShield
	ActionRoll
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionShield:
		return "shield"
	case ActionRoll:
		return "roll"
	}
	return "unknown"
}

// ActionLock reports whether the owning actor may start an action.
type ActionLock interface {
	Locked(a Action) bool
}

// LockFunc adapts a function to ActionLock.
type LockFunc func(a Action) bool

func (f LockFunc) Locked(a Action) bool { return f(a) }

// Never is an ActionLock that never locks.
var Never ActionLock = LockFunc(func(Action) bool { return false })

type nopTelegraphs struct{}

func (nopTelegraphs) ShowTelegraph(ActorID, gamemath.Vec2, float64) {}
func (nopTelegraphs) HideTelegraph(ActorID)                         {}

type nopEffects struct{}

func (nopEffects) DamageNumber(gamemath.Vec2, int, bool) {}
func (nopEffects) Blocked(ActorID, gamemath.Vec2)        {}
func (nopEffects) Missed(gamemath.Vec2)                  {}

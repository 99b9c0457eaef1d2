package combat

import (
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// AIState is the enemy's current decision.
type AIState int

const (
	AIIdle AIState = iota
	AIChase
	AIAttack
	AIHold
	AIHurt
	AIDead
)

func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	case AIHold:
		return "hold"
	case AIHurt:
		return "hurt"
	case AIDead:
		return "dead"
	}
	return "unknown"
}

// EnemyCoordinator runs one enemy: perceive the target, decide between
// attacking, chasing and holding, and drive its swing.
type EnemyCoordinator struct {
	cfg    config.EnemyTypeConfig
	deps   Deps
	target ActorID

	vitals *Vitals
	attack *Sequencer

	state        AIState
	facing       gamemath.Vec2
	deathElapsed float64
	deathHandled bool
	frozen       bool
}

// NewEnemyCoordinator creates an enemy hunting target.
func NewEnemyCoordinator(cfg config.EnemyTypeConfig, target ActorID, deps Deps) *EnemyCoordinator {
	deps.defaults()
	c := &EnemyCoordinator{
		cfg:    cfg,
		deps:   deps,
		target: target,
		facing: gamemath.Down,
	}
	c.attack = NewSequencer(cfg.Attack, deps.sequencerDeps(LockFunc(c.locked)))
	c.vitals = NewVitals(cfg.Vitals, interruptOnHurt{onHurt: c.attack.ForceInterrupt})
	if deps.Listener != nil {
		c.vitals.AddListener(deps.Listener)
	}
	return c
}

func (c *EnemyCoordinator) locked(Action) bool {
	return c.vitals.Dead() || c.vitals.Hurting() || c.frozen
}

// SetFrozen holds the enemy in place and cancels its swing.
func (c *EnemyCoordinator) SetFrozen(frozen bool) {
	if c.frozen == frozen {
		return
	}
	c.frozen = frozen
	if frozen {
		c.attack.ForceInterrupt()
		c.deps.Body.SetVelocity(gamemath.Vec2{})
	}
}

func (c *EnemyCoordinator) ID() ActorID                    { return c.deps.ID }
func (c *EnemyCoordinator) Vitals() *Vitals                { return c.vitals }
func (c *EnemyCoordinator) Attack() *Sequencer             { return c.attack }
func (c *EnemyCoordinator) Shield() *Shield                { return nil }
func (c *EnemyCoordinator) Defense() float64               { return c.cfg.Defense }
func (c *EnemyCoordinator) Position() gamemath.Vec2        { return c.deps.Body.Position() }
func (c *EnemyCoordinator) State() AIState                 { return c.state }
func (c *EnemyCoordinator) Facing() gamemath.Vec2          { return c.facing }
func (c *EnemyCoordinator) Config() config.EnemyTypeConfig { return c.cfg }
func (c *EnemyCoordinator) Frozen() bool                   { return c.frozen }
func (c *EnemyCoordinator) Push(impulse gamemath.Vec2)     { c.deps.Body.ApplyImpulse(impulse) }

// Expired reports whether the death animation and corpse linger are over.
func (c *EnemyCoordinator) Expired() bool {
	return c.vitals.Dead() && c.deathElapsed+phaseEpsilon >= c.cfg.DeathAnimation+c.cfg.CorpseDuration
}

// CorpseAlpha is 1 until the death animation finishes, then fades to 0 over
// the corpse duration.
func (c *EnemyCoordinator) CorpseAlpha() float64 {
	if !c.vitals.Dead() || c.deathElapsed <= c.cfg.DeathAnimation {
		return 1
	}
	if c.cfg.CorpseDuration <= 0 {
		return 0
	}
	return gamemath.ClampFloat(1-(c.deathElapsed-c.cfg.DeathAnimation)/c.cfg.CorpseDuration, 0, 1)
}

// Tick advances the enemy by dt seconds.
func (c *EnemyCoordinator) Tick(dt float64) {
	if c.vitals.Dead() {
		if !c.deathHandled {
			c.attack.ForceInterrupt()
			c.deps.Body.SetVelocity(gamemath.Vec2{})
			writeDeath(c.deps.Animation, c.vitals)
			c.state = AIDead
			c.deathHandled = true
		}
		c.deathElapsed += dt
		return
	}

	c.vitals.Advance(dt)
	c.attack.Advance(dt)

	if c.frozen {
		c.deps.Body.SetVelocity(gamemath.Vec2{})
		c.state = AIHold
		c.writeAnimation()
		return
	}

	if c.vitals.Hurting() {
		c.attack.ForceInterrupt()
		c.deps.Body.SetVelocity(gamemath.Vec2{})
		c.state = AIHurt
		c.writeAnimation()
		return
	}

	if c.attack.Busy() {
		c.state = AIAttack
		c.deps.Body.SetVelocity(gamemath.Vec2{})
		if c.attack.DamageWindowActive() {
			c.attack.CheckDamageWindow(c.attack.Targets(c.deps.Space, TagPlayer))
		}
		c.writeAnimation()
		return
	}

	c.decide(dt)
	c.writeAnimation()
}

func (c *EnemyCoordinator) decide(dt float64) {
	pos := c.deps.Body.Position()
	mv := c.cfg.Movement
	hold := func(s AIState) {
		c.state = s
		c.deps.Body.SetVelocity(steer(c.deps.Body.Velocity(), gamemath.Vec2{}, mv.Acceleration, mv.Deceleration, dt))
	}

	target, ok := c.deps.Roster.Lookup(c.target)
	if !ok || target.Vitals() == nil || target.Vitals().Dead() {
		hold(AIIdle)
		return
	}

	toTarget := target.Position().Sub(pos)
	dist := toTarget.Magnitude()
	if !c.canSee(pos, target.Position(), dist) {
		hold(AIIdle)
		return
	}

	dir := gamemath.NormalizeOr(toTarget, c.facing)
	c.facing = dir

	p := c.cfg.Perception
	if dist <= p.AttackRange && c.attack.TryStart(dir) {
		c.state = AIAttack
		c.deps.Body.SetVelocity(gamemath.Vec2{})
		return
	}
	if dist > p.StoppingDistance {
		c.state = AIChase
		c.deps.Body.SetVelocity(steer(c.deps.Body.Velocity(), dir.MulScalar(mv.MoveSpeed), mv.Acceleration, mv.Deceleration, dt))
		return
	}
	hold(AIHold)
}

func (c *EnemyCoordinator) canSee(from, to gamemath.Vec2, dist float64) bool {
	if dist > c.cfg.Perception.DetectionRange {
		return false
	}
	return c.deps.Space == nil || !c.deps.Space.RaycastObstacle(from, to)
}

func (c *EnemyCoordinator) writeAnimation() {
	anim := c.deps.Animation
	writeMovement(anim, c.facing, c.deps.Body.Velocity())
	writeAttack(anim, c.attack)
	writeHurt(anim, c.vitals, false)
}

// Respawn restores the enemy at position.
func (c *EnemyCoordinator) Respawn(position gamemath.Vec2) {
	c.vitals.Respawn()
	c.attack.Reset()
	c.state = AIIdle
	c.facing = gamemath.Down
	c.deathElapsed = 0
	c.deathHandled = false
	c.frozen = false
	c.deps.Body.SetPosition(position)
	c.deps.Body.SetVelocity(gamemath.Vec2{})
	if p, ok := c.deps.Animation.(*AnimationParams); ok {
		p.Reset()
	}
}

package combat

import (
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// PlayerInput is one tick of player intent.
type PlayerInput struct {
	Move   gamemath.Vec2 // length <= 1
	Aim    gamemath.Vec2 // player to cursor; zero if unknown
	Attack bool          // pressed this tick
	Roll   bool          // pressed this tick
	Shield bool          // held
}

// PlayerCoordinator arbitrates the player's attack, shield, roll, hurt and
// death each tick in priority order: death, hurt, roll, attack, shield,
// movement.
type PlayerCoordinator struct {
	base config.PlayerConfig
	cfg  config.PlayerConfig
	deps Deps

	vitals   *Vitals
	attack   *Sequencer
	shield   *Shield
	roll     *Roll
	progress *Progression

	facing       gamemath.Vec2
	lastAttack   gamemath.Vec2
	shieldHeld   bool
	deathHandled bool
	frozen       bool
}

func NewPlayerCoordinator(cfg config.PlayerConfig, deps Deps) *PlayerCoordinator {
	deps.defaults()
	c := &PlayerCoordinator{
		base:     cfg,
		cfg:      cfg.Derived(),
		deps:     deps,
		facing:   gamemath.Down,
		progress: NewProgression(cfg.Progression, cfg.Stats),
	}

	lock := LockFunc(c.locked)
	c.attack = NewSequencer(c.cfg.Attack, deps.sequencerDeps(lock))
	c.shield = NewShield(c.cfg.Shield, lock)
	c.roll = NewRoll(c.cfg.Roll, lock)

	c.vitals = NewVitals(c.cfg.Vitals, interruptOnHurt{onHurt: c.interrupt})
	if deps.Listener != nil {
		c.vitals.AddListener(deps.Listener)
	}
	c.vitals.SetInvulnerability(c.roll.IsInvincible)
	return c
}

func (c *PlayerCoordinator) locked(a Action) bool {
	if c.vitals.Dead() || c.frozen {
		return true
	}
	switch a {
	case ActionAttack:
		return c.vitals.Hurting() || c.roll.Active() || c.shield.Engaged()
	case ActionShield:
		return c.vitals.Hurting() || c.attack.Busy() || c.roll.Active()
	case ActionRoll:
		return c.attack.Busy()
	}
	return false
}

func (c *PlayerCoordinator) interrupt() {
	c.attack.ForceInterrupt()
	c.shield.Lower()
}

func (c *PlayerCoordinator) ID() ActorID                 { return c.deps.ID }
func (c *PlayerCoordinator) Progression() *Progression   { return c.progress }
func (c *PlayerCoordinator) Frozen() bool                { return c.frozen }
func (c *PlayerCoordinator) Push(impulse gamemath.Vec2)  { c.deps.Body.ApplyImpulse(impulse) }
func (c *PlayerCoordinator) Vitals() *Vitals             { return c.vitals }
func (c *PlayerCoordinator) Attack() *Sequencer          { return c.attack }
func (c *PlayerCoordinator) Shield() *Shield             { return c.shield }
func (c *PlayerCoordinator) Roll() *Roll                 { return c.roll }
func (c *PlayerCoordinator) Defense() float64            { return c.cfg.Defense }
func (c *PlayerCoordinator) Position() gamemath.Vec2     { return c.deps.Body.Position() }
func (c *PlayerCoordinator) Facing() gamemath.Vec2       { return c.facing }
func (c *PlayerCoordinator) Config() config.PlayerConfig { return c.cfg }

// Tick advances the player by dt seconds.
func (c *PlayerCoordinator) Tick(dt float64, in PlayerInput) {
	if c.vitals.Dead() {
		if !c.deathHandled {
			c.interrupt()
			c.roll.End()
			c.deps.Body.SetVelocity(gamemath.Vec2{})
			writeDeath(c.deps.Animation, c.vitals)
			c.deathHandled = true
		}
		return
	}

	pressed := in.Shield && !c.shieldHeld
	c.shieldHeld = in.Shield
	if c.frozen {
		c.tickFrozen(dt)
		return
	}
	c.facing = gamemath.NormalizeOr(in.Move, c.facing)

	c.vitals.Advance(dt)
	c.attack.Advance(dt)

	if c.vitals.Hurting() {
		c.tickHurt(dt, in)
		c.writeAnimation()
		return
	}

	if in.Roll && c.roll.TryStart(c.rollHints(in)) {
		c.shield.Lower()
	}
	rollVelocity := c.roll.Advance(dt)
	if c.roll.Active() {
		c.deps.Body.SetVelocity(rollVelocity)
		c.shield.Update(dt, gamemath.Vec2{}, gamemath.Vec2{})
		c.writeAnimation()
		return
	}

	if in.Attack {
		dir := gamemath.NormalizeOr(in.Aim, c.facing)
		if c.attack.TryStart(dir) {
			c.lastAttack = dir
			c.facing = dir
		}
	}
	if c.attack.Busy() {
		c.deps.Body.SetVelocity(gamemath.Vec2{})
		if c.attack.DamageWindowActive() {
			c.attack.CheckDamageWindow(c.attack.Targets(c.deps.Space, TagEnemy))
		}
	}

	if !in.Shield {
		c.shield.Lower()
	} else if pressed {
		c.shield.TryRaise(in.Move, in.Aim)
	}
	c.shield.Update(dt, in.Move, in.Aim)

	if !c.attack.Busy() {
		target := gamemath.ClampMagnitude(in.Move, 1).MulScalar(c.cfg.Movement.MoveSpeed)
		if c.shield.Engaged() {
			target = target.MulScalar(c.cfg.Shield.MoveFactor)
		}
		mv := c.cfg.Movement
		c.deps.Body.SetVelocity(steer(c.deps.Body.Velocity(), target, mv.Acceleration, mv.Deceleration, dt))
	}

	c.writeAnimation()
}

// SetFrozen holds the player in place. Freezing cancels the swing, the
// shield and the roll.
func (c *PlayerCoordinator) SetFrozen(frozen bool) {
	if c.frozen == frozen {
		return
	}
	c.frozen = frozen
	if frozen {
		c.interrupt()
		c.roll.End()
		c.deps.Body.SetVelocity(gamemath.Vec2{})
	}
}

func (c *PlayerCoordinator) tickFrozen(dt float64) {
	c.vitals.Advance(dt)
	c.attack.Advance(dt)
	c.roll.Advance(dt)
	c.shield.Update(dt, gamemath.Vec2{}, gamemath.Vec2{})
	c.deps.Body.SetVelocity(gamemath.Vec2{})
	c.writeAnimation()
}

// GainExperience adds xp and returns the levels gained. Each level-up
// regrows the attributes, rederives the stats when attributes are enabled
// and fully restores health and mana.
func (c *PlayerCoordinator) GainExperience(xp int) int {
	levels := c.progress.AddExperience(xp)
	if levels == 0 {
		return 0
	}
	if c.base.Stats.Level > 0 {
		c.cfg = c.base.WithStats(c.progress.Stats())
		c.attack.SetConfig(c.cfg.Attack)
	}
	c.vitals.Restore(c.cfg.Vitals)
	c.deps.Logger.Info("level up", "actor", c.deps.ID, "level", c.progress.Level())
	return levels
}

// tickHurt keeps the actor still and lets a roll start or continue.
func (c *PlayerCoordinator) tickHurt(dt float64, in PlayerInput) {
	c.attack.ForceInterrupt()
	c.shield.Lower()
	c.shield.Update(dt, gamemath.Vec2{}, gamemath.Vec2{})

	if in.Roll {
		c.roll.TryStart(c.rollHints(in))
	}
	c.deps.Body.SetVelocity(c.roll.Advance(dt))
}

func (c *PlayerCoordinator) rollHints(in PlayerInput) RollHints {
	return RollHints{Move: in.Move, Aim: in.Aim, LastAttack: c.lastAttack}
}

func (c *PlayerCoordinator) writeAnimation() {
	anim := c.deps.Animation
	writeMovement(anim, c.facing, c.deps.Body.Velocity())
	writeAttack(anim, c.attack)
	writeHurt(anim, c.vitals, c.roll.Active())

	rd := c.roll.Direction()
	anim.SetBool(ParamIsRolling, c.roll.Active())
	anim.SetFloat(ParamRollX, rd.X)
	anim.SetFloat(ParamRollY, rd.Y)

	sf := c.shield.Facing()
	anim.SetBool(ParamIsShielding, c.shield.Engaged())
	anim.SetFloat(ParamShieldX, sf.X)
	anim.SetFloat(ParamShieldY, sf.Y)
}

// Respawn restores the player at position with full vitals and every
// sub-state cleared.
func (c *PlayerCoordinator) Respawn(position gamemath.Vec2) {
	c.vitals.Respawn()
	c.attack.Reset()
	c.shield.Reset()
	c.roll.Reset()
	c.deathHandled = false
	c.frozen = false
	c.shieldHeld = false
	c.facing = gamemath.Down
	c.lastAttack = gamemath.Vec2{}
	c.deps.Body.SetPosition(position)
	c.deps.Body.SetVelocity(gamemath.Vec2{})
	if p, ok := c.deps.Animation.(*AnimationParams); ok {
		p.Reset()
	}
	c.writeAnimation()
}

package combat

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// ShieldState is the raise/lower state of a shield.
type ShieldState int

const (
	ShieldLowered ShieldState = iota
	ShieldRaising
	ShieldRaised
)

func (s ShieldState) String() string {
	switch s {
	case ShieldLowered:
		return "lowered"
	case ShieldRaising:
		return "raising"
	case ShieldRaised:
		return "raised"
	}
	return "unknown"
}

// Shield is the player's directional block. Stamina drains while raised,
// regenerates otherwise, and running dry lowers the shield.
type Shield struct {
	cfg  config.ShieldConfig
	lock ActionLock

	state   ShieldState
	timer   float64 // time in the current state
	stamina float64
	reraise float64 // anti-spam delay remaining

	facing    gamemath.Vec2
	lastValid gamemath.Vec2
	goal      gamemath.Vec2
	tweenX    *gween.Tween
	tweenY    *gween.Tween
}

func NewShield(cfg config.ShieldConfig, lock ActionLock) *Shield {
	if lock == nil {
		lock = Never
	}
	return &Shield{
		cfg:       cfg,
		lock:      lock,
		stamina:   cfg.MaxStamina,
		facing:    gamemath.Down,
		lastValid: gamemath.Down,
		goal:      gamemath.Down,
	}
}

func (s *Shield) State() ShieldState          { return s.state }
func (s *Shield) Stamina() float64            { return s.stamina }
func (s *Shield) MaxStamina() float64         { return s.cfg.MaxStamina }
func (s *Shield) Facing() gamemath.Vec2       { return s.facing }
func (s *Shield) Raised() bool                { return s.state == ShieldRaised }
func (s *Shield) Engaged() bool               { return s.state != ShieldLowered }
func (s *Shield) Config() config.ShieldConfig { return s.cfg }

// HoldRemaining returns the time left before a hold limit lowers the
// shield, or -1 when holding is unlimited or the shield is not raised.
func (s *Shield) HoldRemaining() float64 {
	if s.state != ShieldRaised || s.cfg.HoldDuration <= 0 {
		return -1
	}
	return max(0, s.cfg.HoldDuration-s.timer)
}

// TryRaise starts raising the shield toward the direction chosen from move
// and aim. The facing snaps on raise; afterwards it only turns smoothly.
func (s *Shield) TryRaise(move, aim gamemath.Vec2) bool {
	if s.state != ShieldLowered {
		return false
	}
	if s.reraise > phaseEpsilon {
		return false
	}
	if s.stamina < s.cfg.MinStaminaToRaise || s.stamina <= 0 {
		return false
	}
	if s.lock.Locked(ActionShield) {
		return false
	}

	s.state = ShieldRaising
	s.timer = 0
	s.reraise = s.cfg.ReraiseDelay
	target := s.targetDirection(move, aim)
	s.facing = target
	s.goal = target
	s.tweenX, s.tweenY = nil, nil
	if s.cfg.RaiseDuration <= 0 {
		s.state = ShieldRaised
	}
	return true
}

// Lower drops the shield. Facing is kept for the next raise.
func (s *Shield) Lower() {
	if s.state == ShieldLowered {
		return
	}
	s.state = ShieldLowered
	s.timer = 0
	s.reraise = s.cfg.ReraiseDelay
	s.tweenX, s.tweenY = nil, nil
}

// Update advances timers, stamina and facing by dt.
func (s *Shield) Update(dt float64, move, aim gamemath.Vec2) {
	if s.reraise > 0 {
		s.reraise = max(0, s.reraise-dt)
	}

	switch s.state {
	case ShieldLowered:
		s.regen(dt)
		return
	case ShieldRaising:
		s.regen(dt)
		s.timer += dt
		if s.timer+phaseEpsilon >= s.cfg.RaiseDuration {
			s.state = ShieldRaised
			s.timer = 0
		}
	case ShieldRaised:
		s.timer += dt
		s.stamina = max(0, s.stamina-s.cfg.DrainPerSecond*dt)
		if s.stamina <= 0 {
			s.Lower()
			return
		}
		if s.cfg.HoldDuration > 0 {
			if s.timer+phaseEpsilon >= s.cfg.HoldDuration || move.Magnitude() > s.cfg.DeadZone {
				s.Lower()
				return
			}
		}
	}

	s.steer(dt, s.targetDirection(move, aim))
}

func (s *Shield) regen(dt float64) {
	s.stamina = min(s.cfg.MaxStamina, s.stamina+s.cfg.RegenPerSecond*dt)
}

// targetDirection prefers move input, then aim, then the last valid
// direction.
func (s *Shield) targetDirection(move, aim gamemath.Vec2) gamemath.Vec2 {
	switch {
	case move.Magnitude() > s.cfg.DeadZone:
		s.lastValid = move.Normalized()
	case aim.Magnitude() > s.cfg.DeadZone:
		s.lastValid = aim.Normalized()
	}
	return s.lastValid
}

func (s *Shield) steer(dt float64, target gamemath.Vec2) {
	if s.cfg.DirectionSmoothTime <= 0 {
		s.facing = target
		return
	}
	if s.tweenX == nil || target.Distance(s.goal) > 1e-3 {
		d := float32(s.cfg.DirectionSmoothTime)
		s.tweenX = gween.New(float32(s.facing.X), float32(target.X), d, ease.OutQuad)
		s.tweenY = gween.New(float32(s.facing.Y), float32(target.Y), d, ease.OutQuad)
		s.goal = target
	}
	x, _ := s.tweenX.Update(float32(dt))
	y, _ := s.tweenY.Update(float32(dt))
	s.facing = gamemath.NormalizeOr(gamemath.V(float64(x), float64(y)), s.goal)
}

// TakeStaminaDamage drains stamina from a blocked hit and lowers the
// shield when it runs dry.
func (s *Shield) TakeStaminaDamage(amount float64) {
	if s.state == ShieldLowered || amount <= 0 {
		return
	}
	s.stamina = max(0, s.stamina-amount)
	if s.stamina <= 0 {
		s.Lower()
	}
}

// IsAttackBlocked reports whether an attack travelling along
// attackerToVictim is stopped. Only a fully raised shield blocks.
func (s *Shield) IsAttackBlocked(attackerToVictim gamemath.Vec2) bool {
	return IsBlocked(s.state == ShieldRaised, s.facing, attackerToVictim)
}

// Reset lowers the shield and refills stamina.
func (s *Shield) Reset() {
	s.state = ShieldLowered
	s.timer = 0
	s.reraise = 0
	s.stamina = s.cfg.MaxStamina
	s.tweenX, s.tweenY = nil, nil
}

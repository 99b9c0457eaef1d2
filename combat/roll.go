package combat

import (
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// RollHints are the direction sources for a roll, in order of preference.
type RollHints struct {
	Move       gamemath.Vec2
	Aim        gamemath.Vec2
	LastAttack gamemath.Vec2
}

func (h RollHints) direction() gamemath.Vec2 {
	for _, v := range []gamemath.Vec2{h.Move, h.Aim, h.LastAttack} {
		if !v.IsZero() {
			return v
		}
	}
	return gamemath.Down
}

// Roll is the dodge roll. Invincibility covers the opening
// InvincibilityDuration of the roll; the cooldown starts when it ends.
type Roll struct {
	cfg  config.RollConfig
	lock ActionLock

	active    bool
	elapsed   float64
	direction gamemath.Vec2
	compass   gamemath.Compass
	cooldown  float64
}

func NewRoll(cfg config.RollConfig, lock ActionLock) *Roll {
	if lock == nil {
		lock = Never
	}
	return &Roll{cfg: cfg, lock: lock}
}

func (r *Roll) Active() bool               { return r.active }
func (r *Roll) Direction() gamemath.Vec2   { return r.direction }
func (r *Roll) Compass() gamemath.Compass  { return r.compass }
func (r *Roll) CooldownRemaining() float64 { return r.cooldown }
func (r *Roll) Elapsed() float64           { return r.elapsed }

// IsInvincible reports whether the roll currently rejects damage.
func (r *Roll) IsInvincible() bool {
	return r.active && r.elapsed < r.cfg.InvincibilityDuration
}

// TryStart begins a roll along the first non-zero hint, snapped to the
// compass.
func (r *Roll) TryStart(hints RollHints) bool {
	if r.active || r.cooldown > phaseEpsilon {
		return false
	}
	if r.lock.Locked(ActionRoll) {
		return false
	}
	r.direction, r.compass = gamemath.SnapToCompass(hints.direction())
	r.active = true
	r.elapsed = 0
	return true
}

// Advance returns the roll velocity for this tick, or zero when not
// rolling. The roll ends once its duration has elapsed.
func (r *Roll) Advance(dt float64) gamemath.Vec2 {
	if !r.active {
		r.cooldown = max(0, r.cooldown-dt)
		return gamemath.Vec2{}
	}
	if r.elapsed+phaseEpsilon >= r.cfg.Duration {
		r.End()
		return gamemath.Vec2{}
	}
	r.elapsed += dt
	return r.direction.MulScalar(r.cfg.Speed)
}

// End stops the roll and starts the cooldown. Calling it on a finished
// roll does nothing.
func (r *Roll) End() {
	if !r.active {
		return
	}
	r.active = false
	r.elapsed = 0
	r.direction = gamemath.Vec2{}
	r.cooldown = r.cfg.Cooldown
}

func (r *Roll) Reset() {
	r.active = false
	r.elapsed = 0
	r.direction = gamemath.Vec2{}
	r.cooldown = 0
}

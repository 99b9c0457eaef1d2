package combat

import (
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// VitalsListener observes hurt and death transitions.
type VitalsListener interface {
	HurtStarted(direction gamemath.Vec2)
	HurtEnded()
	Died(direction gamemath.Vec2, poseIndex int)
}

// DamageResult reports what TakeDamage did.
type DamageResult struct {
	Accepted bool
	Lethal   bool
}

// Vitals is the health and mana pool of one actor. Health stays within
// [0,max]; once dead, only Respawn brings it back.
type Vitals struct {
	cfg config.VitalsConfig

	health float64
	mana   float64

	dead          bool
	hurting       bool
	hurtRemaining float64
	lastHit       gamemath.Vec2

	godMode    bool
	regenTimer float64

	// invulnerable is consulted before any mutation.
	invulnerable func() bool
	listeners    []VitalsListener
}

func NewVitals(cfg config.VitalsConfig, listeners ...VitalsListener) *Vitals {
	v := &Vitals{cfg: cfg, listeners: listeners}
	v.Respawn()
	v.godMode = cfg.GodMode
	return v
}

// SetInvulnerability installs the guard consulted by TakeDamage.
func (v *Vitals) SetInvulnerability(guard func() bool) {
	v.invulnerable = guard
}

func (v *Vitals) AddListener(l VitalsListener) {
	v.listeners = append(v.listeners, l)
}

func (v *Vitals) Health() float64                 { return v.health }
func (v *Vitals) MaxHealth() float64              { return v.cfg.MaxHealth }
func (v *Vitals) Mana() float64                   { return v.mana }
func (v *Vitals) MaxMana() float64                { return v.cfg.MaxMana }
func (v *Vitals) Dead() bool                      { return v.dead }
func (v *Vitals) Hurting() bool                   { return v.hurting }
func (v *Vitals) LastHitDirection() gamemath.Vec2 { return v.lastHit }
func (v *Vitals) GodMode() bool                   { return v.godMode }

// HealthFraction returns health/max in [0,1].
func (v *Vitals) HealthFraction() float64 {
	if v.cfg.MaxHealth <= 0 {
		return 0
	}
	return v.health / v.cfg.MaxHealth
}

func (v *Vitals) SetGodMode(on bool) {
	v.godMode = on
	if on && !v.dead {
		v.health = v.cfg.MaxHealth
		v.mana = v.cfg.MaxMana
	}
}

// TakeDamage subtracts amount from health. The hit direction points from
// the attacker to the victim and falls back to Down when zero.
func (v *Vitals) TakeDamage(amount float64, hitDirection gamemath.Vec2) DamageResult {
	if amount <= 0 || v.dead || v.godMode {
		return DamageResult{}
	}
	if v.invulnerable != nil && v.invulnerable() {
		return DamageResult{}
	}

	v.lastHit = gamemath.NormalizeOr(hitDirection, gamemath.Down)
	v.health = gamemath.ClampFloat(v.health-amount, 0, v.cfg.MaxHealth)

	if v.health <= 0 {
		v.dead = true
		v.hurting = false
		v.hurtRemaining = 0
		pose := gamemath.CompassOf(v.lastHit).DeathIndex()
		for _, l := range v.listeners {
			l.Died(v.lastHit, pose)
		}
		return DamageResult{Accepted: true, Lethal: true}
	}

	v.hurting = true
	v.hurtRemaining = v.cfg.HurtStun
	for _, l := range v.listeners {
		l.HurtStarted(v.lastHit)
	}
	return DamageResult{Accepted: true}
}

func (v *Vitals) Heal(amount float64) {
	if v.dead || amount <= 0 {
		return
	}
	v.health = gamemath.ClampFloat(v.health+amount, 0, v.cfg.MaxHealth)
}

// UseMana spends amount if enough is available.
func (v *Vitals) UseMana(amount float64) bool {
	if v.dead || amount < 0 || v.mana < amount {
		return false
	}
	v.mana -= amount
	return true
}

func (v *Vitals) RestoreMana(amount float64) {
	if v.dead || amount <= 0 {
		return
	}
	v.mana = gamemath.ClampFloat(v.mana+amount, 0, v.cfg.MaxMana)
}

// Advance counts down the hurt window and runs the regen tick.
func (v *Vitals) Advance(dt float64) {
	if v.dead {
		return
	}

	if v.hurting {
		v.hurtRemaining -= dt
		if v.hurtRemaining <= phaseEpsilon {
			v.hurting = false
			v.hurtRemaining = 0
			for _, l := range v.listeners {
				l.HurtEnded()
			}
		}
	}

	if !v.cfg.Regenerate || v.cfg.RegenInterval <= 0 {
		return
	}
	v.regenTimer += dt
	for v.regenTimer+phaseEpsilon >= v.cfg.RegenInterval {
		v.regenTimer -= v.cfg.RegenInterval
		if v.godMode {
			v.health = v.cfg.MaxHealth
			v.mana = v.cfg.MaxMana
			continue
		}
		v.Heal(v.cfg.RegenAmount)
		v.RestoreMana(v.cfg.RegenAmount)
	}
}

// Restore installs new maximums and refills health and mana. A dead actor
// only takes the new maximums.
func (v *Vitals) Restore(cfg config.VitalsConfig) {
	godMode := v.godMode
	v.cfg = cfg
	v.godMode = godMode
	if v.dead {
		return
	}
	v.health = cfg.MaxHealth
	v.mana = cfg.MaxMana
}

// Respawn restores the initial state. God mode survives a respawn.
func (v *Vitals) Respawn() {
	v.health = v.cfg.MaxHealth
	v.mana = v.cfg.MaxMana
	v.dead = false
	v.hurting = false
	v.hurtRemaining = 0
	v.lastHit = gamemath.Down
	v.regenTimer = 0
}

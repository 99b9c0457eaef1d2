package combat

import (
	"math"

	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

const (
	MinHitChance = 5.0
	MaxHitChance = 95.0

	// blockHalfAngle is the widest angle between shield facing and the
	// incoming attack that still blocks.
	blockHalfAngle = 90.0
)

// HitChance returns the percentage chance that an attack lands, clamped to
// [MinHitChance, MaxHitChance].
func HitChance(attackRating, targetDefense float64) float64 {
	total := attackRating + targetDefense
	if total <= 0 || math.IsNaN(total) {
		return MinHitChance
	}
	if math.IsInf(attackRating, 1) && !math.IsInf(targetDefense, 1) {
		return MaxHitChance
	}
	// Inf/Inf
	ratio := attackRating / total
	if math.IsNaN(ratio) {
		return MinHitChance
	}
	return gamemath.ClampFloat(ratio*100, MinHitChance, MaxHitChance)
}

func RollHitChance(d Dice, attackRating, targetDefense float64) bool {
	return d.Float64()*100 < HitChance(attackRating, targetDefense)
}

// RollDamage returns a uniform integer in [lo,hi].
func RollDamage(d Dice, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + d.IntN(hi-lo+1)
}

func RollCritical(d Dice, chance float64) bool {
	return d.Float64() < chance
}

// IsBlocked reports whether a shield facing shieldFacing stops an attack
// travelling along attackerToVictim. The shield has to face the attacker.
func IsBlocked(shieldActive bool, shieldFacing, attackerToVictim gamemath.Vec2) bool {
	if !shieldActive {
		return false
	}
	return gamemath.AngleBetween(shieldFacing, attackerToVictim.MulScalar(-1)) < blockHalfAngle
}

// Strike is the outcome of one resolved attack against one target.
type Strike struct {
	Hit      bool
	Critical bool
	Blocked  bool
	// Damage is the health damage to apply; zero on a miss or block.
	Damage        int
	StaminaDamage float64
	Pushback      float64
}

// ResolveStrike rolls hit, damage and critical for attack against a target
// with the given defense. A blocked strike deals no health damage and
// reports the stamina damage and attacker pushback instead.
func ResolveStrike(d Dice, attack config.AttackConfig, defense float64, blocked bool) Strike {
	if !RollHitChance(d, attack.AttackRating, defense) {
		return Strike{}
	}

	s := Strike{Hit: true}
	dmg := RollDamage(d, attack.MinDamage, attack.MaxDamage)
	if RollCritical(d, attack.CriticalChance) {
		s.Critical = true
		dmg = int(math.Round(float64(dmg) * attack.CriticalMultiplier))
	}

	if blocked {
		s.Blocked = true
		s.StaminaDamage = attack.StaminaDamage
		s.Pushback = attack.BlockPushback
		return s
	}
	s.Damage = dmg
	return s
}

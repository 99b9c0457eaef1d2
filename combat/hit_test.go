package combat

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/shieldbearer/gamemath"
)

func TestHitChanceClamped(t *testing.T) {
	tests := []struct {
		name        string
		rating, def float64
		want        float64
	}{
		{"zero rating", 0, 50, 5},
		{"huge defense", 10, 1e12, 5},
		{"infinite defense", 10, math.Inf(1), 5},
		{"both infinite", math.Inf(1), math.Inf(1), 5},
		{"infinite rating", math.Inf(1), 10, 95},
		{"zero defense", 100, 0, 95},
		{"both zero", 0, 0, 5},
		{"even", 100, 100, 50},
		{"three to one", 75, 25, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HitChance(tt.rating, tt.def), 1e-9)
		})
	}
}

func TestRollHitChanceNeverCertain(t *testing.T) {
	// A draw of 0 still lands against the 5% floor; a draw of 0.96 misses
	// against the 95% ceiling.
	assert.True(t, RollHitChance(&scriptedDice{floats: []float64{0}}, 0, 1000))
	assert.False(t, RollHitChance(&scriptedDice{floats: []float64{0.05}}, 0, 1000))
	assert.False(t, RollHitChance(&scriptedDice{floats: []float64{0.96}}, 100, 0))
	assert.True(t, RollHitChance(&scriptedDice{floats: []float64{0.94}}, 100, 0))
}

func TestRollDamageInclusive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[int]bool{}
	for range 500 {
		d := RollDamage(r, 3, 6)
		assert.GreaterOrEqual(t, d, 3)
		assert.LessOrEqual(t, d, 6)
		seen[d] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 7, RollDamage(r, 7, 7))
	assert.Equal(t, 2, RollDamage(&scriptedDice{ints: []int{0}}, 9, 2), "inverted range is swapped")
}

func TestRollCritical(t *testing.T) {
	assert.True(t, RollCritical(&scriptedDice{floats: []float64{0.09}}, 0.1))
	assert.False(t, RollCritical(&scriptedDice{floats: []float64{0.1}}, 0.1))
	assert.False(t, RollCritical(&scriptedDice{floats: []float64{0}}, 0))
}

func TestIsBlocked(t *testing.T) {
	up := gamemath.V(0, 1)
	assert.True(t, IsBlocked(true, up, gamemath.V(0, -1)), "attack from above into a shield facing up")
	assert.False(t, IsBlocked(true, up, gamemath.V(0, 1)), "attack from below hits the back")
	assert.False(t, IsBlocked(false, up, gamemath.V(0, -1)), "lowered shield never blocks")
	assert.True(t, IsBlocked(true, up, gamemath.V(0.7, -0.7)))
	assert.False(t, IsBlocked(true, up, gamemath.V(1, 0)), "exactly 90 degrees is not blocked")
}

func TestResolveStrike(t *testing.T) {
	atk := testAttack()
	atk.MinDamage, atk.MaxDamage = 10, 20

	t.Run("miss", func(t *testing.T) {
		s := ResolveStrike(&scriptedDice{floats: []float64{0.99}}, atk, 0, false)
		assert.False(t, s.Hit)
		assert.Zero(t, s.Damage)
	})
	t.Run("hit", func(t *testing.T) {
		s := ResolveStrike(&scriptedDice{floats: []float64{0, 0.5}, ints: []int{4}}, atk, 0, false)
		assert.True(t, s.Hit)
		assert.False(t, s.Critical)
		assert.Equal(t, 14, s.Damage)
	})
	t.Run("critical", func(t *testing.T) {
		s := ResolveStrike(&scriptedDice{floats: []float64{0, 0.01}, ints: []int{4}}, atk, 0, false)
		assert.True(t, s.Critical)
		assert.Equal(t, 28, s.Damage)
	})
	t.Run("blocked", func(t *testing.T) {
		s := ResolveStrike(&scriptedDice{floats: []float64{0, 0.5}}, atk, 0, true)
		assert.True(t, s.Hit)
		assert.True(t, s.Blocked)
		assert.Zero(t, s.Damage)
		assert.Equal(t, atk.StaminaDamage, s.StaminaDamage)
		assert.Equal(t, atk.BlockPushback, s.Pushback)
	})
}

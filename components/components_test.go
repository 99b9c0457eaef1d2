package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/spatial"
)

type stubCombatant struct {
	id  combat.ActorID
	pos gamemath.Vec2
}

func (s *stubCombatant) ID() combat.ActorID      { return s.id }
func (s *stubCombatant) Vitals() *combat.Vitals  { return nil }
func (s *stubCombatant) Defense() float64        { return 0 }
func (s *stubCombatant) Shield() *combat.Shield  { return nil }
func (s *stubCombatant) Position() gamemath.Vec2 { return s.pos }

func newBody(pos gamemath.Vec2) *Body {
	space := spatial.New(320, 320, 16, 4, 2)
	actor := space.AddActor(1, combat.TagPlayer, pos, 8)
	return NewBody(space, actor)
}

func TestBodyStepCombinesVelocityAndImpulse(t *testing.T) {
	b := newBody(gamemath.V(100, 100))
	b.SetVelocity(gamemath.V(10, 0))
	b.ApplyImpulse(gamemath.V(0, 100))

	moved := b.Step(0.5, 40)
	assert.InDelta(t, 5, moved.X, 1e-9)
	assert.InDelta(t, 50, moved.Y, 1e-9)
	assert.InDelta(t, 105, b.Position().X, 1e-9)
	assert.InDelta(t, 150, b.Position().Y, 1e-9)

	// 100 - 40*0.5
	assert.InDelta(t, 80, b.Impulse().Magnitude(), 1e-9)
}

func TestBodyImpulseDecaysToZero(t *testing.T) {
	b := newBody(gamemath.V(100, 100))
	b.ApplyImpulse(gamemath.V(30, 0))
	b.ApplyImpulse(gamemath.V(30, 0))
	assert.Equal(t, gamemath.V(60, 0), b.Impulse())

	for range 10 {
		b.Step(0.1, 640)
	}
	assert.Equal(t, gamemath.Vec2{}, b.Impulse())
}

func TestBodySetPositionClearsImpulse(t *testing.T) {
	b := newBody(gamemath.V(100, 100))
	b.ApplyImpulse(gamemath.V(50, 50))
	b.SetPosition(gamemath.V(40, 60))

	assert.Equal(t, gamemath.V(40, 60), b.Position())
	assert.Equal(t, gamemath.Vec2{}, b.Impulse())
	assert.Equal(t, combat.ActorID(1), b.Actor().ID)
}

func TestRoster(t *testing.T) {
	r := NewRoster()
	a := r.NextID()
	b := r.NextID()
	assert.Equal(t, combat.ActorID(1), a)
	assert.Equal(t, combat.ActorID(2), b)

	world := donburi.NewWorld()
	ea := world.Create()
	eb := world.Create()
	r.Add(&stubCombatant{id: a}, ea)
	r.Add(&stubCombatant{id: b}, eb)
	assert.Equal(t, 2, r.Len())

	c, ok := r.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, b, c.ID())
	e, ok := r.Entity(a)
	require.True(t, ok)
	assert.Equal(t, ea, e)

	r.Remove(a)
	_, ok = r.Lookup(a)
	assert.False(t, ok)
	_, ok = r.Entity(a)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	// IDs are never reused
	assert.Equal(t, combat.ActorID(3), r.NextID())
}

func TestSettingsVolume(t *testing.T) {
	s := SettingsData{SFXVolume: 0.7}
	assert.Equal(t, 0.7, s.Volume())
	s.Muted = true
	assert.Zero(t, s.Volume())
}

func TestScoreAddKill(t *testing.T) {
	var s ScoreData
	s.AddKill("grunt")
	s.AddKill("grunt")
	s.AddKill("brute")
	assert.Equal(t, 3, s.Kills)
	assert.Equal(t, map[string]int{"grunt": 2, "brute": 1}, s.KillsByType)
}

func TestAnimationPoseLatchesDeathDirection(t *testing.T) {
	a := AnimationData{Params: combat.NewAnimationParams(), DeathPose: -1}
	assert.Equal(t, -1, a.Pose())

	a.Params.SetInt(combat.ParamDeathDirection, 5)
	a.Params.Trigger(combat.ParamDeath)
	assert.Equal(t, 5, a.Pose())

	// later writes do not move the corpse
	a.Params.SetInt(combat.ParamDeathDirection, 2)
	assert.Equal(t, 5, a.Pose())

	a.Params.SetFloat(combat.ParamSpeed, 1.5)
	a.Params.SetBool(combat.ParamIsRolling, true)
	assert.Equal(t, 1.5, a.Float(combat.ParamSpeed))
	assert.True(t, a.Bool(combat.ParamIsRolling))
}

func TestInputAction(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionAttack] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionAttack))

	in.Previous = in.Current
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionAttack))

	in.Current[cfg.ActionAttack] = false
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionAttack))
}

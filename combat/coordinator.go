package combat

import (
	"log/slog"

	"github.com/automoto/shieldbearer/gamemath"
)

// Deps are the collaborators handed to a coordinator at construction.
// Body, Space, Roster and Dice are required; the rest default to no-ops.
type Deps struct {
	ID         ActorID
	Body       Body
	Space      SpatialQuery
	Roster     Roster
	Animation  AnimationSink
	Telegraphs TelegraphSink
	Effects    EffectSink
	Dice       Dice
	// Listener additionally receives the actor's hurt and death events.
	Listener VitalsListener
	Logger   *slog.Logger
}

func (d *Deps) defaults() {
	if d.Animation == nil {
		d.Animation = NewAnimationParams()
	}
	if d.Telegraphs == nil {
		d.Telegraphs = nopTelegraphs{}
	}
	if d.Effects == nil {
		d.Effects = nopEffects{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
}

func (d Deps) sequencerDeps(lock ActionLock) SequencerDeps {
	return SequencerDeps{
		Owner:      d.ID,
		Body:       d.Body,
		Lock:       lock,
		Roster:     d.Roster,
		Telegraphs: d.Telegraphs,
		Effects:    d.Effects,
		Dice:       d.Dice,
		Logger:     d.Logger.With("actor", d.ID),
	}
}

// interruptOnHurt cancels the owner's swing the moment its vitals report
// hurt or death, whichever actor's tick applied the damage.
type interruptOnHurt struct {
	onHurt func()
}

func (l interruptOnHurt) HurtStarted(gamemath.Vec2) { l.onHurt() }
func (l interruptOnHurt) HurtEnded()                {}
func (l interruptOnHurt) Died(gamemath.Vec2, int)   { l.onHurt() }

// steer accelerates velocity toward target, using decel when slowing.
func steer(velocity, target gamemath.Vec2, accel, decel, dt float64) gamemath.Vec2 {
	rate := accel
	if target.Magnitude() < velocity.Magnitude() {
		rate = decel
	}
	return gamemath.ApproachVec(velocity, target, rate*dt)
}

func writeDeath(anim AnimationSink, v *Vitals) {
	anim.SetBool(ParamIsAttacking, false)
	anim.SetBool(ParamIsHurting, false)
	anim.SetBool(ParamIsRolling, false)
	anim.SetBool(ParamIsShielding, false)
	anim.SetFloat(ParamSpeed, 0)
	anim.SetInt(ParamDeathDirection, gamemath.CompassOf(v.LastHitDirection()).DeathIndex())
	anim.Trigger(ParamDeath)
}

func writeMovement(anim AnimationSink, facing, velocity gamemath.Vec2) {
	anim.SetFloat(ParamHorizontal, facing.X)
	anim.SetFloat(ParamVertical, facing.Y)
	anim.SetFloat(ParamSpeed, velocity.Magnitude())
}

func writeAttack(anim AnimationSink, s *Sequencer) {
	anim.SetBool(ParamIsAttacking, s.Busy())
	d := s.Direction()
	anim.SetFloat(ParamAttackX, d.X)
	anim.SetFloat(ParamAttackY, d.Y)
}

func writeHurt(anim AnimationSink, v *Vitals, suppressed bool) {
	anim.SetBool(ParamIsHurting, v.Hurting() && !suppressed)
	d := v.LastHitDirection()
	anim.SetFloat(ParamHurtX, d.X)
	anim.SetFloat(ParamHurtY, d.Y)
}

package combat

import (
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

const tick = 1.0 / 60

type fakeBody struct {
	pos     gamemath.Vec2
	vel     gamemath.Vec2
	impulse gamemath.Vec2
}

func (b *fakeBody) Position() gamemath.Vec2      { return b.pos }
func (b *fakeBody) SetPosition(p gamemath.Vec2)  { b.pos = p }
func (b *fakeBody) Velocity() gamemath.Vec2      { return b.vel }
func (b *fakeBody) SetVelocity(v gamemath.Vec2)  { b.vel = v }
func (b *fakeBody) ApplyImpulse(v gamemath.Vec2) { b.impulse = b.impulse.Add(v) }

// scriptedDice cycles through floats and ints in order.
type scriptedDice struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (d *scriptedDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0
	}
	f := d.floats[d.fi%len(d.floats)]
	d.fi++
	return f
}

func (d *scriptedDice) IntN(n int) int {
	if len(d.ints) == 0 {
		return 0
	}
	i := d.ints[d.ii%len(d.ints)]
	d.ii++
	return min(i, n-1)
}

// alwaysHit lands every roll without a critical.
func alwaysHit() *scriptedDice { return &scriptedDice{floats: []float64{0, 0.99}} }

type fakeCombatant struct {
	id      ActorID
	vitals  *Vitals
	shield  *Shield
	pos     gamemath.Vec2
	defense float64
	pushed  gamemath.Vec2
}

func (f *fakeCombatant) ID() ActorID             { return f.id }
func (f *fakeCombatant) Vitals() *Vitals         { return f.vitals }
func (f *fakeCombatant) Defense() float64        { return f.defense }
func (f *fakeCombatant) Shield() *Shield         { return f.shield }
func (f *fakeCombatant) Position() gamemath.Vec2 { return f.pos }
func (f *fakeCombatant) Push(v gamemath.Vec2)    { f.pushed = f.pushed.Add(v) }

type fakeRoster map[ActorID]Combatant

func (r fakeRoster) Lookup(id ActorID) (Combatant, bool) {
	c, ok := r[id]
	return c, ok
}

// fakeSpace returns every registered ref inside the queried circle and
// treats nothing as an obstacle unless blocked is set.
type fakeSpace struct {
	refs    []func() TargetRef
	blocked bool
}

func (s *fakeSpace) add(id ActorID, tag Tag, pos func() gamemath.Vec2) {
	s.refs = append(s.refs, func() TargetRef { return TargetRef{ID: id, Position: pos(), Tag: tag} })
}

func (s *fakeSpace) QueryCircle(center gamemath.Vec2, radius float64, tag Tag) []TargetRef {
	var out []TargetRef
	for _, f := range s.refs {
		r := f()
		if r.Tag == tag && r.Position.Distance(center) <= radius {
			out = append(out, r)
		}
	}
	return out
}

func (s *fakeSpace) QueryCone(origin, dir gamemath.Vec2, radius, halfAngle float64, tag Tag) []TargetRef {
	var out []TargetRef
	for _, r := range s.QueryCircle(origin, radius, tag) {
		if gamemath.AngleBetween(dir, r.Position.Sub(origin)) <= halfAngle {
			out = append(out, r)
		}
	}
	return out
}

func (s *fakeSpace) RaycastObstacle(from, to gamemath.Vec2) bool { return s.blocked }

type telegraphCall struct {
	owner  ActorID
	at     gamemath.Vec2
	radius float64
}

type fakeTelegraphs struct {
	shown   []telegraphCall
	hidden  []ActorID
	visible map[ActorID]bool
}

func newFakeTelegraphs() *fakeTelegraphs {
	return &fakeTelegraphs{visible: make(map[ActorID]bool)}
}

func (t *fakeTelegraphs) ShowTelegraph(owner ActorID, at gamemath.Vec2, radius float64) {
	t.shown = append(t.shown, telegraphCall{owner, at, radius})
	t.visible[owner] = true
}

func (t *fakeTelegraphs) HideTelegraph(owner ActorID) {
	t.hidden = append(t.hidden, owner)
	delete(t.visible, owner)
}

type damageNumber struct {
	at       gamemath.Vec2
	amount   int
	critical bool
}

type fakeEffects struct {
	numbers  []damageNumber
	blocked  int
	blockers []ActorID
	missed   int
}

func (e *fakeEffects) DamageNumber(at gamemath.Vec2, amount int, critical bool) {
	e.numbers = append(e.numbers, damageNumber{at, amount, critical})
}
func (e *fakeEffects) Blocked(id ActorID, _ gamemath.Vec2) {
	e.blocked++
	e.blockers = append(e.blockers, id)
}
func (e *fakeEffects) Missed(gamemath.Vec2) { e.missed++ }

type recordingListener struct {
	hurtStarted int
	hurtEnded   int
	died        int
	lastDir     gamemath.Vec2
	pose        int
}

func (l *recordingListener) HurtStarted(d gamemath.Vec2) { l.hurtStarted++; l.lastDir = d }
func (l *recordingListener) HurtEnded()                  { l.hurtEnded++ }
func (l *recordingListener) Died(d gamemath.Vec2, pose int) {
	l.died++
	l.lastDir = d
	l.pose = pose
}

func testVitalsConfig() config.VitalsConfig {
	return config.VitalsConfig{MaxHealth: 100, MaxMana: 50, HurtStun: 0.4}
}

// testAttack is the reference swing: 0.3 + 0.6 + 0.2 + 0.5 with a two
// second cooldown.
func testAttack() config.AttackConfig {
	return config.AttackConfig{
		Windup:             0.3,
		Telegraph:          0.6,
		DamageWindow:       0.2,
		Recovery:           0.5,
		Cooldown:           2.0,
		MinDamage:          25,
		MaxDamage:          25,
		AttackRating:       100,
		CriticalChance:     0.1,
		CriticalMultiplier: 2,
		TelegraphDistance:  20,
		HitRadius:          16,
		MaxTargets:         1,
		Blockable:          true,
		StaminaDamage:      15,
		BlockPushback:      30,
	}
}

func advance(n int, step func()) {
	for range n {
		step()
	}
}

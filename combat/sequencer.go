package combat

import (
	"log/slog"

	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// Phase is a stage of a melee swing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWindup
	PhaseTelegraph
	PhaseDamaging
	PhaseRecovery
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWindup:
		return "windup"
	case PhaseTelegraph:
		return "telegraph"
	case PhaseDamaging:
		return "damaging"
	case PhaseRecovery:
		return "recovery"
	}
	return "unknown"
}

// SequencerDeps are the collaborators of a Sequencer. Only Body and Dice
// are required.
type SequencerDeps struct {
	Owner      ActorID
	Body       Body
	Lock       ActionLock
	Roster     Roster
	Telegraphs TelegraphSink
	Effects    EffectSink
	Dice       Dice
	Logger     *slog.Logger
}

// Sequencer drives one actor's melee swing through its timed phases and
// applies damage to targets found during the damage window.
type Sequencer struct {
	cfg  config.AttackConfig
	deps SequencerDeps

	phase     Phase
	elapsed   float64
	direction gamemath.Vec2

	// clock is total simulated time; cooldown is measured against the
	// clock value at the last successful TryStart.
	clock     float64
	lastStart float64
	started   bool

	alreadyHit    map[ActorID]struct{}
	hits          int
	windowActive  bool
	markerVisible bool
	marker        gamemath.Vec2
}

func NewSequencer(cfg config.AttackConfig, deps SequencerDeps) *Sequencer {
	if deps.Lock == nil {
		deps.Lock = Never
	}
	if deps.Telegraphs == nil {
		deps.Telegraphs = nopTelegraphs{}
	}
	if deps.Effects == nil {
		deps.Effects = nopEffects{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Sequencer{
		cfg:        cfg,
		deps:       deps,
		direction:  gamemath.Down,
		alreadyHit: make(map[ActorID]struct{}),
	}
}

func (s *Sequencer) Phase() Phase                { return s.phase }
func (s *Sequencer) Direction() gamemath.Vec2    { return s.direction }
func (s *Sequencer) DamageWindowActive() bool    { return s.windowActive }
func (s *Sequencer) Busy() bool                  { return s.phase != PhaseIdle }
func (s *Sequencer) HitCount() int               { return len(s.alreadyHit) }
func (s *Sequencer) Config() config.AttackConfig { return s.cfg }

// SetConfig replaces the swing values. A swing in progress keeps its phase
// and elapsed time.
func (s *Sequencer) SetConfig(cfg config.AttackConfig) { s.cfg = cfg }

// Telegraph returns the marker position and whether it is shown.
func (s *Sequencer) Telegraph() (gamemath.Vec2, bool) {
	return s.marker, s.markerVisible
}

// CooldownRemaining returns the seconds until TryStart may succeed again.
func (s *Sequencer) CooldownRemaining() float64 {
	if !s.started {
		return 0
	}
	return max(0, s.cfg.Cooldown-(s.clock-s.lastStart))
}

// TryStart begins a swing toward direction. It fails while a swing is in
// progress, while the owner is locked, or inside the cooldown that began at
// the previous successful start.
func (s *Sequencer) TryStart(direction gamemath.Vec2) bool {
	if s.phase != PhaseIdle {
		return false
	}
	if s.deps.Lock.Locked(ActionAttack) {
		return false
	}
	if s.started && s.clock-s.lastStart < s.cfg.Cooldown-phaseEpsilon {
		return false
	}

	s.direction = gamemath.NormalizeOr(direction, gamemath.Down)
	clear(s.alreadyHit)
	s.hits = 0
	s.started = true
	s.lastStart = s.clock
	s.elapsed = 0
	s.phase = PhaseWindup
	return true
}

func (s *Sequencer) duration(p Phase) float64 {
	switch p {
	case PhaseWindup:
		return s.cfg.Windup
	case PhaseTelegraph:
		return s.cfg.Telegraph
	case PhaseDamaging:
		return s.cfg.DamageWindow
	case PhaseRecovery:
		return s.cfg.Recovery
	}
	return 0
}

// Advance moves the clock forward by dt, crossing as many phase boundaries
// as dt covers.
func (s *Sequencer) Advance(dt float64) {
	s.clock += dt
	if s.phase == PhaseIdle {
		return
	}

	s.elapsed += dt
	for s.phase != PhaseIdle {
		d := s.duration(s.phase)
		if s.elapsed+phaseEpsilon < d {
			return
		}
		s.elapsed -= d
		s.enter(s.phase + 1)
	}
	s.elapsed = 0
}

func (s *Sequencer) enter(next Phase) {
	switch next {
	case PhaseTelegraph:
		s.marker = s.deps.Body.Position().Add(s.direction.MulScalar(s.cfg.TelegraphDistance))
		s.markerVisible = true
		s.deps.Telegraphs.ShowTelegraph(s.deps.Owner, s.marker, s.cfg.HitRadius)
	case PhaseDamaging:
		s.windowActive = true
	case PhaseRecovery:
		s.closeWindow()
	case PhaseRecovery + 1:
		next = PhaseIdle
		clear(s.alreadyHit)
	}
	s.phase = next
}

func (s *Sequencer) closeWindow() {
	s.windowActive = false
	if s.markerVisible {
		s.markerVisible = false
		s.deps.Telegraphs.HideTelegraph(s.deps.Owner)
	}
}

// Targets queries space for candidates inside the swing's hit area: a cone
// from the owner when ConeHalfAngle is set, otherwise a circle around the
// telegraph marker.
func (s *Sequencer) Targets(space SpatialQuery, tag Tag) []TargetRef {
	if s.phase != PhaseDamaging || space == nil {
		return nil
	}
	if s.cfg.ConeHalfAngle > 0 {
		return space.QueryCone(s.deps.Body.Position(), s.direction, s.cfg.HitRadius, s.cfg.ConeHalfAngle, tag)
	}
	return space.QueryCircle(s.marker, s.cfg.HitRadius, tag)
}

// CheckDamageWindow resolves the swing against targets. A target that was
// struck or blocked is not resolved again this swing; a missed target is
// rolled again on the next check. MaxTargets counts struck and blocked
// targets only. Targets missing from the roster are skipped. It does
// nothing outside the damage window.
func (s *Sequencer) CheckDamageWindow(targets []TargetRef) {
	if s.phase != PhaseDamaging || s.deps.Roster == nil {
		return
	}

	for _, t := range targets {
		if t.ID == s.deps.Owner {
			continue
		}
		if _, hit := s.alreadyHit[t.ID]; hit {
			continue
		}
		if s.cfg.MaxTargets > 0 && len(s.alreadyHit) >= s.cfg.MaxTargets {
			return
		}

		target, ok := s.deps.Roster.Lookup(t.ID)
		if !ok || target == nil || target.Vitals() == nil {
			s.deps.Logger.Debug("skipping unknown target", "owner", s.deps.Owner, "target", t.ID)
			continue
		}
		if target.Vitals().Dead() {
			continue
		}

		if s.strike(target) {
			s.alreadyHit[t.ID] = struct{}{}
		}
	}
}

// strike rolls one attack against target and reports whether it connected.
func (s *Sequencer) strike(target Combatant) bool {
	origin := s.deps.Body.Position()
	at := target.Position()
	attackDir := gamemath.NormalizeOr(at.Sub(origin), s.direction)

	blocked := false
	if sh := target.Shield(); sh != nil && s.cfg.Blockable {
		blocked = sh.IsAttackBlocked(attackDir)
	}

	strike := ResolveStrike(s.deps.Dice, s.cfg, target.Defense(), blocked)
	switch {
	case !strike.Hit:
		s.deps.Effects.Missed(at)
		return false
	case strike.Blocked:
		target.Shield().TakeStaminaDamage(strike.StaminaDamage)
		if strike.Pushback > 0 {
			s.deps.Body.ApplyImpulse(attackDir.MulScalar(-strike.Pushback))
		}
		s.deps.Effects.Blocked(target.ID(), at)
	default:
		res := target.Vitals().TakeDamage(float64(strike.Damage), attackDir)
		if res.Accepted {
			s.hits++
			if p, ok := target.(Pushable); ok && s.cfg.Knockback > 0 {
				p.Push(attackDir.MulScalar(s.cfg.Knockback))
			}
			s.deps.Effects.DamageNumber(at, strike.Damage, strike.Critical)
		}
	}
	return true
}

// Landed returns how many strikes of the current swing damaged health.
func (s *Sequencer) Landed() int { return s.hits }

// ForceInterrupt returns to Idle and removes any marker or open window.
// The cooldown clock is not touched.
func (s *Sequencer) ForceInterrupt() {
	s.closeWindow()
	s.phase = PhaseIdle
	s.elapsed = 0
	clear(s.alreadyHit)
}

// Reset is ForceInterrupt plus a cleared cooldown.
func (s *Sequencer) Reset() {
	s.ForceInterrupt()
	s.started = false
	s.hits = 0
	s.direction = gamemath.Down
}

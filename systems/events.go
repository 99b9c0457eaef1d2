package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/gamemath"
)

// Coordinators report through these events instead of touching the world
// directly: they run inside component iteration, and the handlers create and
// remove entities.

type HurtEvent struct {
	Actor     combat.ActorID
	Tag       combat.Tag
	Direction gamemath.Vec2
}

type DeathEvent struct {
	Actor     combat.ActorID
	Tag       combat.Tag
	Direction gamemath.Vec2
	Pose      int
}

// StrikeKind is the outcome shown for one resolved strike.
type StrikeKind int

const (
	StrikeHit StrikeKind = iota
	StrikeCritical
	StrikeBlocked
	StrikeMissed
)

// StrikeEvent is one resolved strike. Blocker is set for StrikeBlocked only.
type StrikeEvent struct {
	At      gamemath.Vec2
	Amount  int
	Kind    StrikeKind
	Blocker combat.ActorID
}

type TelegraphEvent struct {
	Owner   combat.ActorID
	At      gamemath.Vec2
	Radius  float64
	Visible bool
}

var (
	HurtEvents      = events.NewEventType[HurtEvent]()
	DeathEvents     = events.NewEventType[DeathEvent]()
	StrikeEvents    = events.NewEventType[StrikeEvent]()
	TelegraphEvents = events.NewEventType[TelegraphEvent]()
)

// eventSink publishes telegraph and strike feedback.
type eventSink struct {
	world donburi.World
}

func (s eventSink) ShowTelegraph(owner combat.ActorID, at gamemath.Vec2, radius float64) {
	TelegraphEvents.Publish(s.world, TelegraphEvent{Owner: owner, At: at, Radius: radius, Visible: true})
}

func (s eventSink) HideTelegraph(owner combat.ActorID) {
	TelegraphEvents.Publish(s.world, TelegraphEvent{Owner: owner})
}

func (s eventSink) DamageNumber(at gamemath.Vec2, amount int, critical bool) {
	kind := StrikeHit
	if critical {
		kind = StrikeCritical
	}
	StrikeEvents.Publish(s.world, StrikeEvent{At: at, Amount: amount, Kind: kind})
}

func (s eventSink) Blocked(blocker combat.ActorID, at gamemath.Vec2) {
	StrikeEvents.Publish(s.world, StrikeEvent{At: at, Kind: StrikeBlocked, Blocker: blocker})
}

func (s eventSink) Missed(at gamemath.Vec2) {
	StrikeEvents.Publish(s.world, StrikeEvent{At: at, Kind: StrikeMissed})
}

// vitalsSink publishes one actor's hurt and death transitions.
type vitalsSink struct {
	world donburi.World
	id    combat.ActorID
	tag   combat.Tag
}

func (s vitalsSink) HurtStarted(direction gamemath.Vec2) {
	HurtEvents.Publish(s.world, HurtEvent{Actor: s.id, Tag: s.tag, Direction: direction})
}

func (s vitalsSink) HurtEnded() {}

func (s vitalsSink) Died(direction gamemath.Vec2, pose int) {
	DeathEvents.Publish(s.world, DeathEvent{Actor: s.id, Tag: s.tag, Direction: direction, Pose: pose})
}

// NewHooks returns the sinks that route coordinator feedback into world
// events.
func NewHooks(world donburi.World) components.Hooks {
	sink := eventSink{world: world}
	return components.Hooks{
		Telegraphs: sink,
		Effects:    sink,
		Listen: func(id combat.ActorID, tag combat.Tag) combat.VitalsListener {
			return vitalsSink{world: world, id: id, tag: tag}
		},
	}
}

// UpdateEvents delivers everything published since the last tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

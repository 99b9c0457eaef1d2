package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
)

func arenaOf(ecs *ecs.ECS) (*components.ArenaData, bool) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(entry), true
}

func rosterOf(ecs *ecs.ECS) *components.ActorRoster {
	return components.Roster.Get(components.Roster.MustFirst(ecs.World)).ActorRoster
}

func scoreOf(ecs *ecs.ECS) *components.ScoreData {
	return components.Score.Get(components.Score.MustFirst(ecs.World))
}

// actorEntry resolves an actor ID to its live entry.
func actorEntry(ecs *ecs.ECS, id combat.ActorID) (*donburi.Entry, bool) {
	e, ok := rosterOf(ecs).Entity(id)
	if !ok || !ecs.World.Valid(e) {
		return nil, false
	}
	return ecs.World.Entry(e), true
}

// queueSound schedules a sound effect on the arena's audio queue.
func queueSound(ecs *ecs.ECS, id cfg.SoundID) {
	if entry, ok := components.Audio.First(ecs.World); ok {
		components.Audio.Get(entry).Queue(id)
	}
}

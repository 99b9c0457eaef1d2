package factory

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/archetypes"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/level"
	"github.com/automoto/shieldbearer/spatial"
)

// CreateArena spawns the match singleton holding the map, tuning, roster,
// score and sound queue.
func CreateArena(ecs *ecs.ECS, lvl *level.Arena, c *cfg.Config, dice combat.Dice, logger *slog.Logger, hooks components.Hooks) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Level:  lvl,
		Config: c,
		Dice:   dice,
		Logger: logger,
		Hooks:  hooks,
	})
	components.Roster.SetValue(arena, components.RosterData{ActorRoster: components.NewRoster()})
	components.Score.SetValue(arena, components.ScoreData{KillsByType: make(map[string]int)})
	return arena
}

// CreateSpace builds the collision space for the arena, registers every
// obstacle rect in it and places the teleport pads.
func CreateSpace(ecs *ecs.ECS, lvl *level.Arena, c cfg.ArenaConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	s := spatial.New(lvl.Width, lvl.Height, c.CellSize, c.LineOfSightStep, c.LineOfSightWidth)
	components.Space.SetValue(space, components.SpaceData{Space: s})

	for _, r := range lvl.Obstacles {
		CreateObstacle(ecs, s, r)
	}
	for _, t := range lvl.Teleports {
		CreateTeleport(ecs, t)
	}
	return space
}

func CreateObstacle(ecs *ecs.ECS, s *spatial.Space, r level.Rect) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	obj := s.AddObstacle(r.X, r.Y, r.W, r.H)
	obj.Data = obstacle
	components.Obstacle.SetValue(obstacle, components.ObstacleData{Rect: r, Object: obj})
	return obstacle
}

// CreateTeleport places a pad. Pads are triggers, not colliders, so they
// stay out of the space.
func CreateTeleport(ecs *ecs.ECS, t level.Teleport) *donburi.Entry {
	pad := archetypes.Teleport.Spawn(ecs)
	components.TeleportPad.SetValue(pad, components.TeleportPadData{Pad: t})
	return pad
}

// shared returns the singletons every actor factory needs.
func shared(ecs *ecs.ECS) (*components.ArenaData, *components.ActorRoster, *spatial.Space) {
	entry := components.Arena.MustFirst(ecs.World)
	arena := components.Arena.Get(entry)
	roster := components.Roster.Get(entry).ActorRoster
	space := components.Space.Get(components.Space.MustFirst(ecs.World)).Space
	return arena, roster, space
}

func actorDeps(arena *components.ArenaData, roster *components.ActorRoster, space *spatial.Space,
	id combat.ActorID, tag combat.Tag, body *components.Body, anim *combat.AnimationParams) combat.Deps {
	deps := combat.Deps{
		ID:         id,
		Body:       body,
		Space:      space,
		Roster:     roster,
		Animation:  anim,
		Telegraphs: arena.Hooks.Telegraphs,
		Effects:    arena.Hooks.Effects,
		Dice:       arena.Dice,
		Logger:     arena.Logger,
	}
	if arena.Hooks.Listen != nil {
		deps.Listener = arena.Hooks.Listen(id, tag)
	}
	return deps
}

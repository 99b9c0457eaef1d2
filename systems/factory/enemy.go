package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/archetypes"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/level"
)

// CreateEnemy spawns an enemy of the spawn's type hunting target. Unknown or
// empty types fall back to the default enemy type.
func CreateEnemy(ecs *ecs.ECS, spawn level.EnemySpawn, target combat.ActorID) *donburi.Entry {
	arena, roster, space := shared(ecs)

	typeName := spawn.Type
	if _, ok := arena.Config.Enemy.Types[typeName]; !ok {
		typeName = arena.Config.Enemy.DefaultType
	}
	c := arena.Config.Enemy.Type(typeName)

	id := roster.NextID()
	actor := space.AddActor(id, combat.TagEnemy, spawn.Position, c.Movement.Radius)
	body := components.NewBody(space, actor)
	anim := combat.NewAnimationParams()
	coord := combat.NewEnemyCoordinator(c, target, actorDeps(arena, roster, space, id, combat.TagEnemy, body, anim))

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Actor.SetValue(enemy, components.ActorData{
		ID:     id,
		Tag:    combat.TagEnemy,
		Radius: c.Movement.Radius,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Coordinator: coord,
		TypeName:    typeName,
		Spawn:       spawn.Position,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{Body: body})
	components.Animation.SetValue(enemy, components.AnimationData{Params: anim, DeathPose: -1})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	roster.Add(coord, enemy.Entity())
	return enemy
}

// RemoveActor takes an actor out of the roster and the collision space and
// destroys its entity.
func RemoveActor(ecs *ecs.ECS, entry *donburi.Entry) {
	_, roster, space := shared(ecs)
	actor := components.Actor.Get(entry)
	roster.Remove(actor.ID)
	if entry.HasComponent(components.Physics) {
		space.RemoveActor(components.Physics.Get(entry).Body.Actor())
	}
	ecs.World.Remove(entry.Entity())
}

// CreateWave spawns one enemy per spawn point of the arena map.
func CreateWave(ecs *ecs.ECS, target combat.ActorID) []*donburi.Entry {
	arena, _, _ := shared(ecs)
	entries := make([]*donburi.Entry, 0, len(arena.Level.EnemySpawns))
	for _, spawn := range arena.Level.EnemySpawns {
		entries = append(entries, CreateEnemy(ecs, spawn, target))
	}
	return entries
}

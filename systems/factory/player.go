package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/archetypes"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/gamemath"
)

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
	arena, roster, space := shared(ecs)
	c := arena.Config.Player

	id := roster.NextID()
	actor := space.AddActor(id, combat.TagPlayer, pos, c.Movement.Radius)
	body := components.NewBody(space, actor)
	anim := combat.NewAnimationParams()
	coord := combat.NewPlayerCoordinator(c, actorDeps(arena, roster, space, id, combat.TagPlayer, body, anim))

	player := archetypes.Player.Spawn(ecs)
	components.Actor.SetValue(player, components.ActorData{
		ID:     id,
		Tag:    combat.TagPlayer,
		Radius: c.Movement.Radius,
	})
	components.Player.SetValue(player, components.PlayerData{Coordinator: coord})
	components.Physics.SetValue(player, components.PhysicsData{Body: body})
	components.Animation.SetValue(player, components.AnimationData{Params: anim, DeathPose: -1})

	// Flash stays attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	roster.Add(coord, player.Entity())
	return player
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/systems/factory"
	"github.com/automoto/shieldbearer/tags"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

// UpdateDeaths despawns enemies whose corpse has faded, respawns the player
// once the respawn timer runs out and starts a new wave when the arena is
// clear.
func UpdateDeaths(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	dt := arena.DT()

	var expired []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Coordinator.Expired() {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		factory.RemoveTelegraph(ecs, components.Actor.Get(e).ID)
		factory.RemoveActor(ecs, e)
	}

	var revive []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			revive = append(revive, e)
		}
	})
	for _, e := range revive {
		respawnPlayer(ecs, e)
	}

	if len(arena.Level.EnemySpawns) > 0 && enemyQuery.Count(ecs.World) == 0 {
		if target, ok := playerID(ecs); ok {
			score := scoreOf(ecs)
			score.Wave++
			factory.CreateWave(ecs, target)
			arena.Logger.Info("wave started", "wave", score.Wave)
		}
	}
}

// respawnPlayer restores the player at the arena's spawn point.
func respawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	arena, _ := arenaOf(ecs)
	player := components.Player.Get(e)
	player.Coordinator.Respawn(arena.Level.PlayerSpawn())
	player.WasAttacking = false
	player.WasRolling = false

	anim := components.Animation.Get(e)
	anim.DeathPose = -1
	components.Flash.Get(e).Remaining = 0
	if e.HasComponent(components.Traveller) {
		components.Traveller.SetValue(e, components.TravellerData{})
	}

	if e.HasComponent(components.Death) {
		e.RemoveComponent(components.Death)
	}
	applyGodMode(ecs)
	arena.Logger.Info("player respawned")
}

// ResetArena respawns the player and replaces every enemy with a fresh wave.
func ResetArena(ecs *ecs.ECS) {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		factory.RemoveTelegraph(ecs, components.Actor.Get(e).ID)
		factory.RemoveActor(ecs, e)
	}

	if entry, ok := tags.Player.First(ecs.World); ok {
		respawnPlayer(ecs, entry)
		factory.CreateWave(ecs, components.Actor.Get(entry).ID)
	}
}

func playerID(ecs *ecs.ECS) (combat.ActorID, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return 0, false
	}
	return components.Actor.Get(entry).ID, true
}

package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/tags"
)

// LayerDefault is the only render layer; renderers draw in the order they
// were added.
const LayerDefault ecs.LayerID = 0

var (
	Arena = newArchetype(
		components.Arena,
		components.Roster,
		components.Score,
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Player,
		components.Physics,
		components.Animation,
		components.Flash,
		components.Traveller,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Enemy,
		components.Physics,
		components.Animation,
		components.Flash,
	)
	Teleport = newArchetype(
		tags.Teleport,
		components.TeleportPad,
	)
	Telegraph = newArchetype(
		tags.Telegraph,
		components.Telegraph,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}

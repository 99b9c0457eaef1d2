package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
)

// UpdatePhysics integrates every body against the obstacles. Runs after the
// coordinators have set this tick's velocities.
func UpdatePhysics(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	dt := arena.DT()
	decay := arena.Config.Arena.ImpulseDecay

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		components.Physics.Get(e).Body.Step(dt, decay)
	})
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/tags"
)

// UpdateEnemies advances every enemy's AI and swing.
func UpdateEnemies(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	dt := arena.DT()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Coordinator.Tick(dt)

		phase := enemy.Coordinator.Attack().Phase()
		if phase == combat.PhaseDamaging && enemy.LastPhase != combat.PhaseDamaging {
			queueSound(ecs, cfg.SoundSwing)
		}
		enemy.LastPhase = phase
	})
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/tags"
)

// UpdateControls handles the debug and meta keys.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := getOrCreateSettings(ecs)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		settings.Dirty = true
	}
	if input.Action(cfg.ActionToggleGodMode).JustPressed {
		settings.GodMode = !settings.GodMode
		settings.Dirty = true
		applyGodMode(ecs)
	}
	if input.Action(cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		settings.Dirty = true
	}
	if input.Action(cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		settings.Dirty = true
	}
	if input.Action(cfg.ActionRespawn).JustPressed {
		ResetArena(ecs)
	}
	if input.Action(cfg.ActionQuit).JustPressed {
		if arena, ok := arenaOf(ecs); ok {
			arena.Quit = true
		}
	}
}

// applyGodMode copies the god mode setting onto the player's vitals.
func applyGodMode(ecs *ecs.ECS) {
	on := getOrCreateSettings(ecs).GodMode
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).Coordinator.Vitals().SetGodMode(on)
	})
}

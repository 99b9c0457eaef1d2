package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
)

// UpdateEffects processes visual effect components (flash, popups, telegraph
// blink)
func UpdateEffects(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	dt := arena.DT()
	scoreOf(ecs).Elapsed += dt

	updateFlashEffects(ecs, dt)
	updateTelegraphs(ecs, dt)
	updatePopups(ecs, dt, arena.Config.Effects.PopupLifetime)
}

// updateFlashEffects counts flash timers down to zero
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining = max(flash.Remaining-dt, 0)
		}
	})
}

func updateTelegraphs(ecs *ecs.ECS, dt float64) {
	components.Telegraph.Each(ecs.World, func(e *donburi.Entry) {
		components.Telegraph.Get(e).Blink.Update(dt)
	})
}

// updatePopups rises every popup and fades it once its lifetime is over,
// destroying it when fully transparent.
func updatePopups(ecs *ecs.ECS, dt, lifetime float64) {
	var toDestroy []*donburi.Entry

	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		p.Age += dt

		offset, _ := p.Rise.Update(float32(dt))
		p.Offset = float64(offset)

		if p.Age > lifetime {
			alpha, done := p.Fade.Update(float32(dt))
			p.Alpha = float64(alpha)
			p.Done = done
		}
		if p.Done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}

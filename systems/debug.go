package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/spatial"
	"github.com/automoto/shieldbearer/tags"
)

var (
	debugSolid     = color.RGBA{100, 100, 100, 255}
	debugPlayer    = color.RGBA{0, 0, 255, 255}
	debugEnemy     = color.RGBA{255, 0, 0, 255}
	debugHitArea   = color.RGBA{255, 255, 0, 255}
	debugDetection = color.RGBA{0, 255, 255, 60}
)

// DrawDebug outlines every collider, the live damage areas and enemy
// perception ranges, and prints the tick rate and AI states.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := getOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}

	if entry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(entry).Space
		for _, obj := range space.Resolv().Objects() {
			c := debugSolid
			if obj.HasTags(spatial.TagActor) {
				c = debugEnemy
				if obj.HasTags(string(combat.TagPlayer)) {
					c = debugPlayer
				}
			}
			x, y := worldToScreen(arena, gamemath.V(obj.X, obj.Y+obj.H))
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		attack := attackOf(e)
		if attack == nil || !attack.DamageWindowActive() {
			return
		}
		drawHitArea(screen, arena, components.Physics.Get(e).Body.Position(), attack)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Enemy.Get(e).Coordinator
		x, y := worldToScreen(arena, c.Position())
		vector.StrokeCircle(screen, x, y, float32(c.Config().Perception.DetectionRange), 1, debugDetection, true)
		ebitenutil.DebugPrintAt(screen, c.State().String(), int(x)-12, int(y)+12)
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		hudMargin, screen.Bounds().Dy()-16)
}

func attackOf(e *donburi.Entry) *combat.Sequencer {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Coordinator.Attack()
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Coordinator.Attack()
	}
	return nil
}

// drawHitArea outlines a swing's live damage area: a cone from the owner or
// a circle around the marker.
func drawHitArea(screen *ebiten.Image, arena *components.ArenaData, owner gamemath.Vec2, attack *combat.Sequencer) {
	c := attack.Config()
	if c.ConeHalfAngle <= 0 {
		at, _ := attack.Telegraph()
		x, y := worldToScreen(arena, at)
		vector.StrokeCircle(screen, x, y, float32(c.HitRadius), 1, debugHitArea, true)
		return
	}

	x, y := worldToScreen(arena, owner)
	heading := gamemath.Heading(attack.Direction())
	for _, deg := range []float64{heading - c.ConeHalfAngle, heading + c.ConeHalfAngle} {
		rad := deg * math.Pi / 180
		drawRay(screen, x, y, gamemath.V(math.Cos(rad), math.Sin(rad)), float32(c.HitRadius), 1, debugHitArea)
	}
	vector.StrokeCircle(screen, x, y, float32(c.HitRadius), 1, debugHitArea, true)
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/fonts"
	"github.com/automoto/shieldbearer/tags"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudGap       = 3

	enemyBarWidth  = 24
	enemyBarHeight = 3
)

var (
	faces     = map[fonts.FontName]*text.GoXFace{}
	hudTextOp = &text.DrawOptions{}
)

// faceOf wraps a loaded font face for text/v2, caching the wrapper.
func faceOf(name fonts.FontName) *text.GoXFace {
	if f, ok := faces[name]; ok {
		return f
	}
	f := text.NewGoXFace(name.Get())
	faces[name] = f
	return f
}

// DrawHUD renders the player's health, mana, stamina and experience bars in
// the top-left corner plus the run score in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawEnemyBars(ecs, screen)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Player.Get(playerEntry).Coordinator
	v := c.Vitals()
	s := c.Shield()

	y := float32(hudMargin)
	drawBar(screen, hudMargin, y, hudBarWidth, hudBarHeight, v.HealthFraction(), cfg.HealthFill)
	y += hudBarHeight + hudGap
	if v.MaxMana() > 0 {
		drawBar(screen, hudMargin, y, hudBarWidth, hudBarHeight, v.Mana()/v.MaxMana(), cfg.ManaFill)
		y += hudBarHeight + hudGap
	}
	if s.MaxStamina() > 0 {
		drawBar(screen, hudMargin, y, hudBarWidth, hudBarHeight, s.Stamina()/s.MaxStamina(), cfg.StaminaFill)
		y += hudBarHeight + hudGap
	}
	p := c.Progression()
	xp := float64(p.Experience()) / float64(p.ExperienceToNextLevel())
	drawBar(screen, hudMargin, y, hudBarWidth, hudBarHeight/2, xp, cfg.XPFill)
	y += hudBarHeight/2 + hudGap

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	face := faceOf(fonts.Regular)

	drawText(screen, face, fmt.Sprintf("lv %d", p.Level()), hudMargin, float64(y), text.AlignStart, cfg.FacingColor)
	if v.GodMode() {
		drawText(screen, face, "GOD", hudMargin+hudBarWidth, float64(y), text.AlignEnd, cfg.AttackColor)
	}
	if playerEntry.HasComponent(components.Death) {
		remaining := components.Death.Get(playerEntry).Timer
		msg := fmt.Sprintf("respawn in %.1f", max(remaining, 0))
		w := float64(screen.Bounds().Dx())
		h := float64(screen.Bounds().Dy())
		drawText(screen, faceOf(fonts.Bold), msg, w/2, h/2, text.AlignCenter, cfg.FacingColor)
	}

	if scoreEntry, ok := components.Score.First(ecs.World); ok {
		score := components.Score.Get(scoreEntry)
		msg := fmt.Sprintf("wave %d  kills %d  deaths %d  blocks %d", score.Wave, score.Kills, score.Deaths, score.Blocks)
		w := float64(screen.Bounds().Dx())
		drawText(screen, face, msg, w-hudMargin, hudMargin, text.AlignEnd, cfg.FacingColor)
	}
}

// drawEnemyBars draws a small health bar above every living, damaged enemy.
func drawEnemyBars(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Enemy.Get(e).Coordinator.Vitals()
		if v.Dead() || v.HealthFraction() >= 1 {
			return
		}
		actor := components.Actor.Get(e)
		x, y := worldToScreen(arena, components.Physics.Get(e).Body.Position())
		top := y - float32(actor.Radius) - enemyBarHeight - 3
		drawBar(screen, x-enemyBarWidth/2, top, enemyBarWidth, enemyBarHeight, v.HealthFraction(), cfg.EnemyHealth)
	})
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fraction float64, fill color.Color) {
	vector.FillRect(screen, x, y, w, h, cfg.HealthBack, false)
	vector.FillRect(screen, x, y, w*float32(min(max(fraction, 0), 1)), h, fill, false)
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, align text.Align, c color.Color) {
	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.PrimaryAlign = align
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, hudTextOp)
}

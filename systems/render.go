package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/assets"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/fonts"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/tags"
)

type spriteKey struct {
	radius int
	color  color.RGBA
}

var (
	actorSprites = map[spriteKey]*ebiten.Image{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	drawOp       = &ebiten.DrawImageOptions{}
	textOp       = &text.DrawOptions{}
)

// World space is Y-up with the origin at the arena's bottom-left corner;
// the screen is Y-down with the origin at the top-left.

func worldToScreen(arena *components.ArenaData, p gamemath.Vec2) (float32, float32) {
	return float32(p.X), float32(float64(arena.Level.Height) - p.Y)
}

func screenToWorld(arena *components.ArenaData, x, y float64) gamemath.Vec2 {
	return gamemath.V(x, float64(arena.Level.Height)-y)
}

// DrawArena renders the pre-rendered tile layers, or the obstacle rects when
// the map has none.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	if arena.Background != nil {
		screen.DrawImage(arena.Background, nil)
	} else {
		tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
			r := components.Obstacle.Get(e).Rect
			x, y := worldToScreen(arena, gamemath.V(r.X, r.Y+r.H))
			vector.FillRect(screen, x, y, float32(r.W), float32(r.H), cfg.ObstacleColor, false)
		})
	}

	// Pads dim while locked.
	tags.Teleport.Each(ecs.World, func(e *donburi.Entry) {
		p := components.TeleportPad.Get(e)
		c := cfg.TeleportColor
		if p.Lockout > 0 {
			c = cfg.TeleportIdle
		}
		r := p.Pad.Area
		x, y := worldToScreen(arena, gamemath.V(r.X, r.Y+r.H))
		vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 2, c, false)
	})
}

// DrawTelegraphs renders the blinking warning zones of enemy swings.
func DrawTelegraphs(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	components.Telegraph.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Telegraph.Get(e)
		c := cfg.TelegraphA
		if t.Blink.Frame() == 1 {
			c = cfg.TelegraphB
		}
		x, y := worldToScreen(arena, t.At)
		vector.FillCircle(screen, x, y, float32(t.Radius), c, true)
		vector.StrokeCircle(screen, x, y, float32(t.Radius), 1, cfg.TelegraphB, true)
	})
}

// DrawActors renders the player and enemies as tinted discs with their
// facing, swing and shield overlaid.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		body := components.Physics.Get(e).Body
		anim := components.Animation.Get(e)
		x, y := worldToScreen(arena, body.Position())
		r := float32(actor.Radius)

		tint := cfg.PlayerColor
		alpha := 1.0
		var shield *combat.Shield
		if e.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(e)
			tint = enemyColor(enemy.TypeName)
			alpha = enemy.Coordinator.CorpseAlpha()
		} else if e.HasComponent(components.Player) {
			c := components.Player.Get(e).Coordinator
			shield = c.Shield()
			if c.Roll().IsInvincible() {
				alpha = 0.5
			}
		}

		if pose := anim.Pose(); pose >= 0 {
			drawCorpse(screen, x, y, r, pose, alpha)
			return
		}

		flash := components.Flash.Get(e)
		drawDisc(screen, x, y, r, tint, flash, alpha)

		facing := gamemath.V(anim.Float(combat.ParamHorizontal), anim.Float(combat.ParamVertical))
		drawRay(screen, x, y, facing, r*1.4, 1, cfg.FacingColor)

		if anim.Bool(combat.ParamIsAttacking) {
			dir := gamemath.V(anim.Float(combat.ParamAttackX), anim.Float(combat.ParamAttackY))
			drawRay(screen, x, y, dir, r*2.2, 2, cfg.AttackColor)
		}
		if anim.Bool(combat.ParamIsShielding) && shield != nil {
			c := cfg.ShieldRaising
			if shield.Raised() {
				c = cfg.ShieldRaised
			}
			dir := gamemath.V(anim.Float(combat.ParamShieldX), anim.Float(combat.ParamShieldY))
			drawShield(screen, x, y, dir, r, c)
		}
	})
}

func enemyColor(typeName string) color.RGBA {
	if c, ok := cfg.EnemyColors[typeName]; ok {
		return c
	}
	return cfg.EnemyColors["grunt"]
}

// drawDisc draws an actor sprite through the flash shader so hurt flashes
// blend toward the flash colour.
func drawDisc(screen *ebiten.Image, x, y, r float32, tint color.RGBA, flash *components.FlashData, alpha float64) {
	sprite := actorSprite(int(r), tint)
	w, h := sprite.Bounds().Dx(), sprite.Bounds().Dy()
	var amount float32
	if flash.Duration > 0 {
		amount = float32(gamemath.ClampFloat(flash.Remaining/flash.Duration, 0, 1))
	}

	if assets.FlashShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(float64(x)-float64(w)/2, float64(y)-float64(h)/2)
		drawOp.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(sprite, drawOp)
		return
	}

	shaderOp.GeoM.Reset()
	shaderOp.ColorScale.Reset()
	shaderOp.GeoM.Translate(float64(x)-float64(w)/2, float64(y)-float64(h)/2)
	shaderOp.ColorScale.ScaleAlpha(float32(alpha))
	shaderOp.Images[0] = sprite
	shaderOp.Uniforms = map[string]any{
		"FlashColor": []float32{flash.R, flash.G, flash.B},
		"Amount":     amount,
	}
	screen.DrawRectShader(w, h, assets.FlashShader, shaderOp)
}

// actorSprite returns a cached filled disc of radius r.
func actorSprite(r int, c color.RGBA) *ebiten.Image {
	key := spriteKey{radius: r, color: c}
	if img, ok := actorSprites[key]; ok {
		return img
	}
	size := 2*r + 2
	img := ebiten.NewImage(size, size)
	vector.FillCircle(img, float32(size)/2, float32(size)/2, float32(r), c, true)
	actorSprites[key] = img
	return img
}

// drawCorpse lays a bar along the death pose's fall direction.
func drawCorpse(screen *ebiten.Image, x, y, r float32, pose int, alpha float64) {
	dir, _ := gamemath.CompassOfDeathIndex(pose)
	c := fade(cfg.CorpseColor, alpha)
	v := dir.Vector()
	vector.StrokeLine(screen, x, y, x+float32(v.X)*r*2, y-float32(v.Y)*r*2, r, c, true)
}

func drawRay(screen *ebiten.Image, x, y float32, dir gamemath.Vec2, length, width float32, c color.Color) {
	if dir.IsZero() {
		return
	}
	d := dir.Normalized()
	vector.StrokeLine(screen, x, y, x+float32(d.X)*length, y-float32(d.Y)*length, width, c, true)
}

// drawShield draws the shield plate perpendicular to its facing.
func drawShield(screen *ebiten.Image, x, y float32, dir gamemath.Vec2, r float32, c color.Color) {
	if dir.IsZero() {
		return
	}
	d := dir.Normalized()
	cx, cy := x+float32(d.X)*(r+3), y-float32(d.Y)*(r+3)
	px, py := float32(-d.Y)*r, -float32(d.X)*r
	vector.StrokeLine(screen, cx-px, cy-py, cx+px, cy+py, 3, c, true)
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * gamemath.ClampFloat(alpha, 0, 1))}
}

// DrawPopups renders floating damage numbers and block/miss words.
func DrawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := arenaOf(ecs)
	if !ok || !fonts.Loaded(fonts.Bold) {
		return
	}
	face := faceOf(fonts.Bold)
	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		x, y := worldToScreen(arena, p.Origin.Add(gamemath.V(0, p.Offset)))

		textOp.GeoM.Reset()
		textOp.ColorScale.Reset()
		textOp.PrimaryAlign = text.AlignCenter
		textOp.SecondaryAlign = text.AlignEnd
		textOp.GeoM.Translate(float64(x), float64(y))
		textOp.ColorScale.ScaleWithColor(fade(cfg.PopupColors[p.Kind], p.Alpha))
		text.Draw(screen, p.Text, face, textOp)
	})
}

package config

import "image/color"

// Palette used by the debug renderer.
var (
	Background    = color.RGBA{24, 22, 30, 255}
	ObstacleColor = color.RGBA{90, 88, 104, 255}
	PlayerColor   = color.RGBA{70, 140, 240, 255}
	CorpseColor   = color.RGBA{70, 60, 60, 255}
	FacingColor   = color.RGBA{240, 240, 240, 255}
	AttackColor   = color.RGBA{255, 220, 80, 255}
	ShieldRaised  = color.RGBA{120, 240, 255, 255}
	ShieldRaising = color.RGBA{60, 120, 140, 255}
	TelegraphA    = color.RGBA{255, 60, 40, 90}
	TelegraphB    = color.RGBA{255, 140, 40, 90}
	HealthBack    = color.RGBA{40, 40, 40, 255}
	HealthFill    = color.RGBA{40, 220, 40, 255}
	ManaFill      = color.RGBA{60, 110, 240, 255}
	StaminaFill   = color.RGBA{230, 200, 60, 255}
	EnemyHealth   = color.RGBA{220, 50, 50, 255}
	XPFill        = color.RGBA{200, 120, 255, 255}
	TeleportColor = color.RGBA{80, 220, 200, 255}
	TeleportIdle  = color.RGBA{50, 110, 100, 255}

	FlashColor      = [3]float32{1, 0.3, 0.3}
	BlockFlashColor = [3]float32{0.3, 0.45, 1}
)

// EnemyColors tints enemies by type name. Unknown types use the grunt colour.
var EnemyColors = map[string]color.RGBA{
	"grunt":      {200, 80, 70, 255},
	"brute":      {150, 60, 160, 255},
	"skirmisher": {220, 150, 60, 255},
}

// PopupColors are indexed by popup kind: damage, critical, blocked, missed,
// level up.
var PopupColors = [5]color.RGBA{
	{255, 255, 255, 255},
	{255, 210, 40, 255},
	{120, 240, 255, 255},
	{170, 170, 170, 255},
	{200, 120, 255, 255},
}

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/gamemath"
)

// FlashData tracks sprite flash effect (hurt flash, block flash). The flash
// fades as Remaining counts down from Duration.
type FlashData struct {
	Remaining float64 // seconds
	Duration  float64
	R, G, B   float32
}

var Flash = donburi.NewComponentType[FlashData]()

// PopupKind selects the colour and text of a floating combat popup.
type PopupKind int

const (
	PopupDamage PopupKind = iota
	PopupCritical
	PopupBlocked
	PopupMissed
	PopupLevelUp
)

// PopupData is a floating number or word above a struck actor. Rise eases
// the popup upward; Fade starts once Age passes the configured lifetime.
type PopupData struct {
	Kind   PopupKind
	Text   string
	Origin gamemath.Vec2
	Age    float64
	Rise   *gween.Tween
	Fade   *gween.Tween
	Offset float64
	Alpha  float64
	Done   bool
}

var Popup = donburi.NewComponentType[PopupData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/assets/animations"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/gamemath"
)

// TelegraphData is the warning marker shown while an enemy winds up.
type TelegraphData struct {
	Owner  combat.ActorID
	At     gamemath.Vec2
	Radius float64
	Blink  *animations.Cycle
}

var Telegraph = donburi.NewComponentType[TelegraphData]()

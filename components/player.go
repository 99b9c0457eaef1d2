package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
)

type PlayerData struct {
	Coordinator *combat.PlayerCoordinator
	// Last tick's sub-states, used to fire one-shot sounds on entry.
	WasAttacking bool
	WasRolling   bool
}

var Player = donburi.NewComponentType[PlayerData]()

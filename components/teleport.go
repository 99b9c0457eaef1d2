package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/level"
)

// TeleportPadData is one pad from the arena map. A pad with a positive
// Lockout sends nobody; it is set on the exit pad when an actor lands.
type TeleportPadData struct {
	Pad     level.Teleport
	Lockout float64
}

var TeleportPad = donburi.NewComponentType[TeleportPadData]()

// TravellerData tracks an actor's use of the pads. Pads fire when the actor
// steps onto them, so On remembers the pad under the actor last tick. While
// Exit is set the actor is frozen and Remaining counts down to the jump.
type TravellerData struct {
	On        string
	Exit      string
	Remaining float64
}

func (t *TravellerData) Pending() bool { return t.Exit != "" }

var Traveller = donburi.NewComponentType[TravellerData]()

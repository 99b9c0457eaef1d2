package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
)

// ActorData is shared by the player and enemies. Everything behind a pointer
// is owned by the actor's coordinator and must outlive component moves.
type ActorData struct {
	ID     combat.ActorID
	Tag    combat.Tag
	Radius float64
}

var Actor = donburi.NewComponentType[ActorData]()

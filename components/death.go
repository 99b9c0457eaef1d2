package components

import "github.com/yohamta/donburi"

// DeathData marks a dead player. Timer counts down in seconds; the player
// respawns once it reaches 0.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/level"
)

// ObstacleData links a solid rect from the arena map to its collider.
type ObstacleData struct {
	Rect   level.Rect
	Object *resolv.Object
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/gamemath"
)

type EnemyData struct {
	Coordinator *combat.EnemyCoordinator
	TypeName    string
	Spawn       gamemath.Vec2
	LastPhase   combat.Phase
}

var Enemy = donburi.NewComponentType[EnemyData]()

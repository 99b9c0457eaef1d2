package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
)

// AnimationData carries the blend-tree parameters the coordinator writes
// each tick. The renderer reads them to pick a pose.
type AnimationData struct {
	Params *combat.AnimationParams
	// DeathPose is latched when the Death trigger fires; -1 while alive.
	DeathPose int
}

var Animation = donburi.NewComponentType[AnimationData]()

// Pose returns the death pose or -1 once the death trigger has been seen.
func (a *AnimationData) Pose() int {
	if a.Params.ConsumeTrigger(combat.ParamDeath) {
		a.DeathPose = a.Params.Ints[combat.ParamDeathDirection]
	}
	return a.DeathPose
}

// Float is a shorthand for reading a blend parameter.
func (a *AnimationData) Float(p combat.Param) float64 { return a.Params.Floats[p] }

// Bool is a shorthand for reading a blend flag.
func (a *AnimationData) Bool(p combat.Param) bool { return a.Params.Bools[p] }

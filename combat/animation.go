package combat

// Param names an animation blend-tree parameter.
type Param string

const (
	ParamHorizontal     Param = "Horizontal"
	ParamVertical       Param = "Vertical"
	ParamSpeed          Param = "Speed"
	ParamIsAttacking    Param = "IsAttacking"
	ParamAttackX        Param = "AttackX"
	ParamAttackY        Param = "AttackY"
	ParamHurtX          Param = "HurtX"
	ParamHurtY          Param = "HurtY"
	ParamIsHurting      Param = "IsHurting"
	ParamRollX          Param = "RollX"
	ParamRollY          Param = "RollY"
	ParamIsRolling      Param = "IsRolling"
	ParamShieldX        Param = "ShieldX"
	ParamShieldY        Param = "ShieldY"
	ParamIsShielding    Param = "IsShielding"
	ParamDeath          Param = "Death"
	ParamDeathDirection Param = "DeathDirection"
)

// AnimationSink receives blend-tree parameters. The core never reads them
// back.
type AnimationSink interface {
	SetFloat(p Param, v float64)
	SetBool(p Param, v bool)
	SetInt(p Param, v int)
	Trigger(p Param)
}

// AnimationParams is an in-memory AnimationSink. The ECS keeps one per
// actor for the renderer; tests use it to inspect what was written.
type AnimationParams struct {
	Floats   map[Param]float64
	Bools    map[Param]bool
	Ints     map[Param]int
	Triggers map[Param]int
}

func NewAnimationParams() *AnimationParams {
	return &AnimationParams{
		Floats:   make(map[Param]float64),
		Bools:    make(map[Param]bool),
		Ints:     make(map[Param]int),
		Triggers: make(map[Param]int),
	}
}

func (a *AnimationParams) SetFloat(p Param, v float64) { a.Floats[p] = v }
func (a *AnimationParams) SetBool(p Param, v bool)     { a.Bools[p] = v }
func (a *AnimationParams) SetInt(p Param, v int)       { a.Ints[p] = v }
func (a *AnimationParams) Trigger(p Param)             { a.Triggers[p]++ }

// ConsumeTrigger reports whether p fired since the last call.
func (a *AnimationParams) ConsumeTrigger(p Param) bool {
	if a.Triggers[p] == 0 {
		return false
	}
	a.Triggers[p] = 0
	return true
}

// Reset clears every parameter.
func (a *AnimationParams) Reset() {
	clear(a.Floats)
	clear(a.Bools)
	clear(a.Ints)
	clear(a.Triggers)
}

package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog move and aim vectors, already in world space.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Move            gamemath.Vec2 // analog stick; zero when keys are used
	Cursor          gamemath.Vec2 // world position of the mouse
	Stick           gamemath.Vec2 // right stick aim, Y up
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

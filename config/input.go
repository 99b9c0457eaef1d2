package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionRoll
	ActionShield
	ActionToggleDebug
	ActionToggleGodMode
	ActionToggleMute
	ActionToggleFullscreen
	ActionRespawn
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // stick magnitude below which input is ignored
	AimDeadzone    float64 // right stick magnitude required to aim
}

// Input is the active input configuration.
var Input = DefaultInput()

// DefaultInput returns the keyboard, mouse and gamepad bindings. With a
// mouse, attack and shield aim toward the cursor; on a gamepad they aim with
// the right stick.
func DefaultInput() InputConfig {
	return InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionAttack: {
				Keys:                   []ebiten.Key{ebiten.KeyJ},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ActionRoll: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionShield: {
				Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleGodMode:    {Keys: []ebiten.Key{ebiten.KeyF4}},
			ActionToggleMute:       {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionRespawn: {
				Keys:                   []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionQuit: {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
		AnalogDeadzone: 0.25,
		AimDeadzone:    0.5,
	}
}

package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Move = gamemath.Vec2{}
	input.Stick = gamemath.Vec2{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if move, aim, ok := readSticks(gamepadIDs); ok {
		input.Move = move
		input.Stick = aim
		gamepadUsed = true
	}

	if arena, ok := arenaOf(ecs); ok {
		x, y := ebiten.CursorPosition()
		input.Cursor = screenToWorld(arena, float64(x), float64(y))
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readSticks returns the left stick as a move vector and the right stick as
// an aim vector, both with Y up. Values under the deadzones read as zero.
func readSticks(gamepads []ebiten.GamepadID) (move, aim gamemath.Vec2, ok bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		left := gamemath.V(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		right := gamemath.V(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		)
		if left.Magnitude() >= cfg.Input.AnalogDeadzone {
			move = gamemath.ClampMagnitude(left, 1)
			ok = true
		}
		if right.Magnitude() >= cfg.Input.AimDeadzone {
			aim = right.Normalized()
			ok = true
		}
		if ok {
			return move, aim, true
		}
	}
	return gamemath.Vec2{}, gamemath.Vec2{}, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// moveVector merges the digital move keys with the analog stick. World Y
// points up, so MoveUp is +Y.
func moveVector(input *components.InputData) gamemath.Vec2 {
	if !input.Move.IsZero() {
		return input.Move
	}
	var v gamemath.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		v.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		v.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		v.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		v.Y--
	}
	return v.Normalized()
}

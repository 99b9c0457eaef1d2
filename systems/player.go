package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/tags"
)

// UpdatePlayer feeds this tick's input to the player coordinator.
func UpdatePlayer(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	dt := arena.DT()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		c := player.Coordinator
		c.Tick(dt, playerInput(input, c.Position()))

		attacking := c.Attack().Busy()
		if attacking && !player.WasAttacking {
			queueSound(ecs, cfg.SoundSwing)
		}
		rolling := c.Roll().Active()
		if rolling && !player.WasRolling {
			queueSound(ecs, cfg.SoundRoll)
		}
		player.WasAttacking = attacking
		player.WasRolling = rolling
	})
}

// playerInput translates the action buffer into coordinator intent. The
// mouse aims from the player toward the cursor; a gamepad aims with the
// right stick.
func playerInput(input *components.InputData, pos gamemath.Vec2) combat.PlayerInput {
	aim := input.Stick
	if input.LastInputMethod == components.InputKeyboard {
		aim = input.Cursor.Sub(pos)
	}
	return combat.PlayerInput{
		Move:   moveVector(input),
		Aim:    aim,
		Attack: input.Action(cfg.ActionAttack).JustPressed,
		Roll:   input.Action(cfg.ActionRoll).JustPressed,
		Shield: input.Action(cfg.ActionShield).Pressed,
	}
}

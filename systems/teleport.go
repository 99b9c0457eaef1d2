package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/gamemath"
)

// teleportEpsilon absorbs float drift when the delay is counted in ticks.
const teleportEpsilon = 1e-9

// UpdateTeleports moves travellers between linked pads. Stepping onto a pad
// freezes the actor for the teleport delay, then drops it on the centre of
// the exit pad and locks that pad for a moment. Runs after physics so pads
// see this tick's positions.
func UpdateTeleports(ecs *ecs.ECS) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	dt := arena.DT()
	c := arena.Config.Arena

	var pads []*components.TeleportPadData
	components.TeleportPad.Each(ecs.World, func(e *donburi.Entry) {
		p := components.TeleportPad.Get(e)
		p.Lockout = max(p.Lockout-dt, 0)
		pads = append(pads, p)
	})
	if len(pads) == 0 {
		return
	}

	roster := rosterOf(ecs)
	components.Traveller.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Traveller.Get(e)
		body := components.Physics.Get(e).Body
		actor, ok := roster.Lookup(components.Actor.Get(e).ID)
		if !ok {
			return
		}
		frozen, _ := actor.(combat.MovementBlockable)

		if t.Pending() {
			if actor.Vitals().Dead() {
				t.Exit, t.Remaining = "", 0
				setFrozen(frozen, false)
				return
			}
			t.Remaining -= dt
			if t.Remaining <= teleportEpsilon {
				arrive(arena, t, body, frozen, padNamed(pads, t.Exit), c.TeleportLockout)
			}
			return
		}

		pad := padAt(pads, body.Position())
		name := ""
		if pad != nil {
			name = pad.Pad.Name
		}
		entered := pad != nil && name != t.On
		t.On = name
		if !entered || pad.Pad.Exit == "" || pad.Lockout > 0 || actor.Vitals().Dead() {
			return
		}
		exit := padNamed(pads, pad.Pad.Exit)
		if exit == nil {
			return
		}

		t.Exit = exit.Pad.Name
		t.Remaining = c.TeleportDelay
		setFrozen(frozen, true)
		arena.Logger.Debug("teleport started", "actor", actor.ID(), "from", name, "to", t.Exit)
		if t.Remaining <= teleportEpsilon {
			arrive(arena, t, body, frozen, exit, c.TeleportLockout)
		}
	})
}

func arrive(arena *components.ArenaData, t *components.TravellerData, body *components.Body,
	frozen combat.MovementBlockable, exit *components.TeleportPadData, lockout float64) {
	t.Exit, t.Remaining = "", 0
	setFrozen(frozen, false)
	if exit == nil {
		return
	}
	body.SetPosition(exit.Pad.Area.Center())
	exit.Lockout = lockout
	t.On = exit.Pad.Name
	arena.Logger.Debug("teleported", "pad", exit.Pad.Name)
}

func setFrozen(m combat.MovementBlockable, frozen bool) {
	if m != nil {
		m.SetFrozen(frozen)
	}
}

func padAt(pads []*components.TeleportPadData, p gamemath.Vec2) *components.TeleportPadData {
	for _, pad := range pads {
		if pad.Pad.Area.Contains(p) {
			return pad
		}
	}
	return nil
}

func padNamed(pads []*components.TeleportPadData, name string) *components.TeleportPadData {
	for _, pad := range pads {
		if pad.Pad.Name == name {
			return pad
		}
	}
	return nil
}

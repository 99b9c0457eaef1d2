package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/level"
	"github.com/automoto/shieldbearer/tags"
)

// The player spawns at (60,120), on top of the west pad.
func teleportLevel() *level.Arena {
	lvl := testLevel()
	lvl.Teleports = []level.Teleport{
		{Name: "west", Area: level.Rect{X: 50, Y: 110, W: 20, H: 20}, Exit: "east"},
		{Name: "east", Area: level.Rect{X: 250, Y: 180, W: 20, H: 20}, Exit: "west"},
	}
	return lvl
}

func padLockout(e *ecs.ECS, name string) float64 {
	lockout := -1.0
	components.TeleportPad.Each(e.World, func(entry *donburi.Entry) {
		if p := components.TeleportPad.Get(entry); p.Pad.Name == name {
			lockout = p.Lockout
		}
	})
	return lockout
}

func runTeleport(e *ecs.ECS, traveller *components.TravellerData) {
	for i := 0; i < 120 && traveller.Pending(); i++ {
		UpdateTeleports(e)
	}
}

func TestTeleportPadsAreCreatedFromTheLevel(t *testing.T) {
	e, _ := newTestWorld(t, teleportLevel())
	assert.Equal(t, 2, count(e, tags.Teleport))
	assert.Zero(t, padLockout(e, "west"))
}

func TestTeleportFreezesThenMovesToExit(t *testing.T) {
	e, player := newTestWorld(t, teleportLevel())
	coord := components.Player.Get(player).Coordinator
	body := components.Physics.Get(player).Body
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	require.True(t, traveller.Pending())
	assert.Equal(t, "east", traveller.Exit)
	assert.True(t, coord.Frozen())
	assert.Equal(t, gamemath.V(60, 120), body.Position(), "the jump waits for the delay")

	runTeleport(e, traveller)
	assert.False(t, traveller.Pending())
	assert.False(t, coord.Frozen())
	assert.Equal(t, gamemath.V(260, 190), body.Position())
	assert.Equal(t, "east", traveller.On)
	assert.InDelta(t, 0.5, padLockout(e, "east"), 1e-9)
}

func TestTeleportDoesNotBounceBackWhileStandingOnExit(t *testing.T) {
	e, player := newTestWorld(t, teleportLevel())
	body := components.Physics.Get(player).Body
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	runTeleport(e, traveller)

	for i := 0; i < 120; i++ {
		UpdateTeleports(e)
	}
	assert.False(t, traveller.Pending())
	assert.Equal(t, gamemath.V(260, 190), body.Position())
	assert.Zero(t, padLockout(e, "east"))
}

func TestTeleportLockoutIgnoresQuickReentry(t *testing.T) {
	e, player := newTestWorld(t, teleportLevel())
	body := components.Physics.Get(player).Body
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	runTeleport(e, traveller)

	body.SetPosition(gamemath.V(220, 60))
	UpdateTeleports(e)
	assert.Empty(t, traveller.On)

	body.SetPosition(gamemath.V(260, 190))
	UpdateTeleports(e)
	assert.False(t, traveller.Pending(), "the exit pad is still locked")

	for i := 0; i < 60; i++ {
		UpdateTeleports(e)
	}
	body.SetPosition(gamemath.V(220, 60))
	UpdateTeleports(e)
	body.SetPosition(gamemath.V(260, 190))
	UpdateTeleports(e)
	require.True(t, traveller.Pending())
	assert.Equal(t, "west", traveller.Exit)
}

func TestTeleportCancelledWhenTravellerDies(t *testing.T) {
	e, player := newTestWorld(t, teleportLevel())
	coord := components.Player.Get(player).Coordinator
	body := components.Physics.Get(player).Body
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	require.True(t, traveller.Pending())

	coord.Vitals().TakeDamage(1e6, gamemath.Down)
	UpdateTeleports(e)
	assert.False(t, traveller.Pending())
	assert.False(t, coord.Frozen())
	assert.Equal(t, gamemath.V(60, 120), body.Position())
}

func TestTeleportIgnoresPadsWithoutExit(t *testing.T) {
	lvl := testLevel()
	lvl.Teleports = []level.Teleport{{Name: "dead-end", Area: level.Rect{X: 50, Y: 110, W: 20, H: 20}}}
	e, player := newTestWorld(t, lvl)
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	assert.False(t, traveller.Pending())
	assert.Equal(t, "dead-end", traveller.On)
	assert.False(t, components.Player.Get(player).Coordinator.Frozen())
}

func TestRespawnClearsPendingTeleport(t *testing.T) {
	e, player := newTestWorld(t, teleportLevel())
	traveller := components.Traveller.Get(player)

	UpdateTeleports(e)
	require.True(t, traveller.Pending())

	ResetArena(e)
	assert.False(t, traveller.Pending())
	assert.False(t, components.Player.Get(player).Coordinator.Frozen())
}

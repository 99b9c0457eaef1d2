package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/shieldbearer/assets"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/tags"
)

func TestNewWorldBuildsEmbeddedArena(t *testing.T) {
	c := cfg.Default()
	lvl, err := assets.LoadArena(nil, c.Arena.Level)
	require.NoError(t, err)

	e := NewWorld(WorldOptions{Config: c, Level: lvl})

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	assert.Equal(t, lvl.PlayerSpawn(), components.Physics.Get(player).Body.Position())

	obstacles := donburi.NewQuery(filter.Contains(tags.Obstacle)).Count(e.World)
	assert.Equal(t, len(lvl.Obstacles), obstacles)

	arena := components.Arena.Get(components.Arena.MustFirst(e.World))
	assert.Same(t, c, arena.Config)
	assert.NotNil(t, arena.Dice)
	assert.NotNil(t, arena.Logger)
	assert.NotNil(t, arena.Hooks.Listen)

	// enemies arrive with the first tick, not at build time
	assert.Zero(t, donburi.NewQuery(filter.Contains(tags.Enemy)).Count(e.World))
	assert.Zero(t, components.Score.Get(components.Score.MustFirst(e.World)).Wave)
}

func TestNewDiceIsDeterministicForASeed(t *testing.T) {
	a, b := NewDice(42), NewDice(42)
	for range 10 {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}

	assert.NotEqual(t, NewDice(42).Uint64(), NewDice(43).Uint64())
}

func TestNewArenaSceneDefersSetup(t *testing.T) {
	s := NewArenaScene(cfg.Default(), "", nil)
	assert.Nil(t, s.ecs)
	assert.NoError(t, s.Close())
}

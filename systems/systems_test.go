package systems

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/level"
	"github.com/automoto/shieldbearer/systems/factory"
	"github.com/automoto/shieldbearer/tags"
)

func testLevel(enemies ...level.EnemySpawn) *level.Arena {
	return &level.Arena{
		Name:         "test",
		Width:        320,
		Height:       240,
		Obstacles:    []level.Rect{{X: 150, Y: 100, W: 20, H: 20}},
		PlayerSpawns: []gamemath.Vec2{gamemath.V(60, 120)},
		EnemySpawns:  enemies,
	}
}

// newTestWorld builds a match without the ebiten-polling systems.
func newTestWorld(t *testing.T, lvl *level.Arena) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeEvents(e)
	factory.CreateArena(e, lvl, cfg.Default(), rand.New(rand.NewPCG(3, 4)), slog.Default(), NewHooks(e.World))
	factory.CreateSpace(e, lvl, cfg.Default().Arena)
	player := factory.CreatePlayer(e, lvl.PlayerSpawn())
	return e, player
}

func hooksOf(e *ecs.ECS) components.Hooks {
	return components.Arena.Get(components.Arena.MustFirst(e.World)).Hooks
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	return components.Audio.Get(components.Audio.MustFirst(e.World)).PendingSFX
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestTelegraphEventsManageMarkers(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	sink := hooksOf(e).Telegraphs

	sink.ShowTelegraph(5, gamemath.V(10, 20), 14)
	assert.Zero(t, count(e, tags.Telegraph), "nothing happens before events are processed")

	UpdateEvents(e)
	require.Equal(t, 1, count(e, tags.Telegraph))

	sink.ShowTelegraph(5, gamemath.V(30, 20), 14)
	UpdateEvents(e)
	require.Equal(t, 1, count(e, tags.Telegraph))
	assert.Equal(t, gamemath.V(30, 20), components.Telegraph.Get(factory.FindTelegraph(e, 5)).At)

	sink.HideTelegraph(5)
	UpdateEvents(e)
	assert.Zero(t, count(e, tags.Telegraph))
}

func TestStrikeEventsSpawnPopupsAndSounds(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	fx := hooksOf(e).Effects

	fx.DamageNumber(gamemath.V(1, 1), 12, false)
	fx.DamageNumber(gamemath.V(2, 2), 30, true)
	fx.Blocked(99, gamemath.V(3, 3))
	fx.Missed(gamemath.V(4, 4))
	UpdateEvents(e)

	texts := map[components.PopupKind]string{}
	components.Popup.Each(e.World, func(entry *donburi.Entry) {
		p := components.Popup.Get(entry)
		texts[p.Kind] = p.Text
	})
	assert.Equal(t, map[components.PopupKind]string{
		components.PopupDamage:   "12",
		components.PopupCritical: "30!",
		components.PopupBlocked:  "BLOCK",
		components.PopupMissed:   "MISS",
	}, texts)

	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundCritical, cfg.SoundBlock, cfg.SoundMiss}, pendingSounds(e))
	assert.Equal(t, 1, scoreOf(e).Blocks)

	UpdateAudio(e)
	assert.Empty(t, pendingSounds(e))
}

func TestHurtFlashesActor(t *testing.T) {
	e, player := newTestWorld(t, testLevel())
	coord := components.Player.Get(player).Coordinator

	res := coord.Vitals().TakeDamage(10, gamemath.V(1, 0))
	require.True(t, res.Accepted)
	UpdateEvents(e)

	flash := components.Flash.Get(player)
	assert.Equal(t, cfg.Default().Effects.HurtFlash, flash.Remaining)
	assert.Equal(t, flash.Remaining, flash.Duration)
	assert.Equal(t, cfg.FlashColor[0], flash.R)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHurt}, pendingSounds(e))

	for range 60 {
		UpdateEffects(e)
	}
	assert.Zero(t, flash.Remaining)
}

func TestBlockFlashesBlockerBlue(t *testing.T) {
	e, player := newTestWorld(t, testLevel())
	id := components.Actor.Get(player).ID

	hooksOf(e).Effects.Blocked(id, gamemath.V(60, 130))
	UpdateEvents(e)

	flash := components.Flash.Get(player)
	assert.Equal(t, cfg.Default().Effects.BlockFlash, flash.Remaining)
	assert.Equal(t, flash.Remaining, flash.Duration)
	assert.Equal(t, cfg.BlockFlashColor, [3]float32{flash.R, flash.G, flash.B})
	assert.Equal(t, 1, scoreOf(e).Blocks)
}

func TestHurtForUnknownActorIsIgnored(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	hooksOf(e).Listen(99, combat.TagEnemy).HurtStarted(gamemath.V(0, 1))
	assert.NotPanics(t, func() { UpdateEvents(e) })
	assert.Empty(t, pendingSounds(e))
}

func TestPlayerDeathAndRespawn(t *testing.T) {
	lvl := testLevel()
	e, player := newTestWorld(t, lvl)
	coord := components.Player.Get(player).Coordinator

	components.Physics.Get(player).Body.SetPosition(gamemath.V(200, 200))
	coord.Vitals().TakeDamage(coord.Vitals().MaxHealth(), gamemath.V(0, -1))
	require.True(t, coord.Vitals().Dead())
	UpdateEvents(e)

	require.True(t, player.HasComponent(components.Death))
	assert.Equal(t, cfg.Default().Arena.PlayerRespawn, components.Death.Get(player).Timer)
	assert.Equal(t, 1, scoreOf(e).Deaths)
	assert.Contains(t, pendingSounds(e), cfg.SoundDeath)

	ticks := int(cfg.Default().Arena.PlayerRespawn*float64(cfg.Default().Arena.TPS)) + 1
	for range ticks {
		UpdateDeaths(e)
	}
	assert.False(t, player.HasComponent(components.Death))
	assert.False(t, coord.Vitals().Dead())
	assert.Equal(t, coord.Vitals().MaxHealth(), coord.Vitals().Health())
	assert.Equal(t, lvl.PlayerSpawn(), coord.Position())
	assert.Equal(t, -1, components.Animation.Get(player).DeathPose)
}

func TestEnemyDeathCountsKill(t *testing.T) {
	e, _ := newTestWorld(t, testLevel(level.EnemySpawn{Position: gamemath.V(250, 120), Type: "brute"}))
	UpdateDeaths(e)
	require.Equal(t, 1, count(e, tags.Enemy))

	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	enemy := components.Enemy.Get(entry).Coordinator
	enemy.Vitals().TakeDamage(enemy.Vitals().MaxHealth()+1, gamemath.V(1, 0))
	UpdateEvents(e)

	score := scoreOf(e)
	assert.Equal(t, 1, score.Kills)
	assert.Equal(t, map[string]int{"brute": 1}, score.KillsByType)
}

func TestEnemyDeathAwardsExperience(t *testing.T) {
	e, player := newTestWorld(t, testLevel(
		level.EnemySpawn{Position: gamemath.V(250, 120), Type: "brute"},
		level.EnemySpawn{Position: gamemath.V(250, 60), Type: "brute"},
	))
	UpdateDeaths(e)
	coord := components.Player.Get(player).Coordinator
	c := cfg.Default()
	brute := c.Enemy.Type("brute").Experience

	kill := func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry).Coordinator
		enemy.Vitals().TakeDamage(enemy.Vitals().MaxHealth()+1, gamemath.V(1, 0))
		UpdateEvents(e)
	}
	var enemies []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) { enemies = append(enemies, entry) })
	require.Len(t, enemies, 2)

	kill(enemies[0])
	assert.Equal(t, brute, coord.Progression().Experience())
	assert.Equal(t, 1, coord.Progression().Level())
	assert.Zero(t, count(e, tags.Popup))

	coord.Vitals().TakeDamage(5, gamemath.V(1, 0))
	kill(enemies[1])
	require.GreaterOrEqual(t, 2*brute, c.Player.Progression.ExperienceToNextLevel)
	assert.Equal(t, 2, coord.Progression().Level())
	assert.Equal(t, 2*brute-c.Player.Progression.ExperienceToNextLevel, coord.Progression().Experience())
	assert.Equal(t, coord.Vitals().MaxHealth(), coord.Vitals().Health(), "a level up heals fully")

	var kinds []components.PopupKind
	components.Popup.Each(e.World, func(entry *donburi.Entry) {
		kinds = append(kinds, components.Popup.Get(entry).Kind)
	})
	assert.Equal(t, []components.PopupKind{components.PopupLevelUp}, kinds)
}

func TestDeadPlayerEarnsNoExperience(t *testing.T) {
	e, player := newTestWorld(t, testLevel(level.EnemySpawn{Position: gamemath.V(250, 120), Type: "brute"}))
	UpdateDeaths(e)
	coord := components.Player.Get(player).Coordinator
	coord.Vitals().TakeDamage(coord.Vitals().MaxHealth()+1, gamemath.V(1, 0))
	UpdateEvents(e)

	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	enemy := components.Enemy.Get(entry).Coordinator
	enemy.Vitals().TakeDamage(enemy.Vitals().MaxHealth()+1, gamemath.V(1, 0))
	UpdateEvents(e)

	assert.Zero(t, coord.Progression().Experience())
}

func TestWavesStartWhenArenaIsClear(t *testing.T) {
	e, _ := newTestWorld(t, testLevel(
		level.EnemySpawn{Position: gamemath.V(250, 120)},
		level.EnemySpawn{Position: gamemath.V(250, 60), Type: "skirmisher"},
	))

	UpdateDeaths(e)
	assert.Equal(t, 1, scoreOf(e).Wave)
	assert.Equal(t, 2, count(e, tags.Enemy))

	UpdateDeaths(e)
	assert.Equal(t, 1, scoreOf(e).Wave, "no new wave while enemies remain")

	var all []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) { all = append(all, entry) })
	for _, entry := range all {
		factory.RemoveActor(e, entry)
	}

	UpdateDeaths(e)
	assert.Equal(t, 2, scoreOf(e).Wave)
	assert.Equal(t, 2, count(e, tags.Enemy))
	assert.Equal(t, 3, rosterOf(e).Len())
}

func TestNoWavesWithoutSpawns(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	UpdateDeaths(e)
	assert.Zero(t, scoreOf(e).Wave)
	assert.Zero(t, count(e, tags.Enemy))
}

func TestExpiredEnemiesAreDespawned(t *testing.T) {
	e, _ := newTestWorld(t, testLevel(level.EnemySpawn{Position: gamemath.V(250, 120)}))
	UpdateDeaths(e)
	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	enemy := components.Enemy.Get(entry).Coordinator
	id := components.Actor.Get(entry).ID
	factory.CreateTelegraph(e, id, enemy.Position(), 10)

	enemy.Vitals().TakeDamage(enemy.Vitals().MaxHealth(), gamemath.V(1, 0))
	c := enemy.Config()
	ticks := int((c.DeathAnimation+c.CorpseDuration)*float64(cfg.Default().Arena.TPS)) + 2
	for range ticks {
		enemy.Tick(1 / float64(cfg.Default().Arena.TPS))
	}
	require.True(t, enemy.Expired())

	UpdateDeaths(e)
	_, ok = rosterOf(e).Lookup(id)
	assert.False(t, ok)
	assert.Nil(t, factory.FindTelegraph(e, id))
	// the cleared arena immediately gets wave two
	assert.Equal(t, 2, scoreOf(e).Wave)
}

func TestResetArena(t *testing.T) {
	lvl := testLevel(level.EnemySpawn{Position: gamemath.V(250, 120)})
	e, player := newTestWorld(t, lvl)
	UpdateDeaths(e)

	components.Physics.Get(player).Body.SetPosition(gamemath.V(200, 50))
	before, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	oldID := components.Actor.Get(before).ID

	ResetArena(e)
	assert.Equal(t, lvl.PlayerSpawn(), components.Player.Get(player).Coordinator.Position())
	assert.Equal(t, 1, count(e, tags.Enemy))
	after, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	assert.NotEqual(t, oldID, components.Actor.Get(after).ID)
}

func TestControlsToggleSettings(t *testing.T) {
	e, player := newTestWorld(t, testLevel())
	input := getOrCreateInput(e)

	input.Current[cfg.ActionToggleGodMode] = true
	input.Current[cfg.ActionToggleMute] = true
	UpdateControls(e)

	settings := getOrCreateSettings(e)
	assert.True(t, settings.GodMode)
	assert.True(t, settings.Muted)
	assert.True(t, settings.Dirty)
	assert.True(t, components.Player.Get(player).Coordinator.Vitals().GodMode())

	// held keys do not toggle again
	input.Previous = input.Current
	UpdateControls(e)
	assert.True(t, settings.GodMode)

	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionQuit] = true
	UpdateControls(e)
	assert.True(t, components.Arena.Get(components.Arena.MustFirst(e.World)).Quit)
}

func TestPlayerInputAimsByDevice(t *testing.T) {
	in := &components.InputData{
		Cursor: gamemath.V(100, 50),
		Stick:  gamemath.V(0, 1),
	}
	in.Current[cfg.ActionAttack] = true
	in.Current[cfg.ActionShield] = true
	in.Previous[cfg.ActionShield] = true

	got := playerInput(in, gamemath.V(40, 50))
	assert.Equal(t, gamemath.V(60, 0), got.Aim)
	assert.True(t, got.Attack)
	assert.True(t, got.Shield)
	assert.False(t, got.Roll)

	in.LastInputMethod = components.InputGamepad
	assert.Equal(t, gamemath.V(0, 1), playerInput(in, gamemath.V(40, 50)).Aim)
}

func TestMoveVector(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionMoveRight] = true
	in.Current[cfg.ActionMoveUp] = true
	v := moveVector(&in)
	assert.InDelta(t, 1, v.Magnitude(), 1e-9)
	assert.Greater(t, v.X, 0.0)
	assert.Greater(t, v.Y, 0.0)

	in.Current[cfg.ActionMoveLeft] = true
	in.Current[cfg.ActionMoveDown] = true
	assert.Equal(t, gamemath.Vec2{}, moveVector(&in))

	in.Move = gamemath.V(0.3, -0.2)
	assert.Equal(t, gamemath.V(0.3, -0.2), moveVector(&in))
}

func TestPhysicsMovesBodies(t *testing.T) {
	e, player := newTestWorld(t, testLevel())
	body := components.Physics.Get(player).Body
	body.SetVelocity(gamemath.V(60, 0))

	UpdatePhysics(e)
	assert.InDelta(t, 61, body.Position().X, 1e-9)
}

func TestPopupsRiseFadeAndDespawn(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	c := cfg.Default().Effects
	entry := factory.CreatePopup(e, c, components.PopupDamage, "5", gamemath.V(10, 10))
	p := components.Popup.Get(entry)

	UpdateEffects(e)
	assert.Greater(t, p.Offset, 0.0)
	assert.Equal(t, 1.0, p.Alpha)

	ticks := int((c.PopupLifetime + c.PopupFade) * float64(cfg.Default().Arena.TPS))
	for range ticks + 5 {
		UpdateEffects(e)
	}
	assert.Zero(t, count(e, tags.Popup))
	assert.Greater(t, scoreOf(e).Elapsed, 0.0)
}

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func TestSettingsPersistence(t *testing.T) {
	store := &memStore{items: map[string][]byte{}}

	saved, err := LoadSettings(store)
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing saved yet")

	want := &SavedSettings{SFXVolume: 0.4, Muted: true, ShowDebug: true, GodMode: true}
	require.NoError(t, SaveSettings(store, want))

	got, err := LoadSettings(store)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(store.items[settingsKey], &raw))
	assert.Equal(t, 0.4, raw["sfxVolume"])
}

func TestSettingsPersistenceFailures(t *testing.T) {
	saved, err := LoadSettings(nil)
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveSettings(nil, &SavedSettings{}))

	broken := &memStore{items: map[string][]byte{settingsKey: []byte("{not json")}}
	_, err = LoadSettings(broken)
	assert.Error(t, err)

	failing := &memStore{err: errors.New("disk full")}
	saved, err = LoadSettings(failing)
	assert.NoError(t, err, "unreadable settings fall back to defaults")
	assert.Nil(t, saved)
	assert.Error(t, SaveSettings(failing, &SavedSettings{}))
}

func TestFailedSettingsSaveIsLogged(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())
	var buf bytes.Buffer
	components.Arena.Get(components.Arena.MustFirst(e.World)).Logger = slog.New(slog.NewTextHandler(&buf, nil))

	s := getOrCreateSettings(e)
	s.Dirty = true
	persistSettings(e, &memStore{err: errors.New("disk full")})

	assert.False(t, s.Dirty)
	assert.Contains(t, buf.String(), "saving settings failed")
	assert.Contains(t, buf.String(), "disk full")

	buf.Reset()
	store := &memStore{items: map[string][]byte{}}
	s.Dirty = true
	persistSettings(e, store)
	assert.Empty(t, buf.String())
	assert.Contains(t, store.items, settingsKey)
}

func TestApplySavedSettings(t *testing.T) {
	e, player := newTestWorld(t, testLevel())

	ApplySavedSettings(e, &SavedSettings{SFXVolume: 0.25, ShowDebug: true, GodMode: true})
	s := getOrCreateSettings(e)
	assert.Equal(t, 0.25, s.Volume())
	assert.True(t, s.ShowDebug)
	assert.False(t, s.Dirty)
	assert.True(t, components.Player.Get(player).Coordinator.Vitals().GodMode())

	assert.Equal(t, &SavedSettings{SFXVolume: 0.25, ShowDebug: true, GodMode: true}, SnapshotSettings(s))

	ApplySavedSettings(e, nil)
	assert.Equal(t, 0.25, s.SFXVolume)
}

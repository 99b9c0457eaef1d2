// Package scenes assembles the ECS world for a match and drives it from the
// ebiten game loop.
package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/archetypes"
	"github.com/automoto/shieldbearer/assets"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/level"
	"github.com/automoto/shieldbearer/systems"
	"github.com/automoto/shieldbearer/systems/factory"
)

// WorldOptions are the inputs of NewWorld.
type WorldOptions struct {
	Config     *cfg.Config
	Level      *level.Arena
	Background *ebiten.Image // optional
	Dice       combat.Dice   // defaults to a PCG seeded from Config.Arena.Seed
	Logger     *slog.Logger
}

// NewWorld builds a ready-to-run match: systems in tick order, renderers,
// event handlers, the arena singletons and the player. The first update
// spawns wave one.
func NewWorld(opts WorldOptions) *ecs.ECS {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Dice == nil {
		opts.Dice = NewDice(opts.Config.Arena.Seed)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Input and meta keys first
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateControls)

	// Coordinators set velocities and publish feedback; physics then moves
	// bodies and the queued events are handled once everyone has ticked.
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTeleports)
	e.AddSystem(systems.UpdateEvents)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateEffects)

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateSettings)

	e.AddRenderer(archetypes.LayerDefault, systems.DrawArena)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawTelegraphs)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawActors)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawPopups)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)

	systems.SubscribeEvents(e)

	arena := factory.CreateArena(e, opts.Level, opts.Config, opts.Dice, opts.Logger, systems.NewHooks(e.World))
	components.Arena.Get(arena).Background = opts.Background
	factory.CreateSpace(e, opts.Level, opts.Config.Arena)
	factory.CreatePlayer(e, opts.Level.PlayerSpawn())

	return e
}

// NewDice returns the match's random source. A zero seed picks one at random.
func NewDice(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ArenaScene runs one arena and rebuilds it whenever the config file
// changes on disk.
type ArenaScene struct {
	ecs        *ecs.ECS
	config     *cfg.Config
	configPath string
	levels     fs.FS // nil means the embedded levels
	watcher    *cfg.Watcher
	logger     *slog.Logger
	once       sync.Once
	err        error
}

// NewArenaScene creates a scene for c. configPath may be empty, in which
// case hot reload is off.
func NewArenaScene(c *cfg.Config, configPath string, logger *slog.Logger) *ArenaScene {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArenaScene{config: c, configPath: configPath, logger: logger}
}

func (s *ArenaScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.pollReload()
	s.ecs.Update()

	if arena, ok := components.Arena.First(s.ecs.World); ok && components.Arena.Get(arena).Quit {
		return ebiten.Termination
	}
	return nil
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Close stops the config watcher.
func (s *ArenaScene) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		s.logger.Warn("flash shader unavailable", "err", err)
	}

	s.ecs, s.err = s.build(s.config)
	if s.err != nil {
		return
	}
	saved, _ := systems.LoadSettings(systems.Store())
	systems.ApplySavedSettings(s.ecs, saved)

	if s.configPath == "" {
		return
	}
	w, err := cfg.NewWatcher(s.configPath)
	if err != nil {
		s.logger.Warn("config hot reload disabled", "path", s.configPath, "err", err)
		return
	}
	s.watcher = w
}

func (s *ArenaScene) build(c *cfg.Config) (*ecs.ECS, error) {
	lvl, err := assets.LoadArena(s.levels, c.Arena.Level)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	bg, err := assets.RenderBackground(s.levels, c.Arena.Level)
	if err != nil {
		s.logger.Warn("arena background unavailable", "level", c.Arena.Level, "err", err)
	}

	s.logger.Info("arena loaded",
		"level", lvl.Name,
		"obstacles", len(lvl.Obstacles),
		"enemies", len(lvl.EnemySpawns),
	)
	return NewWorld(WorldOptions{
		Config:     c,
		Level:      lvl,
		Background: bg,
		Logger:     s.logger,
	}), nil
}

// pollReload drains the watcher without blocking and swaps in a freshly
// built world when the new config is valid. The running match is kept on
// any error.
func (s *ArenaScene) pollReload() {
	if s.watcher == nil {
		return
	}
	select {
	case path, ok := <-s.watcher.Events:
		if !ok {
			s.watcher = nil
			return
		}
		s.reload(path)
	case err, ok := <-s.watcher.Errors:
		if ok {
			s.logger.Warn("config watcher", "err", err)
		}
	default:
	}
}

func (s *ArenaScene) reload(path string) {
	c, err := cfg.LoadFile(path)
	if err != nil {
		s.logger.Error("config reload rejected", "path", path, "err", err)
		return
	}
	next, err := s.build(c)
	if err != nil {
		s.logger.Error("arena rebuild failed", "err", err)
		return
	}

	if old, ok := components.Settings.First(s.ecs.World); ok {
		systems.ApplySavedSettings(next, systems.SnapshotSettings(components.Settings.Get(old)))
	}
	s.config = c
	s.ecs = next
	ebiten.SetTPS(c.Arena.TPS)
	s.logger.Info("config reloaded", "path", path)
}

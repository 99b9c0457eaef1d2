package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/shieldbearer/assets"
	"github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/fonts"
	"github.com/automoto/shieldbearer/level"
	"github.com/automoto/shieldbearer/scenes"
	"github.com/automoto/shieldbearer/systems"
)

const (
	appName  = "shieldbearer"
	levelDir = "levels"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file overlaid on the defaults (hot reloaded)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	levelName := flag.String("level", "", "embedded arena name in levels/ (basename, .tmx optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			logger.Error("could not load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *levelName != "" {
		p, err := embeddedLevel(*levelName)
		if err != nil {
			logger.Error("unknown level", "level", *levelName, "err", err)
			os.Exit(1)
		}
		cfg.Arena.Level = p
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Error("could not load fonts", "err", err)
		os.Exit(1)
	}

	systems.InitAudio(cfg.Audio.SampleRate)
	systems.PreloadAllSFX()

	// Initialize persistence; settings are applied when the scene starts
	if err := systems.InitPersistence(appName); err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}

	ebiten.SetWindowTitle("Shieldbearer")
	ebiten.SetWindowSize(cfg.Arena.Width*2, cfg.Arena.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Arena.TPS)

	scene := scenes.NewArenaScene(cfg, *configPath, logger)
	game := &Game{scene: scene, width: cfg.Arena.Width, height: cfg.Arena.Height}
	err := ebiten.RunGame(game)
	_ = scene.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// embeddedLevel resolves an arena name against the embedded levels.
func embeddedLevel(name string) (string, error) {
	_, names, err := level.LoadAll(assets.Levels(), levelDir)
	if err != nil {
		return "", err
	}
	name = strings.TrimSuffix(name, ".tmx")
	for _, n := range names {
		if n == name {
			return path.Join(levelDir, name+".tmx"), nil
		}
	}
	return "", fmt.Errorf("have %s", strings.Join(names, ", "))
}

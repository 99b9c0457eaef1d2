package systems

import (
	"encoding/json"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
	ShowDebug  bool    `json:"showDebug"`
	GodMode    bool    `json:"godMode"`
}

// SettingsStore reads and writes raw items. *gdata.Manager satisfies it.
type SettingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var settingsStore SettingsStore

// Store returns the store opened by InitPersistence, or nil.
func Store() SettingsStore {
	return settingsStore
}

// InitPersistence opens the gdata store for settings. Without it settings
// live for the session only.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		slog.Warn("could not initialize persistence", "err", err)
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from store. A nil result means nothing was
// saved yet.
func LoadSettings(store SettingsStore) (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		slog.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		slog.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to store.
func SaveSettings(store SettingsStore, s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return store.SaveItem(settingsKey, data)
}

// ApplySavedSettings copies saved settings into the Settings singleton.
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := getOrCreateSettings(ecs)
	settings.SFXVolume = saved.SFXVolume
	settings.Muted = saved.Muted
	settings.Fullscreen = saved.Fullscreen
	settings.ShowDebug = saved.ShowDebug
	settings.GodMode = saved.GodMode
	settings.Dirty = false
	applyGodMode(ecs)
}

// UpdateSettings applies display settings and saves whenever something
// changed.
func UpdateSettings(ecs *ecs.ECS) {
	settings := getOrCreateSettings(ecs)
	if ebiten.IsFullscreen() != settings.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	persistSettings(ecs, settingsStore)
}

// persistSettings saves dirty settings to store. A failed save is logged and
// retried on the next change.
func persistSettings(ecs *ecs.ECS, store SettingsStore) {
	settings := getOrCreateSettings(ecs)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	if err := SaveSettings(store, SnapshotSettings(settings)); err != nil {
		logger := slog.Default()
		if arena, ok := arenaOf(ecs); ok {
			logger = arena.Logger
		}
		logger.Warn("saving settings failed", "err", err)
	}
}

// SnapshotSettings copies the persisted fields of the Settings singleton.
func SnapshotSettings(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		ShowDebug:  s.ShowDebug,
		GodMode:    s.GodMode,
	}
}

// getOrCreateSettings returns the Settings singleton, creating it with the
// configured defaults.
func getOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		volume := cfg.DefaultAudio().SFXVolume
		if arena, ok := arenaOf(ecs); ok {
			volume = arena.Config.Audio.SFXVolume
		}
		components.Settings.SetValue(entry, components.SettingsData{SFXVolume: volume})
	}
	return components.Settings.Get(entry)
}

package systems

import (
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/assets"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
)

// Global audio state - created once and shared across scene rebuilds, since
// ebiten allows a single audio context per process.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context at the given sample rate. Only the
// first call has any effect.
func InitAudio(sampleRate int) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(sampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	if globalAudioLoader == nil {
		return
	}
	for id, path := range cfg.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			slog.Warn("could not preload sound", "sound", id, "path", path, "err", err)
		}
	}
}

// UpdateAudio plays the sounds queued this tick. Without an audio context
// the queue is simply drained.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	volume := getOrCreateSettings(e).Volume()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if globalAudioLoader == nil || volume <= 0 {
		return
	}

	path, ok := cfg.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	if mult, ok := cfg.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

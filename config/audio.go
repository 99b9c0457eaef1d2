package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSwing
	SoundHit
	SoundCritical
	SoundBlock
	SoundMiss
	SoundHurt
	SoundDeath
	SoundRoll
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	SFXVolume  float64 `yaml:"sfx_volume"` // default before saved settings apply
}

// SFXPaths maps sound IDs to embedded asset paths.
var SFXPaths = map[SoundID]string{
	SoundSwing:    "audio/sfx/swing.wav",
	SoundHit:      "audio/sfx/hit.wav",
	SoundCritical: "audio/sfx/critical.wav",
	SoundBlock:    "audio/sfx/block.wav",
	SoundMiss:     "audio/sfx/miss.wav",
	SoundHurt:     "audio/sfx/hurt.wav",
	SoundDeath:    "audio/sfx/death.wav",
	SoundRoll:     "audio/sfx/roll.wav",
}

// VolumeMultipliers boosts quiet effects relative to the SFX volume.
var VolumeMultipliers = map[SoundID]float64{
	SoundHit:      1.5,
	SoundCritical: 1.5,
}

func DefaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}
}

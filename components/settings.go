package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player preferences (singleton).
type SettingsData struct {
	SFXVolume  float64
	Muted      bool
	Fullscreen bool
	ShowDebug  bool
	GodMode    bool
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()

// Volume is the effective SFX volume after muting.
func (s *SettingsData) Volume() float64 {
	if s.Muted {
		return 0
	}
	return s.SFXVolume
}

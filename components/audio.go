package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/shieldbearer/config"
)

// AudioData queues sound effects for the audio system (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue schedules a sound for the next audio update.
func (a *AudioData) Queue(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

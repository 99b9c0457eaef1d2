package components

import "github.com/yohamta/donburi"

// ScoreData tracks the run's statistics (singleton).
type ScoreData struct {
	Kills       int
	Deaths      int
	KillsByType map[string]int
	Blocks      int
	Wave        int
	Elapsed     float64 // seconds since the last full reset
}

var Score = donburi.NewComponentType[ScoreData]()

// AddKill records a defeated enemy of the given type.
func (s *ScoreData) AddKill(enemyType string) {
	s.Kills++
	if s.KillsByType == nil {
		s.KillsByType = make(map[string]int)
	}
	s.KillsByType[enemyType]++
}

package combat

import (
	"math"

	"github.com/automoto/shieldbearer/config"
)

// Progression tracks the player's experience, level and attributes.
type Progression struct {
	cfg        config.ProgressionConfig
	stats      config.StatsConfig
	experience int
	toNext     int
}

// NewProgression starts at stats.Level, or level 1 when no level is set.
func NewProgression(cfg config.ProgressionConfig, stats config.StatsConfig) *Progression {
	stats.Level = max(stats.Level, 1)
	return &Progression{
		cfg:    cfg,
		stats:  stats,
		toNext: max(cfg.ExperienceToNextLevel, 1),
	}
}

func (p *Progression) Level() int                 { return p.stats.Level }
func (p *Progression) Experience() int            { return p.experience }
func (p *Progression) ExperienceToNextLevel() int { return p.toNext }
func (p *Progression) Stats() config.StatsConfig  { return p.stats }

// AddExperience adds xp and levels up as many times as it covers. The
// remainder carries over and each level costs Growth times the previous
// one. It returns the number of levels gained.
func (p *Progression) AddExperience(xp int) int {
	if xp <= 0 {
		return 0
	}
	p.experience += xp

	levels := 0
	for p.experience >= p.toNext {
		p.experience -= p.toNext
		p.toNext = max(int(math.Round(float64(p.toNext)*p.cfg.Growth)), 1)
		p.stats.LevelUp(p.cfg)
		levels++
	}
	return levels
}

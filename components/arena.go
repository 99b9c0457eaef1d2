package components

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/level"
)

// ArenaData is the running match: the loaded map, the tuning it was built
// with and the shared collaborators (singleton).
type ArenaData struct {
	Level      *level.Arena
	Config     *cfg.Config
	Background *ebiten.Image // nil in headless tests
	Dice       combat.Dice
	Logger     *slog.Logger
	Hooks      Hooks
	Quit       bool
}

var Arena = donburi.NewComponentType[ArenaData]()

// DT is the fixed tick length in seconds.
func (a *ArenaData) DT() float64 {
	return 1 / float64(a.Config.Arena.TPS)
}

// Hooks are the presentation sinks handed to every coordinator. Nil fields
// fall back to the coordinators' no-op defaults.
type Hooks struct {
	Telegraphs combat.TelegraphSink
	Effects    combat.EffectSink
	Listen     func(id combat.ActorID, tag combat.Tag) combat.VitalsListener
}

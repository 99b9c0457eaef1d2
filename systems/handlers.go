package systems

import (
	"strconv"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/systems/factory"
	"github.com/automoto/shieldbearer/tags"
)

const (
	blockedText = "BLOCK"
	missedText  = "MISS"
	levelUpText = "LEVEL UP"
)

// SubscribeEvents wires the world's event handlers. Call once per world.
func SubscribeEvents(ecs *ecs.ECS) {
	TelegraphEvents.Subscribe(ecs.World, func(_ donburi.World, e TelegraphEvent) {
		onTelegraph(ecs, e)
	})
	StrikeEvents.Subscribe(ecs.World, func(_ donburi.World, e StrikeEvent) {
		onStrike(ecs, e)
	})
	HurtEvents.Subscribe(ecs.World, func(_ donburi.World, e HurtEvent) {
		onHurt(ecs, e)
	})
	DeathEvents.Subscribe(ecs.World, func(_ donburi.World, e DeathEvent) {
		onDeath(ecs, e)
	})
}

func onTelegraph(ecs *ecs.ECS, e TelegraphEvent) {
	if e.Visible {
		factory.CreateTelegraph(ecs, e.Owner, e.At, e.Radius)
		return
	}
	factory.RemoveTelegraph(ecs, e.Owner)
}

func onStrike(ecs *ecs.ECS, e StrikeEvent) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	effects := arena.Config.Effects

	switch e.Kind {
	case StrikeHit:
		factory.CreatePopup(ecs, effects, components.PopupDamage, strconv.Itoa(e.Amount), e.At)
		queueSound(ecs, cfg.SoundHit)
	case StrikeCritical:
		factory.CreatePopup(ecs, effects, components.PopupCritical, strconv.Itoa(e.Amount)+"!", e.At)
		queueSound(ecs, cfg.SoundCritical)
	case StrikeBlocked:
		factory.CreatePopup(ecs, effects, components.PopupBlocked, blockedText, e.At)
		queueSound(ecs, cfg.SoundBlock)
		scoreOf(ecs).Blocks++
		if entry, ok := actorEntry(ecs, e.Blocker); ok {
			flash(entry, effects.BlockFlash, cfg.BlockFlashColor)
		}
	case StrikeMissed:
		factory.CreatePopup(ecs, effects, components.PopupMissed, missedText, e.At)
		queueSound(ecs, cfg.SoundMiss)
	}
}

func onHurt(ecs *ecs.ECS, e HurtEvent) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	entry, ok := actorEntry(ecs, e.Actor)
	if !ok {
		return
	}
	flash(entry, arena.Config.Effects.HurtFlash, cfg.FlashColor)
	queueSound(ecs, cfg.SoundHurt)
}

// flash tints the actor's sprite toward fc for duration seconds.
func flash(entry *donburi.Entry, duration float64, fc [3]float32) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{
		Remaining: duration,
		Duration:  duration,
		R:         fc[0],
		G:         fc[1],
		B:         fc[2],
	})
}

func onDeath(ecs *ecs.ECS, e DeathEvent) {
	arena, ok := arenaOf(ecs)
	if !ok {
		return
	}
	queueSound(ecs, cfg.SoundDeath)
	entry, ok := actorEntry(ecs, e.Actor)
	if !ok {
		return
	}

	score := scoreOf(ecs)
	switch e.Tag {
	case combat.TagPlayer:
		score.Deaths++
		if !entry.HasComponent(components.Death) {
			entry.AddComponent(components.Death)
		}
		components.Death.SetValue(entry, components.DeathData{Timer: arena.Config.Arena.PlayerRespawn})
		arena.Logger.Info("player died", "pose", e.Pose, "deaths", score.Deaths)
	case combat.TagEnemy:
		enemy := components.Enemy.Get(entry)
		score.AddKill(enemy.TypeName)
		arena.Logger.Info("enemy died", "actor", e.Actor, "type", enemy.TypeName, "kills", score.Kills)
		awardExperience(ecs, arena, arena.Config.Enemy.Type(enemy.TypeName).Experience)
	}
}

// awardExperience credits a kill to the living player and pops a marker
// over them on a level up.
func awardExperience(ecs *ecs.ECS, arena *components.ArenaData, xp int) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Player.Get(entry).Coordinator
	if c.Vitals().Dead() {
		return
	}
	if c.GainExperience(xp) > 0 {
		factory.CreatePopup(ecs, arena.Config.Effects, components.PopupLevelUp, levelUpText, c.Position())
	}
}

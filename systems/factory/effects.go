package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/shieldbearer/archetypes"
	"github.com/automoto/shieldbearer/assets/animations"
	"github.com/automoto/shieldbearer/combat"
	"github.com/automoto/shieldbearer/components"
	cfg "github.com/automoto/shieldbearer/config"
	"github.com/automoto/shieldbearer/gamemath"
	"github.com/automoto/shieldbearer/tags"
)

// telegraphBlink alternates the marker between two shades.
const telegraphBlink = 0.1

// CreateTelegraph shows the warning marker of owner's swing. An owner has at
// most one marker; showing again moves the existing one.
func CreateTelegraph(ecs *ecs.ECS, owner combat.ActorID, at gamemath.Vec2, radius float64) *donburi.Entry {
	if entry := FindTelegraph(ecs, owner); entry != nil {
		t := components.Telegraph.Get(entry)
		t.At = at
		t.Radius = radius
		return entry
	}

	telegraph := archetypes.Telegraph.Spawn(ecs)
	components.Telegraph.SetValue(telegraph, components.TelegraphData{
		Owner:  owner,
		At:     at,
		Radius: radius,
		Blink:  animations.NewCycle(0, 1, telegraphBlink),
	})
	return telegraph
}

func FindTelegraph(ecs *ecs.ECS, owner combat.ActorID) *donburi.Entry {
	var found *donburi.Entry
	tags.Telegraph.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Telegraph.Get(e).Owner == owner {
			found = e
		}
	})
	return found
}

// RemoveTelegraph hides owner's marker if it has one.
func RemoveTelegraph(ecs *ecs.ECS, owner combat.ActorID) {
	if entry := FindTelegraph(ecs, owner); entry != nil {
		ecs.World.Remove(entry.Entity())
	}
}

// CreatePopup spawns a floating combat text at a world position. It rises
// with an ease-out over its whole life and fades once the lifetime elapses.
func CreatePopup(ecs *ecs.ECS, c cfg.EffectsConfig, kind components.PopupKind, text string, at gamemath.Vec2) *donburi.Entry {
	popup := archetypes.Popup.Spawn(ecs)
	life := float32(c.PopupLifetime + c.PopupFade)
	components.Popup.SetValue(popup, components.PopupData{
		Kind:   kind,
		Text:   text,
		Origin: at,
		Rise:   gween.New(0, float32(c.PopupRise), life, ease.OutCubic),
		Fade:   gween.New(1, 0, float32(c.PopupFade), ease.Linear),
		Alpha:  1,
	})
	return popup
}

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/combat"
)

// ActorRoster maps actor IDs to their coordinators and entities. Coordinators
// hold it by pointer, so component storage only ever keeps the pointer.
type ActorRoster struct {
	combatants map[combat.ActorID]combat.Combatant
	entities   map[combat.ActorID]donburi.Entity
	next       combat.ActorID
}

var _ combat.Roster = (*ActorRoster)(nil)

func NewRoster() *ActorRoster {
	return &ActorRoster{
		combatants: make(map[combat.ActorID]combat.Combatant),
		entities:   make(map[combat.ActorID]donburi.Entity),
	}
}

// NextID hands out actor IDs starting at 1.
func (r *ActorRoster) NextID() combat.ActorID {
	r.next++
	return r.next
}

func (r *ActorRoster) Add(c combat.Combatant, e donburi.Entity) {
	r.combatants[c.ID()] = c
	r.entities[c.ID()] = e
}

func (r *ActorRoster) Remove(id combat.ActorID) {
	delete(r.combatants, id)
	delete(r.entities, id)
}

func (r *ActorRoster) Lookup(id combat.ActorID) (combat.Combatant, bool) {
	c, ok := r.combatants[id]
	return c, ok
}

func (r *ActorRoster) Entity(id combat.ActorID) (donburi.Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

func (r *ActorRoster) Len() int { return len(r.combatants) }

type RosterData struct {
	*ActorRoster
}

var Roster = donburi.NewComponentType[RosterData]()

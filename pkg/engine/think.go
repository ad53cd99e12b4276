package engine

import (
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
)

// think computes one animate NPC's command for this turn: descend the
// faction-appropriate goal field toward the nearest opposing entity, and
// clash if the step would land on one.
func (e *Engine) think(ent *entity.Entity) entity.Command {
	field := e.EvilToGood
	if ent.Variant.Evil() {
		field = e.GoodToPlayer
	}
	if field == nil {
		return entity.Command{Kind: entity.None, Source: ent.Position}
	}

	// Allies block a step (no swapping places); an enemy in the way is a
	// valid descend target, since think() converts it to a Clash below.
	blocked := func(pos geom.Offset) bool {
		occupant, ok := e.Registry.At(pos)
		return ok && occupant.Alive() && e.sameFaction(ent, occupant)
	}

	next, ok := field.Descend(ent.Position, blocked)
	if !ok {
		return entity.Command{Kind: entity.None, Source: ent.Position}
	}

	if occupant, ok := e.Registry.At(next); ok && occupant.Alive() && !e.sameFaction(ent, occupant) {
		return entity.Command{Kind: entity.Clash, Source: ent.Position, Target: next}
	}

	return entity.Command{Kind: entity.Move, Source: ent.Position, Target: next}
}

func (e *Engine) sameFaction(a, b *entity.Entity) bool {
	return a.Variant.Good() == b.Variant.Good() && a.Variant.Evil() == b.Variant.Evil()
}

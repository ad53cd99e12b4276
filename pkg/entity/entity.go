package entity

import "github.com/ryanlockhart/bleak/pkg/geom"

// Entity is one instance of a Variant. Fields unused by a given variant
// simply stay at their zero value — Fresh only matters for Skull, Energy
// and Piety only for Player and the good NPC variants that cast.
type Entity struct {
	Variant  Variant
	Position geom.Offset

	HP, MaxHP int
	Armor     int
	Energy    int
	Piety     int

	// Fresh distinguishes a just-created Skull (convertible by invocation)
	// from a rotted one. SpawnImmunity is the separate counter that keeps a
	// newly spawned animate NPC out of dispatch, per §4.H step 8.
	Fresh         bool
	SpawnImmunity int

	// LadderDown distinguishes a down-ladder (descends the player) from an
	// up-ladder (a good-NPC spawn point), both stored as Variant Ladder.
	LadderDown bool
	// Shackled marks an up-ladder as currently unusable for spawning.
	Shackled bool

	seq int // insertion order, used only for dispatch tie-break
}

// Alive reports whether the entity still has hit points. Inanimate
// variants (Skull, Ladder) are always considered alive.
func (e *Entity) Alive() bool {
	if !e.Variant.Animate() {
		return true
	}
	return e.HP > 0
}

// Thinker is the NPC AI hook, supplied per call site by the turn pipeline's NPC AI; the
// registry itself only stores and dispatches commands, it does not decide
// them. A stub here documents the hook without requiring the pipeline to
// know entity internals.
type Thinker func(e *Entity) Command

package entity

// Variant names one branch of the entity sum type. Go has no tagged-union
// syntax, so each variant's fields live side by side on Entity instead of
// in a separate record; Variant is the tag that says which of them are
// meaningful for a given instance.
type Variant int

const (
	Player Variant = iota
	Skeleton
	Wraith
	FleshGolem
	Adventurer
	Paladin
	Priest
	Skull
	Ladder
)

func (v Variant) String() string {
	switch v {
	case Player:
		return "player"
	case Skeleton:
		return "skeleton"
	case Wraith:
		return "wraith"
	case FleshGolem:
		return "flesh golem"
	case Adventurer:
		return "adventurer"
	case Paladin:
		return "paladin"
	case Priest:
		return "priest"
	case Skull:
		return "skull"
	case Ladder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Trait tags a Variant's faction and turn participation, per §3's "Trait
// tags: animate, good/evil, inanimate".
type Trait uint8

const (
	Animate Trait = 1 << iota
	Good
	Evil
	Inanimate
)

// Traits returns the fixed trait bitmask for v.
func (v Variant) Traits() Trait {
	switch v {
	case Player:
		return Animate | Good
	case Skeleton, Wraith, FleshGolem:
		return Animate | Evil
	case Adventurer, Paladin, Priest:
		return Animate | Good
	case Skull, Ladder:
		return Inanimate
	default:
		return 0
	}
}

// Animate reports whether v takes turns in the dispatch order.
func (v Variant) Animate() bool { return v.Traits()&Animate != 0 }

// Good reports whether v belongs to the player's faction.
func (v Variant) Good() bool { return v.Traits()&Good != 0 }

// Evil reports whether v belongs to the undead faction.
func (v Variant) Evil() bool { return v.Traits()&Evil != 0 }

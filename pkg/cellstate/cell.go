package cellstate

import "strings"

// Trait is one of the boolean flags packed into a Cell.
type Trait uint32

const (
	Solid Trait = 1 << iota
	Opaque
	Seen
	Explored
	Damp
	Warm
	Smooth
	Protrudes
	Smelly
	Toxic
	Bloodied
)

// Open is the absence of Solid; it exists only for readability at call
// sites, e.g. cell.Set(Open) clears the Solid bit rather than setting one.
const Open Trait = 0

var traitNames = map[Trait]string{
	Solid: "solid", Opaque: "opaque", Seen: "seen", Explored: "explored",
	Damp: "damp", Warm: "warm", Smooth: "smooth", Protrudes: "protrudes",
	Smelly: "smelly", Toxic: "toxic", Bloodied: "bloodied",
}

// Cell is a per-tile record: eleven boolean traits plus a rock type and a
// mineral type. The booleans share one explicit bitmask (one bit each);
// RockType and MineralType are kept in their own byte-sized fields, so the
// record is not packed into a single 16-bit word.
type Cell struct {
	traits  Trait
	rock    RockType
	mineral MineralType
}

// ClosedSentinel is the value returned for any out-of-bounds zone read: a
// solid, opaque wall that is never seen or explored. §4.B's failure model
// requires neighbourhood scans to treat out-of-bounds as a closed cell
// without a bounds check at the call site.
var ClosedSentinel = Cell{traits: Solid | Opaque}

// Has reports whether every bit in mask is set.
func (c Cell) Has(mask Trait) bool {
	return c.traits&mask == mask
}

// Set turns on every bit in mask. Setting Open (the zero trait) clears
// Solid, matching the mutually-exclusive Open/Solid pair called out in
// §4.D.
func (c Cell) Set(mask Trait) Cell {
	if mask == Open {
		c.traits &^= Solid
		return c
	}
	c.traits |= mask
	return c
}

// Unset turns off every bit in mask.
func (c Cell) Unset(mask Trait) Cell {
	c.traits &^= mask
	return c
}

// Toggle flips every bit in mask.
func (c Cell) Toggle(mask Trait) Cell {
	c.traits ^= mask
	return c
}

func (c Cell) Solid() bool     { return c.Has(Solid) }
func (c Cell) Opaque() bool    { return c.Has(Opaque) }
func (c Cell) Seen() bool      { return c.Has(Seen) }
func (c Cell) Explored() bool  { return c.Has(Explored) }
func (c Cell) Passable() bool  { return !c.Solid() }
func (c Cell) Transparent() bool { return !c.Opaque() }

// RockType returns the cell's rock classification.
func (c Cell) RockType() RockType { return c.rock }

// WithRockType returns a copy of c with its rock type replaced.
func (c Cell) WithRockType(r RockType) Cell {
	c.rock = r
	return c
}

// MineralType returns the cell's mineral tag.
func (c Cell) MineralType() MineralType { return c.mineral }

// WithMineralType returns a copy of c with its mineral tag replaced.
func (c Cell) WithMineralType(m MineralType) Cell {
	c.mineral = m
	return c
}

// Tooltip produces a human-readable description of the cell's packed
// state, e.g. "solid granite wall, smooth, bearing native gold".
func (c Cell) Tooltip() string {
	var b strings.Builder

	if c.Solid() {
		b.WriteString("solid ")
		b.WriteString(c.rock.String())
		b.WriteString(" wall")
	} else {
		b.WriteString("open floor")
	}

	var extra []string
	for _, t := range []Trait{Damp, Warm, Smooth, Protrudes, Smelly, Toxic, Bloodied} {
		if c.Has(t) {
			extra = append(extra, traitNames[t])
		}
	}
	if len(extra) > 0 {
		b.WriteString(", ")
		b.WriteString(strings.Join(extra, ", "))
	}

	if c.mineral != NoMineral {
		b.WriteString(", bearing ")
		b.WriteString(c.mineral.String())
	}

	return b.String()
}

package geom

import "fmt"

// Offset is a signed 2-D integer vector. Component ordering is deliberately
// undefined; Offset is meant for hashing and arithmetic, not sorting.
type Offset struct {
	X, Y int
}

// Central is the zero offset, returned by direction and neighbour lookups
// when there is nothing meaningful to report.
var Central = Offset{}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.X + other.X, o.Y + other.Y}
}

// Sub returns the component-wise difference of o and other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{o.X - other.X, o.Y - other.Y}
}

// Scale returns o with each component multiplied by k.
func (o Offset) Scale(k int) Offset {
	return Offset{o.X * k, o.Y * k}
}

// Negate returns the component-wise negation of o.
func (o Offset) Negate() Offset {
	return Offset{-o.X, -o.Y}
}

// Equals reports whether o and other have identical components.
func (o Offset) Equals(other Offset) bool {
	return o.X == other.X && o.Y == other.Y
}

// String renders the offset as "(x,y)".
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.X, o.Y)
}

// North, South, East, West, and the four diagonals are the eight named
// unit neighbours, listed in the canonical scan order used throughout the
// engine: N, S, W, E, then NW, NE, SW, SE.
var (
	North = Offset{0, -1}
	South = Offset{0, 1}
	West  = Offset{-1, 0}
	East  = Offset{1, 0}

	Northwest = North.Add(West)
	Northeast = North.Add(East)
	Southwest = South.Add(West)
	Southeast = South.Add(East)
)

// CardinalNeighbourOffsets lists the 4 orthogonal unit offsets in canonical
// order: N, S, W, E.
var CardinalNeighbourOffsets = [4]Offset{North, South, West, East}

// OrdinalNeighbourOffsets lists the 4 diagonal unit offsets in canonical
// order: NW, NE, SW, SE.
var OrdinalNeighbourOffsets = [4]Offset{Northwest, Northeast, Southwest, Southeast}

// MooreNeighbourOffsets lists all 8 unit offsets in canonical order:
// N, S, W, E, NW, NE, SW, SE.
var MooreNeighbourOffsets = [8]Offset{North, South, West, East, Northwest, Northeast, Southwest, Southeast}

// Direction returns the cardinal describing the sign of each component of
// (to - from), collapsed onto the bitset. Coincident points return Central.
func Direction(from, to Offset) Cardinal {
	d := to.Sub(from)

	var c Cardinal
	if d.Y < 0 {
		c |= CardinalNorth
	} else if d.Y > 0 {
		c |= CardinalSouth
	}
	if d.X < 0 {
		c |= CardinalWest
	} else if d.X > 0 {
		c |= CardinalEast
	}
	return c
}

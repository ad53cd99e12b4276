package area

import (
	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// Area is an unordered set of offsets with O(1) membership. It backs room
// carving, FOV results, and bulk trait writes.
type Area struct {
	members map[geom.Offset]struct{}
}

// New builds an Area from an explicit slice of offsets.
func New(offsets []geom.Offset) *Area {
	a := &Area{members: make(map[geom.Offset]struct{}, len(offsets))}
	for _, o := range offsets {
		a.members[o] = struct{}{}
	}
	return a
}

// Empty returns a zero-member Area.
func Empty() *Area {
	return &Area{members: make(map[geom.Offset]struct{})}
}

// FloodFillFrom builds an Area from every cell 8-connected-reachable from
// start for which match holds, e.g. carving a room apart from the rest of
// the interior.
func FloodFillFrom(z *zone.CellZone, start geom.Offset, match func(cellstate.Cell) bool) *Area {
	offsets := zone.FloodFill(z.Size(), start, func(pos geom.Offset) bool {
		return match(z.At(pos))
	})
	return New(offsets)
}

// Matching builds an Area from every offset in region satisfying match,
// without regard to connectivity.
func Matching(z *zone.CellZone, region zone.Region, match func(cellstate.Cell) bool) *Area {
	var offsets []geom.Offset
	for _, pos := range z.Offsets(region) {
		if match(z.At(pos)) {
			offsets = append(offsets, pos)
		}
	}
	return New(offsets)
}

// Contains reports whether pos is a member.
func (a *Area) Contains(pos geom.Offset) bool {
	_, ok := a.members[pos]
	return ok
}

// Len returns the member count.
func (a *Area) Len() int {
	return len(a.members)
}

// Offsets returns every member, in unspecified order.
func (a *Area) Offsets() []geom.Offset {
	out := make([]geom.Offset, 0, len(a.members))
	for o := range a.members {
		out = append(out, o)
	}
	return out
}

// Set writes trait to every member cell of z. Applying the same Set twice
// with the same trait is idempotent: the resulting zone state after two
// calls equals the state after one.
func (a *Area) Set(z *zone.CellZone, trait cellstate.Trait) {
	for pos := range a.members {
		z.Set(pos, z.At(pos).Set(trait))
	}
}

// Unset clears trait from every member cell of z.
func (a *Area) Unset(z *zone.CellZone, trait cellstate.Trait) {
	for pos := range a.members {
		z.Set(pos, z.At(pos).Unset(trait))
	}
}

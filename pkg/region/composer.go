package region

import (
	"errors"
	"fmt"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// ErrNoOpenCell is the one fatal generation error the engine ever returns
// (§7.1): after carving and largest-component selection, no cell remains
// for the player to stand on.
var ErrNoOpenCell = errors.New("region: no open cell survived generation")

// Composer tiles Rw x Rh sub-zones, each zoneSize in extent, into one
// composed map of size zoneSize * (Rw, Rh), wrapped in its own outer
// border.
type Composer struct {
	zoneSize   geom.Extent
	borderSize int
	tiles      geom.Extent // (Rw, Rh) in sub-zones
}

// NewComposer constructs a Composer for a tiles.W x tiles.H grid of
// zoneSize sub-zones, with a borderSize-wide border on the composed map.
func NewComposer(zoneSize geom.Extent, borderSize int, tiles geom.Extent) *Composer {
	return &Composer{zoneSize: zoneSize, borderSize: borderSize, tiles: tiles}
}

// MapSize returns the extent of the zone Compile produces.
func (c *Composer) MapSize() geom.Extent {
	return geom.Extent{W: c.zoneSize.W * c.tiles.W, H: c.zoneSize.H * c.tiles.H}
}

// Compile copies each sub-zone into its row-major slab of a freshly
// allocated composed zone, then re-closes the composed map's own border.
// subZones must be supplied row-major, tiles.W*tiles.H of them, each
// exactly zoneSize.
func (c *Composer) Compile(subZones []*zone.CellZone) (*zone.CellZone, error) {
	want := c.tiles.Area()
	if len(subZones) != want {
		return nil, fmt.Errorf("region: expected %d sub-zones, got %d", want, len(subZones))
	}

	out := zone.NewCellZone(c.MapSize(), c.borderSize)

	for ty := 0; ty < c.tiles.H; ty++ {
		for tx := 0; tx < c.tiles.W; tx++ {
			sub := subZones[ty*c.tiles.W+tx]
			if sub.Size() != c.zoneSize {
				return nil, fmt.Errorf("region: sub-zone (%d,%d) has size %v, want %v", tx, ty, sub.Size(), c.zoneSize)
			}
			origin := geom.Offset{X: tx * c.zoneSize.W, Y: ty * c.zoneSize.H}
			for _, pos := range sub.Offsets(zone.All) {
				out.Set(origin.Add(pos), sub.At(pos))
			}
		}
	}

	out.CloseBorder()
	return out, nil
}

// KeepLargestComponent partitions the Interior by match, keeps only the
// largest 8-connected component, and rewrites every other component to
// replacement. Returns ErrNoOpenCell if no component survives at all.
//
// match is a cell predicate rather than a single Trait because the
// partition the generator actually needs — "is this cell open" — is the
// absence of Solid, not a settable bit: cellstate.Cell's zero-valued Open
// marker has no corresponding flag to test with Has.
func KeepLargestComponent(z *zone.CellZone, match func(cellstate.Cell) bool, replacement cellstate.Cell) error {
	components := Partition(z, match)

	if len(components) == 0 {
		return ErrNoOpenCell
	}

	for _, comp := range components[1:] {
		for _, pos := range comp {
			z.Set(pos, replacement)
		}
	}

	return nil
}

// Partition returns every disjoint 8-connected component of Interior cells
// satisfying match, largest first.
func Partition(z *zone.CellZone, match func(cellstate.Cell) bool) [][]geom.Offset {
	interior := z.Offsets(zone.Interior)
	components := zone.ConnectedComponents(z.Size(), interior, func(pos geom.Offset) bool {
		return match(z.At(pos))
	})

	for i := 1; i < len(components); i++ {
		for j := i; j > 0 && len(components[j]) > len(components[j-1]); j-- {
			components[j], components[j-1] = components[j-1], components[j]
		}
	}
	return components
}

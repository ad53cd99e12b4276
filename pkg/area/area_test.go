package area

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

func TestSetIsIdempotent(t *testing.T) {
	z := zone.NewCellZone(geom.Extent{W: 7, H: 7}, 1)
	z.CloseBorder()
	z.SetRegion(zone.Interior, cellstate.Cell{}.Set(cellstate.Open))

	a := Matching(z, zone.Interior, func(c cellstate.Cell) bool { return true })
	a.Set(z, cellstate.Damp)
	once := z.Clone()
	a.Set(z, cellstate.Damp)

	for _, pos := range z.Offsets(zone.All) {
		if once.At(pos) != z.At(pos) {
			t.Fatalf("applying Set twice diverged from once at %v", pos)
		}
	}
}

func TestFloodFillFromStopsAtMismatch(t *testing.T) {
	z := zone.NewCellZone(geom.Extent{W: 9, H: 9}, 1)
	z.CloseBorder()
	z.SetRegion(zone.Interior, cellstate.Cell{}.Set(cellstate.Solid|cellstate.Opaque))
	// carve a 3x3 open room in the corner of the interior.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			z.Set(geom.Offset{X: x, Y: y}, cellstate.Cell{}.Set(cellstate.Open))
		}
	}

	room := FloodFillFrom(z, geom.Offset{X: 2, Y: 2}, func(c cellstate.Cell) bool { return !c.Solid() })
	if room.Len() != 9 {
		t.Fatalf("expected 9-cell room, got %d", room.Len())
	}
	if room.Contains(geom.Offset{X: 5, Y: 5}) {
		t.Fatal("flood fill leaked past the solid wall")
	}
}

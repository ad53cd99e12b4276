package region

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

func openZone(w, h, border int) *zone.CellZone {
	z := zone.NewCellZone(geom.Extent{W: w, H: h}, border)
	z.CloseBorder()
	z.SetRegion(zone.Interior, cellstate.Cell{}.Set(cellstate.Open))
	return z
}

func TestComposeTilesSubZones(t *testing.T) {
	sub := geom.Extent{W: 6, H: 6}
	c := NewComposer(sub, 1, geom.Extent{W: 2, H: 1})

	subZones := []*zone.CellZone{openZone(6, 6, 1), openZone(6, 6, 1)}
	out, err := c.Compile(subZones)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if out.Size() != (geom.Extent{W: 12, H: 6}) {
		t.Fatalf("composed size = %v, want 12x6", out.Size())
	}
	for _, pos := range out.Offsets(zone.Border) {
		if !out.At(pos).Solid() {
			t.Fatalf("composed border cell %v is not solid", pos)
		}
	}
}

func TestKeepLargestComponentDropsSmaller(t *testing.T) {
	z := zone.NewCellZone(geom.Extent{W: 9, H: 9}, 1)
	z.CloseBorder()
	z.SetRegion(zone.Interior, cellstate.Cell{}.Set(cellstate.Solid|cellstate.Opaque))

	open := func(pos geom.Offset) { z.Set(pos, cellstate.Cell{}.Set(cellstate.Open)) }
	// large component: a 3x3 block.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			open(geom.Offset{X: x, Y: y})
		}
	}
	// small isolated component: a single cell far away.
	isolated := geom.Offset{X: 7, Y: 7}
	open(isolated)

	closed := cellstate.Cell{}.Set(cellstate.Solid | cellstate.Opaque)
	if err := KeepLargestComponent(z, func(c cellstate.Cell) bool { return !c.Solid() }, closed); err != nil {
		t.Fatalf("KeepLargestComponent: %v", err)
	}
	if !z.At(isolated).Solid() {
		t.Fatal("isolated component should have been rewritten to closed")
	}
	if z.At(geom.Offset{X: 2, Y: 2}).Solid() {
		t.Fatal("largest component should have survived open")
	}
}

func TestKeepLargestComponentNoOpenCellIsFatal(t *testing.T) {
	z := zone.NewCellZone(geom.Extent{W: 7, H: 7}, 1)
	z.CloseBorder()
	z.SetRegion(zone.Interior, cellstate.Cell{}.Set(cellstate.Solid|cellstate.Opaque))

	err := KeepLargestComponent(z, func(c cellstate.Cell) bool { return !c.Solid() }, z.At(geom.Offset{}))
	if err != ErrNoOpenCell {
		t.Fatalf("expected ErrNoOpenCell, got %v", err)
	}
}

package zone

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/rng"
)

func TestMinimumSizeHasOneInteriorCell(t *testing.T) {
	// border thickness * 2 + 1 on each axis: one cell of interior remains.
	const border = 2
	z := NewCellZone(geom.Extent{W: border*2 + 1, H: border*2 + 1}, border)
	interior := z.Offsets(Interior)
	if len(interior) != 1 {
		t.Fatalf("expected exactly 1 interior cell, got %d: %v", len(interior), interior)
	}
}

func TestOutOfBoundsReadsClosedSentinel(t *testing.T) {
	z := NewCellZone(geom.Extent{W: 5, H: 5}, 1)
	got := z.At(geom.Offset{X: -1, Y: -1})
	if !got.Solid() || !got.Opaque() {
		t.Fatal("out-of-bounds read did not return closed sentinel")
	}
}

func TestOutOfBoundsWriteIgnored(t *testing.T) {
	z := NewCellZone(geom.Extent{W: 5, H: 5}, 1)
	z.Set(geom.Offset{X: 99, Y: 99}, cellstate.Cell{}.Set(cellstate.Open))
	// No panic, and in-bounds state is untouched.
	if z.At(geom.Offset{X: 2, Y: 2}).Solid() {
		t.Fatal("unexpected mutation from an out-of-bounds write")
	}
}

func TestGenerationProducesClosedBorder(t *testing.T) {
	z := NewCellZone(geom.Extent{W: 20, H: 20}, 1)
	z.CloseBorder()
	r := rng.NewFromSeed(123)
	z.GenerateInterior(r, CAConfig{Fill: 0.45, Iterations: 4, Threshold: 5})

	for _, pos := range z.Offsets(Border) {
		cell := z.At(pos)
		if !cell.Solid() || !cell.Opaque() {
			t.Fatalf("border cell %v is not solid+opaque", pos)
		}
	}
}

func TestGenerationDeterministicForSameSeed(t *testing.T) {
	mk := func(seed uint64) *CellZone {
		z := NewCellZone(geom.Extent{W: 20, H: 20}, 1)
		z.CloseBorder()
		z.GenerateInterior(rng.NewFromSeed(seed), CAConfig{Fill: 0.45, Iterations: 4, Threshold: 5})
		return z
	}
	a, b := mk(99), mk(99)
	for _, pos := range a.Offsets(All) {
		if a.At(pos).Solid() != b.At(pos).Solid() {
			t.Fatalf("divergence at %v for identical seeds", pos)
		}
	}
}

func TestCollapseRewritesSmallComponents(t *testing.T) {
	z := NewCellZone(geom.Extent{W: 7, H: 7}, 1)
	// interior is 5x5, all open except a single isolated solid speck: that
	// speck is a component of size 1 and must collapse back to open.
	z.SetRegion(Interior, cellstate.Cell{}.Set(cellstate.Open))
	speck := geom.Offset{X: 2, Y: 2}
	z.Set(speck, cellstate.Cell{}.Set(cellstate.Solid|cellstate.Opaque))

	z.CollapseInterior(cellstate.Solid, 4, cellstate.Cell{}.Set(cellstate.Open))
	if z.At(speck).Solid() {
		t.Fatal("isolated solid speck should have collapsed to open")
	}
}

func TestFindRandomOpenReturnsOpenCell(t *testing.T) {
	z := NewCellZone(geom.Extent{W: 9, H: 9}, 1)
	z.CloseBorder()
	r := rng.NewFromSeed(5)
	z.GenerateInterior(r, CAConfig{Fill: 0.1, Iterations: 2, Threshold: 5})

	pos, ok := z.FindRandomOpen(r, Interior)
	if !ok {
		t.Fatal("expected at least one open interior cell")
	}
	if z.At(pos).Solid() {
		t.Fatalf("FindRandomOpen returned a solid cell at %v", pos)
	}
}

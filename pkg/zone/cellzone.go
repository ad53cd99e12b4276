package zone

import (
	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/rng"
)

// CellZone is a Zone[cellstate.Cell] plus the generation-protocol methods
// from §4.B: cellular-automata carving, small-component collapse, secondary
// trait randomization, and the neighbourhood-index calculators that drive
// tile glyph selection.
type CellZone struct {
	*Zone[cellstate.Cell]
}

// NewCellZone allocates a CellZone whose out-of-bounds sentinel is the
// closed-wall cell, per §4.B's failure model.
func NewCellZone(size geom.Extent, borderSize int) *CellZone {
	return &CellZone{Zone: New(size, borderSize, cellstate.ClosedSentinel)}
}

// CloseBorder sets every Border cell to solid+opaque, step 1 of the
// generation protocol.
func (z *CellZone) CloseBorder() {
	z.SetRegion(Border, cellstate.ClosedSentinel)
}

// CAConfig parameterizes the cellular-automata interior carve (§4.B step 2).
type CAConfig struct {
	// Fill is the initial probability a cell starts solid.
	Fill float64
	// Iterations is the number of CA smoothing passes.
	Iterations int
	// Threshold is the Moore-neighbour solid count at or above which a
	// cell becomes solid on the next pass.
	Threshold int
}

// GenerateInterior runs the double-buffered cellular automaton over the
// Interior region: a random initial fill, then Iterations passes where
// each cell's next state depends solely on the previous pass's solid
// Moore-neighbour count, making the result independent of scan order.
func (z *CellZone) GenerateInterior(r *rng.RNG, cfg CAConfig) {
	interior := z.Offsets(Interior)

	for _, pos := range interior {
		if r.Bernoulli(cfg.Fill) {
			z.Set(pos, cellstate.Cell{}.Set(cellstate.Solid|cellstate.Opaque))
		} else {
			z.Set(pos, cellstate.Cell{}.Set(cellstate.Open))
		}
	}

	for pass := 0; pass < cfg.Iterations; pass++ {
		prev := z.Clone()
		for _, pos := range interior {
			count := 0
			for _, d := range geom.MooreNeighbourOffsets {
				if prev.At(pos.Add(d)).Solid() {
					count++
				}
			}
			if count >= cfg.Threshold {
				z.Set(pos, z.At(pos).Set(cellstate.Solid|cellstate.Opaque))
			} else {
				z.Set(pos, z.At(pos).Set(cellstate.Open).Unset(cellstate.Opaque))
			}
		}
	}
}

// CollapseInterior rewrites any 8-connected component of Interior cells
// matching targetTrait that is smaller than minimumCount to replacement.
func (z *CellZone) CollapseInterior(targetTrait cellstate.Trait, minimumCount int, replacement cellstate.Cell) {
	interior := z.Offsets(Interior)
	components := ConnectedComponents(z.Size(), interior, func(pos geom.Offset) bool {
		return z.At(pos).Has(targetTrait)
	})

	for _, comp := range components {
		if len(comp) < minimumCount {
			for _, pos := range comp {
				z.Set(pos, replacement)
			}
		}
	}
}

// RandomizeRegion applies draw to every cell in region, replacing it with
// draw's return value. Secondary, cosmetic traits (roughness, mineralogy,
// temperature) are randomized this way; draw must never touch
// solid/opaque, since traversability is fixed by generation before
// randomization runs.
func (z *CellZone) RandomizeRegion(region Region, draw func(pos geom.Offset, cur cellstate.Cell) cellstate.Cell) {
	z.Apply(region, draw)
}

// FindRandomOpen returns a uniformly random open (non-solid) offset within
// region, or ok=false if none exists.
func (z *CellZone) FindRandomOpen(r *rng.RNG, region Region) (geom.Offset, bool) {
	var open []geom.Offset
	for _, pos := range z.Offsets(region) {
		if !z.At(pos).Solid() {
			open = append(open, pos)
		}
	}
	if len(open) == 0 {
		return geom.Offset{}, false
	}
	return open[r.Intn(len(open))], true
}

// IndexSolver selects which neighbourhood-index scheme CalculateIndex uses.
type IndexSolver int

const (
	// Moore returns an 8-bit mask of which of the 8 neighbours carry the
	// queried trait, in MooreNeighbourOffsets order.
	Moore IndexSolver = iota
	// MarchingSquares returns a 4-bit corner mask (NW,NE,SW,SE) used to
	// select wall glyphs.
	MarchingSquares
	// Melded combines the marching-squares corner mask with the cell's own
	// smooth/protrudes flags into a single glyph-selection index.
	Melded
)

// CalculateIndex computes the neighbourhood-index of pos under solver for
// the given trait.
func (z *CellZone) CalculateIndex(solver IndexSolver, pos geom.Offset, trait cellstate.Trait) uint8 {
	switch solver {
	case Moore:
		return z.calculateMooreIndex(pos, trait)
	case MarchingSquares:
		return z.calculateMarchingSquaresIndex(pos, trait)
	case Melded:
		return z.calculateMeldedIndex(pos, trait)
	default:
		return 0
	}
}

func (z *CellZone) calculateMooreIndex(pos geom.Offset, trait cellstate.Trait) uint8 {
	var mask uint8
	for i, d := range geom.MooreNeighbourOffsets {
		if z.At(pos.Add(d)).Has(trait) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// corner offsets used for the 2x2 marching-squares sample: the cell itself
// acts as the NW sample point of its own quad, consistent with how the
// source scatters wall glyphs across tile corners rather than tile centers.
var marchingCorners = [4]geom.Offset{
	{X: 0, Y: 0}, // NW
	{X: 1, Y: 0}, // NE
	{X: 0, Y: 1}, // SW
	{X: 1, Y: 1}, // SE
}

func (z *CellZone) calculateMarchingSquaresIndex(pos geom.Offset, trait cellstate.Trait) uint8 {
	var mask uint8
	for i, d := range marchingCorners {
		if z.At(pos.Add(d)).Has(trait) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// calculateMeldedIndex folds the marching-squares corner mask and the
// cell's own smooth/protrudes flags into one byte: the low nibble is the
// corner mask, bit 4 is Smooth, bit 5 is Protrudes. The exact packing is
// implementation-defined per §9's note on the Melded table; the only
// contract is that walls with identical neighbourhoods and identical
// smooth/protrudes flags always produce the same index, keeping wall runs
// visually contiguous.
func (z *CellZone) calculateMeldedIndex(pos geom.Offset, trait cellstate.Trait) uint8 {
	idx := z.calculateMarchingSquaresIndex(pos, trait)
	cell := z.At(pos)
	if cell.Has(cellstate.Smooth) {
		idx |= 1 << 4
	}
	if cell.Has(cellstate.Protrudes) {
		idx |= 1 << 5
	}
	return idx
}

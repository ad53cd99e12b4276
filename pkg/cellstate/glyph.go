package cellstate

// RGBA8 is a packed 8-bit-per-channel colour, matching the Atlas
// interface's glyph colour (§6).
type RGBA8 struct {
	R, G, B, A uint8
}

// Pack encodes the colour as a single big-endian uint32 (RRGGBBAA).
func (c RGBA8) Pack() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackRGBA8 is the inverse of Pack.
func UnpackRGBA8(v uint32) RGBA8 {
	return RGBA8{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// Glyph is the engine's half of the Atlas contract (§6): a tile index and a
// colour. The atlas itself — which turns a Glyph into pixels — lives
// outside this module's scope.
type Glyph struct {
	Index uint32
	Color RGBA8
}

// wallColor and floorColor are the two colour channels §4.D's draw()
// modulates by seen/explored alpha; a host atlas is free to ignore them and
// substitute its own palette, but the engine always produces a concrete
// value so a minimal host needs no fallback logic.
var (
	wallColor  = RGBA8{R: 120, G: 110, B: 100, A: 255}
	floorColor = RGBA8{R: 40, G: 38, B: 36, A: 255}
)

// Draw derives this cell's glyph from its melded neighbourhood mask (see
// zone.CellZone.CalculateIndex with the Melded solver) and its seen/explored state. A cell that is
// explored but not currently seen is drawn at reduced alpha ("remembered
// but not currently seen", §3); a cell that is neither seen nor explored
// never reaches this function in a well-behaved renderer, but Draw still
// returns a deterministic zero-alpha glyph for it rather than panicking.
func (c Cell) Draw(meldedIndex uint8) Glyph {
	base := floorColor
	if c.Solid() {
		base = wallColor
	}

	switch {
	case c.Seen():
		// full alpha, already set on base
	case c.Explored():
		base.A = base.A / 2
	default:
		base.A = 0
	}

	return Glyph{Index: uint32(meldedIndex), Color: base}
}

package zone

import "github.com/ryanlockhart/bleak/pkg/geom"

// Region names one of the two partitions every in-bounds offset belongs to
// exactly one of: the immutable Border strip, or the mutable Interior. All
// names their union.
type Region int

const (
	Interior Region = iota
	Border
	All
)

// Zone is a dense Size.W x Size.H grid of T, with a BorderSize-wide strip on
// each edge forming the Border region and the remainder forming the
// Interior. Go has no const-generic template parameters, so Size and
// BorderSize — compile-time template arguments in the source — are
// constructor arguments here instead; every other invariant from §3 is
// unchanged.
type Zone[T any] struct {
	size       geom.Extent
	borderSize int
	oob        T // sentinel returned for out-of-bounds reads
	cells      []T
}

// New allocates a Zone of the given size and border thickness, with every
// cell initialized to zero and oob as the sentinel for out-of-bounds reads.
// Panics if borderSize is negative or the border would consume the entire
// grid and leave no interior — a zero-interior zone is the one generation
// failure the spec (§7.1) treats as fatal, and it must never arise from a
// plain construction call.
func New[T any](size geom.Extent, borderSize int, oob T) *Zone[T] {
	if borderSize < 0 {
		panic("zone: borderSize must be non-negative")
	}
	if size.W <= 2*borderSize || size.H <= 2*borderSize {
		panic("zone: size too small for borderSize, no interior would remain")
	}
	return &Zone[T]{
		size:       size,
		borderSize: borderSize,
		oob:        oob,
		cells:      make([]T, size.Area()),
	}
}

// Size returns the zone's overall extent.
func (z *Zone[T]) Size() geom.Extent { return z.size }

// BorderSize returns the border strip thickness.
func (z *Zone[T]) BorderSize() int { return z.borderSize }

// Within reports whether pos belongs to the named region.
func (z *Zone[T]) Within(region Region, pos geom.Offset) bool {
	if !z.size.Contains(pos) {
		return false
	}
	inInterior := pos.X >= z.borderSize && pos.X < z.size.W-z.borderSize &&
		pos.Y >= z.borderSize && pos.Y < z.size.H-z.borderSize

	switch region {
	case Interior:
		return inInterior
	case Border:
		return !inInterior
	case All:
		return true
	default:
		return false
	}
}

// At returns the value stored at pos, or the zone's out-of-bounds sentinel
// if pos lies outside Size. Never panics, per §4.B's failure model.
func (z *Zone[T]) At(pos geom.Offset) T {
	if !z.size.Contains(pos) {
		return z.oob
	}
	return z.cells[z.size.Index(pos)]
}

// Set writes value at pos. Out-of-bounds writes are silently ignored.
func (z *Zone[T]) Set(pos geom.Offset, value T) {
	if !z.size.Contains(pos) {
		return
	}
	z.cells[z.size.Index(pos)] = value
}

// SetRegion overwrites every cell in the named region with value.
func (z *Zone[T]) SetRegion(region Region, value T) {
	for _, pos := range z.Offsets(region) {
		z.cells[z.size.Index(pos)] = value
	}
}

// Apply replaces every cell in the named region with fn(pos, current).
func (z *Zone[T]) Apply(region Region, fn func(pos geom.Offset, cur T) T) {
	for _, pos := range z.Offsets(region) {
		idx := z.size.Index(pos)
		z.cells[idx] = fn(pos, z.cells[idx])
	}
}

// Offsets returns every offset in the named region, in stable row-major
// order. Generation and neighbourhood scans rely on this order to make the
// cellular automata deterministic regardless of map shape.
func (z *Zone[T]) Offsets(region Region) []geom.Offset {
	offsets := make([]geom.Offset, 0, z.size.Area())
	for y := 0; y < z.size.H; y++ {
		for x := 0; x < z.size.W; x++ {
			pos := geom.Offset{X: x, Y: y}
			if z.Within(region, pos) {
				offsets = append(offsets, pos)
			}
		}
	}
	return offsets
}

// Clone returns a deep copy of the zone's cell data.
func (z *Zone[T]) Clone() *Zone[T] {
	out := &Zone[T]{size: z.size, borderSize: z.borderSize, oob: z.oob, cells: make([]T, len(z.cells))}
	copy(out.cells, z.cells)
	return out
}

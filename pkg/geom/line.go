package geom

// Line describes a straight segment from Start to End in grid space.
type Line struct {
	Start, End Offset
}

// Rasterize walks the integer Bresenham line from l.Start to l.End inclusive
// of both endpoints. A degenerate line (Start == End) yields a single-cell
// result.
//
// Tie-break rule (documented per the spec's open question): at each step the
// x-axis error term is tested strictly before the y-axis error term is
// updated, and both may fire on the same step producing a diagonal move.
// This is the "push then check end" ordering: the current position is
// recorded, then the end check happens, then the x step is applied before
// the y step. The rule is fixed and deterministic regardless of the octant
// the line falls in.
func (l Line) Rasterize() []Offset {
	if l.Start.Equals(l.End) {
		return []Offset{l.Start}
	}

	dx := abs(l.End.X - l.Start.X)
	dy := abs(l.End.Y - l.Start.Y)

	stepX := 1
	if l.Start.X > l.End.X {
		stepX = -1
	}
	stepY := 1
	if l.Start.Y > l.End.Y {
		stepY = -1
	}

	err := dx - dy
	pos := l.Start

	var points []Offset
	for {
		points = append(points, pos)

		if pos.Equals(l.End) {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			pos.X += stepX
		}
		if e2 < dx {
			err += dx
			pos.Y += stepY
		}
	}

	return points
}

// RasterizePassable behaves like Rasterize, but aborts and returns nil if
// pass reports false for any interior cell (the endpoints are never
// tested). The aborted result is empty, not partial.
func (l Line) RasterizePassable(pass func(Offset) bool) []Offset {
	points := l.Rasterize()
	if len(points) <= 2 {
		return points
	}
	for _, p := range points[1 : len(points)-1] {
		if !pass(p) {
			return nil
		}
	}
	return points
}

package fov

import (
	"math"

	"github.com/ryanlockhart/bleak/pkg/area"
	"github.com/ryanlockhart/bleak/pkg/geom"
)

// octant transforms (xx, xy, yx, yy): rotating/reflecting a local
// (col, row) frame into world space, one per eighth of the circle.
var octants = [8][4]int{
	{1, 0, 0, 1}, {0, 1, 1, 0},
	{0, -1, 1, 0}, {-1, 0, 0, 1},
	{-1, 0, 0, -1}, {0, -1, -1, 0},
	{0, 1, -1, 0}, {1, 0, 0, -1},
}

// Params configures one shadow-cast call.
type Params struct {
	Origin geom.Offset
	Radius int
	// Pass reports whether light can travel through pos (true == open).
	Pass func(pos geom.Offset) bool
	// Cone restricts visibility to within ±Span/2 radians of Angle when
	// Limited is true; an unlimited cast ignores both fields.
	Limited bool
	Angle   float64
	Span    float64
}

// Cast computes the set of offsets visible from p.Origin, recursively
// sweeping all 8 octants. The origin is always visible; no cell with
// squared Euclidean distance greater than Radius^2 is ever reported.
func Cast(p Params) *area.Area {
	visible := map[geom.Offset]struct{}{p.Origin: {}}

	if p.Radius > 0 {
		for _, m := range octants {
			castOctant(p, 1, 1.0, 0.0, m[0], m[1], m[2], m[3], visible)
		}
	}

	offsets := make([]geom.Offset, 0, len(visible))
	for o := range visible {
		offsets = append(offsets, o)
	}
	return area.New(offsets)
}

func castOctant(p Params, row int, start, end float64, xx, xy, yx, yy int, visible map[geom.Offset]struct{}) {
	if start < end {
		return
	}

	radiusSq := p.Radius * p.Radius
	newStart := 0.0
	blocked := false

	for distance := row; distance <= p.Radius && !blocked; distance++ {
		deltaY := -distance

		for deltaX := -distance; deltaX <= 0; deltaX++ {
			currentX := p.Origin.X + deltaX*xx + deltaY*xy
			currentY := p.Origin.Y + deltaX*yx + deltaY*yy

			leftSlope := (float64(deltaX) - 0.5) / (float64(deltaY) + 0.5)
			rightSlope := (float64(deltaX) + 0.5) / (float64(deltaY) - 0.5)

			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			current := geom.Offset{X: currentX, Y: currentY}
			distSq := deltaX*deltaX + deltaY*deltaY

			if distSq <= radiusSq && withinCone(p, current) {
				visible[current] = struct{}{}
			}

			isOpaque := !p.Pass(current)

			switch {
			case blocked:
				if isOpaque {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			case isOpaque && distance < p.Radius:
				blocked = true
				castOctant(p, distance+1, start, leftSlope, xx, xy, yx, yy, visible)
				newStart = rightSlope
			}
		}
	}
}

func withinCone(p Params, pos geom.Offset) bool {
	if !p.Limited {
		return true
	}
	if pos == p.Origin {
		return true
	}
	dx := float64(pos.X - p.Origin.X)
	dy := float64(pos.Y - p.Origin.Y)
	bearing := math.Atan2(dy, dx)

	diff := math.Mod(bearing-p.Angle+math.Pi, 2*math.Pi) - math.Pi
	if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return math.Abs(diff) <= p.Span/2
}

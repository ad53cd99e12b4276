package pathing

import (
	"math"

	"github.com/ryanlockhart/bleak/pkg/geom"
)

// Unreachable is the sentinel distance for a cell no goal can reach.
const Unreachable = math.MaxInt32

// Field is a dense grid of Dijkstra distances from a set of goal cells,
// rebuilt once per turn and consumed by NPC "descend toward the nearest
// goal" logic.
type Field struct {
	size   geom.Extent
	values []int
}

// NewField allocates a Field of the given size with every cell initialized
// to Unreachable.
func NewField(size geom.Extent) *Field {
	f := &Field{size: size, values: make([]int, size.Area())}
	for i := range f.values {
		f.values[i] = Unreachable
	}
	return f
}

// Size returns the field's extent.
func (f *Field) Size() geom.Extent { return f.size }

// At returns the distance at pos, or Unreachable if pos is out of bounds
// or was never reached.
func (f *Field) At(pos geom.Offset) int {
	if !f.size.Contains(pos) {
		return Unreachable
	}
	return f.values[f.size.Index(pos)]
}

// BuildConfig parameterizes a goal-map rebuild.
type BuildConfig struct {
	Goals    []geom.Offset
	Metric   geom.Metric
	Passable func(pos geom.Offset) bool
	Blocked  func(pos geom.Offset) bool
}

// Build runs multi-source Dijkstra from cfg.Goals with unit edge weights.
// The goal-map graph's edges are always the four cardinal links regardless
// of cfg.Metric — a goal map drives NPC "step toward the nearest goal"
// descent, and restricting it to cardinal adjacency keeps a descending NPC
// from corner-cutting through a diagonal gap the way an Octile-heuristic
// A* search is allowed to. cfg.Metric is not consulted here, and Descend
// scans the same fixed cardinal offsets whatever metric was configured.
func Build(size geom.Extent, cfg BuildConfig) *Field {
	f := NewField(size)
	neighbours := geom.CardinalNeighbourOffsets[:]

	type qitem struct {
		pos  geom.Offset
		dist int
	}
	queue := make([]qitem, 0, len(cfg.Goals))
	for _, g := range cfg.Goals {
		if !size.Contains(g) {
			continue
		}
		f.values[size.Index(g)] = 0
		queue = append(queue, qitem{pos: g, dist: 0})
	}

	passable := func(pos geom.Offset) bool {
		if cfg.Passable != nil && !cfg.Passable(pos) {
			return false
		}
		if cfg.Blocked != nil && cfg.Blocked(pos) {
			return false
		}
		return true
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range neighbours {
			next := cur.pos.Add(d)
			if !size.Contains(next) || !passable(next) {
				continue
			}
			idx := size.Index(next)
			nd := cur.dist + 1
			if nd < f.values[idx] {
				f.values[idx] = nd
				queue = append(queue, qitem{pos: next, dist: nd})
			}
		}
	}

	return f
}

// Descend returns a neighbour of pos with strictly lower value than pos,
// i.e. the direction an NPC should step to approach the nearest goal.
// blocked, if non-nil, excludes occupied cells from consideration. Descend
// walks the same cardinal adjacency Build used, in
// CardinalNeighbourOffsets's fixed scan order, so ties resolve
// deterministically. Returns ok=false if pos is already a goal (value 0) or
// no neighbour improves on it (a local minimum).
func (f *Field) Descend(pos geom.Offset, blocked func(geom.Offset) bool) (geom.Offset, bool) {
	cur := f.At(pos)
	if cur == 0 || cur == Unreachable {
		return geom.Offset{}, false
	}

	for _, d := range geom.CardinalNeighbourOffsets {
		next := pos.Add(d)
		if blocked != nil && blocked(next) {
			continue
		}
		if v := f.At(next); v < cur {
			return next, true
		}
	}
	return geom.Offset{}, false
}

package pathing

import (
	"container/heap"

	"github.com/ryanlockhart/bleak/pkg/geom"
)

// Creeper is the frontier record A* and its trail reconstruction share:
// the cell itself, the cell it was reached from, and the accumulated cost
// to reach it. The source kept two near-identical "creeper" structs (plain
// and memory-carrying); this collapses them into the one shape every call
// site actually needs, per §9's open question.
type Creeper struct {
	Position     geom.Offset
	PrevPosition geom.Offset
	Distance     float64
}

// Query describes one A* search.
type Query struct {
	Origin, Destination geom.Offset
	Metric              geom.Metric
	// Passable reports whether a cell may be entered at all.
	Passable func(pos geom.Offset) bool
	// Blocked reports whether a cell is currently occupied and therefore
	// impassable this search, independent of terrain. May be nil.
	Blocked func(pos geom.Offset) bool
}

type frontierEntry struct {
	creeper Creeper
	f       float64
	index   int
}

type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	// Tie-break: prefer higher g (deeper frontier), i.e. smaller h.
	return f[i].creeper.Distance > f[j].creeper.Distance
}
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index, f[j].index = i, j
}
func (f *frontier) Push(x any) {
	e := x.(*frontierEntry)
	e.index = len(*f)
	*f = append(*f, e)
}
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

// Find runs A* per the Query. Returns nil if the destination is
// unreachable. A query whose origin equals its destination returns a
// single-cell path at that offset, regardless of passability — asking to
// path to where you already stand always succeeds.
func Find(q Query) []geom.Offset {
	if q.Origin.Equals(q.Destination) {
		return []geom.Offset{q.Origin}
	}

	neighbours := geom.NeighbourOffsets(q.Metric)

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierEntry{
		creeper: Creeper{Position: q.Origin, PrevPosition: q.Origin, Distance: 0},
		f:       geom.Distance(q.Metric, q.Origin, q.Destination),
	})

	best := map[geom.Offset]float64{q.Origin: 0}
	cameFrom := map[geom.Offset]geom.Offset{}
	closed := map[geom.Offset]bool{}

	passable := func(pos geom.Offset) bool {
		if q.Passable != nil && !q.Passable(pos) {
			return false
		}
		if q.Blocked != nil && q.Blocked(pos) {
			return false
		}
		return true
	}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*frontierEntry).creeper
		if closed[cur.Position] {
			continue
		}
		closed[cur.Position] = true

		if cur.Position.Equals(q.Destination) {
			return reconstruct(cameFrom, q.Origin, q.Destination)
		}

		for _, d := range neighbours {
			next := cur.Position.Add(d)
			if closed[next] {
				continue
			}
			if !passable(next) {
				continue
			}

			g := cur.Distance + geom.StepCost(q.Metric, d)
			if prior, ok := best[next]; ok && g >= prior {
				continue
			}
			best[next] = g
			cameFrom[next] = cur.Position

			h := geom.Distance(q.Metric, next, q.Destination)
			heap.Push(open, &frontierEntry{
				creeper: Creeper{Position: next, PrevPosition: cur.Position, Distance: g},
				f:       g + h,
			})
		}
	}

	return nil
}

func reconstruct(cameFrom map[geom.Offset]geom.Offset, origin, destination geom.Offset) []geom.Offset {
	path := []geom.Offset{destination}
	cur := destination
	for !cur.Equals(origin) {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

package entity

import (
	"sort"

	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/rng"
)

// Registry is the sparse, per-variant entity store keyed by position, plus
// the reverse position→variant index that makes at(pos) O(1) per §4.G.
type Registry struct {
	byVariant map[Variant]map[geom.Offset]*Entity
	variantAt map[geom.Offset]Variant
	nextSeq   int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		byVariant: make(map[Variant]map[geom.Offset]*Entity),
		variantAt: make(map[geom.Offset]Variant),
	}
	for v := Player; v <= Ladder; v++ {
		r.byVariant[v] = make(map[geom.Offset]*Entity)
	}
	return r
}

// At returns the entity occupying pos, if any.
func (r *Registry) At(pos geom.Offset) (*Entity, bool) {
	v, ok := r.variantAt[pos]
	if !ok {
		return nil, false
	}
	e, ok := r.byVariant[v][pos]
	return e, ok
}

// AtVariant returns the entity at pos only if it is of variant v, the
// rendering of §4.G's `at<T>(pos)`.
func (r *Registry) AtVariant(pos geom.Offset, v Variant) (*Entity, bool) {
	e, ok := r.byVariant[v][pos]
	return e, ok
}

// Contains reports whether pos is occupied by an entity whose variant is
// one of mask, the rendering of §4.G's `contains<Mask>(pos)`. An empty
// mask means "any variant".
func (r *Registry) Contains(pos geom.Offset, mask ...Variant) bool {
	v, ok := r.variantAt[pos]
	if !ok {
		return false
	}
	if len(mask) == 0 {
		return true
	}
	for _, m := range mask {
		if m == v {
			return true
		}
	}
	return false
}

// Add inserts e at its Position. Returns false without modifying the
// registry if the position is already occupied — the §4.G / §7.3
// "registry collision" failure, recovered locally by reporting false.
func (r *Registry) Add(e *Entity) bool {
	if _, occupied := r.variantAt[e.Position]; occupied {
		return false
	}
	e.seq = r.nextSeq
	r.nextSeq++
	r.byVariant[e.Variant][e.Position] = e
	r.variantAt[e.Position] = e.Variant
	return true
}

// Remove deletes whatever entity occupies pos. Reports whether anything
// was removed.
func (r *Registry) Remove(pos geom.Offset) bool {
	v, ok := r.variantAt[pos]
	if !ok {
		return false
	}
	delete(r.byVariant[v], pos)
	delete(r.variantAt, pos)
	return true
}

// Move relocates the entity at from to to, rewriting both the per-variant
// map key and the reverse index. Fails without effect if from is empty or
// to is already occupied.
func (r *Registry) Move(from, to geom.Offset) bool {
	v, ok := r.variantAt[from]
	if !ok {
		return false
	}
	if _, occupied := r.variantAt[to]; occupied {
		return false
	}
	e := r.byVariant[v][from]
	delete(r.byVariant[v], from)
	delete(r.variantAt, from)
	e.Position = to
	r.byVariant[v][to] = e
	r.variantAt[to] = v
	return true
}

// Count returns the number of live entities of variant v.
func (r *Registry) Count(v Variant) int { return len(r.byVariant[v]) }

// All returns every entity in the registry, in no particular order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.variantAt))
	for v := Player; v <= Ladder; v++ {
		for _, e := range r.byVariant[v] {
			out = append(out, e)
		}
	}
	return out
}

// AnimateDispatchOrder returns every animate, living entity ordered by
// variant tag, then by insertion order within variant — §4.G's fixed
// dispatch order for "each animate NPC".
func (r *Registry) AnimateDispatchOrder() []*Entity {
	var out []*Entity
	for v := Player; v <= Ladder; v++ {
		if !v.Animate() {
			continue
		}
		var group []*Entity
		for _, e := range r.byVariant[v] {
			if e.Alive() {
				group = append(group, e)
			}
		}
		sort.Slice(group, func(i, j int) bool { return group[i].seq < group[j].seq })
		out = append(out, group...)
	}
	return out
}

// SpawnCandidates picks up to count offsets from candidates with pairwise
// Chebyshev distance >= minDistance and at least minDistance from
// playerPos, per §4.G's spawn operator. candidates is shuffled first so
// repeated calls against the same set don't always favor the same cells.
func SpawnCandidates(r *rng.RNG, candidates []geom.Offset, count, minDistance int, playerPos geom.Offset) []geom.Offset {
	shuffled := make([]geom.Offset, len(candidates))
	copy(shuffled, candidates)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	var chosen []geom.Offset
	for _, pos := range shuffled {
		if len(chosen) >= count {
			break
		}
		if int(geom.Distance(geom.Chebyshev, pos, playerPos)) < minDistance {
			continue
		}
		ok := true
		for _, c := range chosen {
			if int(geom.Distance(geom.Chebyshev, pos, c)) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			chosen = append(chosen, pos)
		}
	}
	return chosen
}

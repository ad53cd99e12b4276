package zone

import "github.com/ryanlockhart/bleak/pkg/geom"

// FloodFill explores every offset reachable from start via Moore (8-way)
// adjacency for which match returns true, stopping at bounds or at cells
// match rejects. It underlies Area construction (component C) and the
// cellular-automata collapse step (§4.B step 3), both of which use 8-way
// connectivity to decide what counts as "the same room".
func FloodFill(bounds geom.Extent, start geom.Offset, match func(geom.Offset) bool) []geom.Offset {
	if !bounds.Contains(start) || !match(start) {
		return nil
	}

	visited := map[geom.Offset]bool{start: true}
	stack := []geom.Offset{start}
	component := []geom.Offset{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range geom.MooreNeighbourOffsets {
			next := cur.Add(d)
			if visited[next] || !bounds.Contains(next) || !match(next) {
				continue
			}
			visited[next] = true
			component = append(component, next)
			stack = append(stack, next)
		}
	}

	return component
}

// ConnectedComponents partitions every offset in universe for which match
// holds into disjoint 8-connected components, in the order components are
// first discovered by a row-major scan of universe.
func ConnectedComponents(bounds geom.Extent, universe []geom.Offset, match func(geom.Offset) bool) [][]geom.Offset {
	eligible := make(map[geom.Offset]bool, len(universe))
	for _, pos := range universe {
		if match(pos) {
			eligible[pos] = true
		}
	}

	visited := make(map[geom.Offset]bool, len(eligible))
	var components [][]geom.Offset

	for _, pos := range universe {
		if !eligible[pos] || visited[pos] {
			continue
		}
		comp := FloodFill(bounds, pos, func(p geom.Offset) bool { return eligible[p] })
		for _, p := range comp {
			visited[p] = true
		}
		components = append(components, comp)
	}

	return components
}

package depthgraph

import (
	"fmt"

	"github.com/ryanlockhart/bleak/pkg/geom"
)

// DepthNode is one visited zone.
type DepthNode struct {
	ID    string
	Depth int
}

// DepthEdge is the ladder transition from one zone to the next.
type DepthEdge struct {
	From, To string
	Via      geom.Offset
}

// Graph is purely additive bookkeeping: the turn pipeline never consults
// it, only the debug exporter and tests asserting the played session's
// depth chain has no skipped levels.
type Graph struct {
	nodes     map[string]DepthNode
	adjacency map[string][]string
	edges     []DepthEdge
}

// New returns an empty depth graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]DepthNode),
		adjacency: make(map[string][]string),
	}
}

// AddNode records a visited zone. Re-adding an existing ID is a no-op.
func (g *Graph) AddNode(n DepthNode) {
	if _, exists := g.nodes[n.ID]; exists {
		return
	}
	g.nodes[n.ID] = n
	if g.adjacency[n.ID] == nil {
		g.adjacency[n.ID] = []string{}
	}
}

// AddEdge records a descent from e.From to e.To via the ladder offset e.Via.
// Returns an error if either endpoint hasn't been added yet.
func (g *Graph) AddEdge(e DepthEdge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("depthgraph: unknown from-node %q", e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("depthgraph: unknown to-node %q", e.To)
	}
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
	return nil
}

// Nodes returns every recorded node.
func (g *Graph) Nodes() []DepthNode {
	out := make([]DepthNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Edges returns every recorded edge.
func (g *Graph) Edges() []DepthEdge { return g.edges }

// Reachable returns every node ID reachable from from by BFS over the
// descent edges, including from itself.
func (g *Graph) Reachable(from string) map[string]bool {
	reachable := make(map[string]bool)
	if _, ok := g.nodes[from]; !ok {
		return reachable
	}

	queue := []string{from}
	reachable[from] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.adjacency[cur] {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}
	return reachable
}

// IsConnected reports whether every node is reachable from an arbitrary
// starting node — for a depth chain, true iff no level was skipped or
// orphaned.
func (g *Graph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	var start string
	for id := range g.nodes {
		start = id
		break
	}
	return len(g.Reachable(start)) == len(g.nodes)
}

// Package depthgraph records the chain of zones visited across descents
// and checks its connectivity (§4.K), generalizing the teacher's
// room-level adjacency graph from room IDs to zone IDs.
package depthgraph

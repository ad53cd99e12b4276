// Package pathing implements the A* search over a grid and the
// multi-source Dijkstra "goal map" used for monster pathing (§4.F).
package pathing

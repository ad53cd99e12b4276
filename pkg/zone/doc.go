// Package zone implements the dense, fixed-shape tile grid that represents
// one dungeon level: a generic Zone[T] container with Border/Interior
// region accounting, and CellZone, the cellular-automata generator layered
// on top of it for zones of cellstate.Cell.
package zone

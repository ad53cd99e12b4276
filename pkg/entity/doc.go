// Package entity implements the sparse, typed entity registry and its
// command dispatch (§4.G): per-variant storage keyed by position, a
// reverse position index, and the resolution rules for every
// entity-command kind.
package entity

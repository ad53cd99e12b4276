// Package pacing implements the difficulty curves that parameterize wave
// size and the NPC-variant mix as depth increases (§4.L).
package pacing

// Package rng provides the engine's pseudo-random source and the small
// "applicator" combinators that generators and the theme tables use to draw
// values from it. The top-level engine RNG is seeded from a
// non-deterministic source at startup; individual subsystems that need
// independent, reproducible streams derive a sub-RNG by stage name the same
// way a dungeon generation pipeline derives per-stage seeds from a master
// seed.
package rng

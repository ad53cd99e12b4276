// Package engine wires geometry, generation, entities, pathing, pacing and
// turn pipeline into one cohesive world-simulation state, grounded on the
// teacher's top-level dungeon.Generator orchestration.
package engine

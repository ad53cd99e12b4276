// Package turn implements the deterministic turn pipeline (§4.H): the
// phase state machine and the per-turn sequence that drives player intent,
// NPC thinking, command resolution, spawning, and goal-map refresh.
package turn

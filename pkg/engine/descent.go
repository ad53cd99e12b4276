package engine

import "github.com/ryanlockhart/bleak/pkg/entity"

// PlayerOnDownLadder reports whether the player currently stands on an
// unused down-ladder tile, the trigger condition for Descend.
func (e *Engine) PlayerOnDownLadder() bool {
	ladder, ok := e.Registry.AtVariant(e.playerPos, entity.Ladder)
	return ok && ladder.LadderDown
}

// Descend runs the full §4.H descent sequence: transition to Loading,
// increment the depth counter, discard the old zone and registry, and
// regenerate. game_stats survive on the pipeline across the call.
func (e *Engine) Descend() error {
	e.Pipeline.Descend()
	return e.GenerateLevel(e.Pipeline.Stats.GameDepth)
}

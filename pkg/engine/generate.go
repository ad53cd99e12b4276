package engine

import (
	"fmt"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/depthgraph"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/region"
	"github.com/ryanlockhart/bleak/pkg/turn"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// LevelSize is the overall extent, border included, every generated level
// shares.
var LevelSize = geom.Extent{W: 64, H: 48}

const levelBorder = 1

// minInitialGoodNPCs and minInitialSkulls seed a freshly generated level
// with some starting population beyond the player and the ladders.
const (
	minInitialGoodNPCs = 3
	minInitialSkulls   = 4
	spawnMinDistance   = 4
)

// GenerateLevel carves, populates, and activates a new zone at depth,
// replacing the engine's current zone and registry. It is the worker-side
// half of §4.H's Loading phase; the caller is responsible for the
// Playing/Loading phase transitions around it.
func (e *Engine) GenerateLevel(depth int) error {
	genRNG := e.RNG.Derive(fmt.Sprintf("zone-gen-%d", depth))

	z := zone.NewCellZone(LevelSize, levelBorder)
	z.CloseBorder()
	z.GenerateInterior(genRNG, zone.CAConfig{
		Fill:       e.Cfg.CellularAutomata.Fill,
		Iterations: e.Cfg.CellularAutomata.Iterations,
		Threshold:  e.Cfg.CellularAutomata.Threshold,
	})
	z.CollapseInterior(cellstate.Solid, e.Cfg.CellularAutomata.CollapseBelow, cellstate.Cell{}.Set(cellstate.Open))

	open := func(c cellstate.Cell) bool { return !c.Solid() }
	if err := region.KeepLargestComponent(z, open, cellstate.ClosedSentinel); err != nil {
		e.Log.Error("generation failed", "depth", depth, "error", err)
		return err
	}

	if e.RockTable != nil {
		z.RandomizeRegion(zone.Interior, func(pos geom.Offset, cur cellstate.Cell) cellstate.Cell {
			if !cur.Solid() {
				return cur
			}
			rock, mineral := e.RockTable.Draw(genRNG, depth)
			return cur.WithRockType(rock).WithMineralType(mineral)
		})
	}

	reg := entity.NewRegistry()
	placeRNG := e.RNG.Derive(fmt.Sprintf("placement-%d", depth))

	playerPos, ok := z.FindRandomOpen(placeRNG, zone.Interior)
	if !ok {
		return region.ErrNoOpenCell
	}
	reg.Add(&entity.Entity{Variant: entity.Player, Position: playerPos, HP: 10, MaxHP: 10, Energy: 4})

	var openCells []geom.Offset
	for _, pos := range z.Offsets(zone.Interior) {
		if !z.At(pos).Solid() {
			openCells = append(openCells, pos)
		}
	}

	ladderCells := entity.SpawnCandidates(placeRNG, openCells, 2, spawnMinDistance, playerPos)
	for i, pos := range ladderCells {
		if reg.Contains(pos) {
			continue
		}
		reg.Add(&entity.Entity{Variant: entity.Ladder, Position: pos, LadderDown: i == 0})
	}

	npcCells := entity.SpawnCandidates(placeRNG, openCells, minInitialGoodNPCs+minInitialSkulls, spawnMinDistance, playerPos)
	for i, pos := range npcCells {
		if reg.Contains(pos) {
			continue
		}
		if i < minInitialGoodNPCs {
			reg.Add(&entity.Entity{Variant: e.drawVariant(depth), Position: pos, HP: 1, MaxHP: 1})
		} else {
			reg.Add(&entity.Entity{Variant: entity.Skull, Position: pos, Fresh: true})
		}
	}

	e.Zone = z
	e.Registry = reg
	e.playerPos = playerPos
	e.rebuildGoalMaps()

	e.Depths.AddNode(depthgraph.DepthNode{ID: levelID(depth), Depth: depth})
	if depth > 0 {
		if err := e.Depths.AddEdge(depthgraph.DepthEdge{From: levelID(depth - 1), To: levelID(depth)}); err != nil {
			e.Log.Warn("depth graph edge rejected", "error", err)
		}
	}

	if e.Pipeline == nil {
		e.Pipeline = turn.NewPipeline(e.pipelineConfig())
	} else {
		e.Pipeline.Resume(reg, e.environment())
	}
	e.Pipeline.Stats.GameDepth = depth

	return nil
}

func levelID(depth int) string {
	return fmt.Sprintf("depth-%d", depth)
}

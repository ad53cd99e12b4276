package engine

import (
	"context"
	"log/slog"

	"github.com/ryanlockhart/bleak/pkg/config"
	"github.com/ryanlockhart/bleak/pkg/depthgraph"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/pathing"
	"github.com/ryanlockhart/bleak/pkg/rng"
	"github.com/ryanlockhart/bleak/pkg/themes"
	"github.com/ryanlockhart/bleak/pkg/timer"
	"github.com/ryanlockhart/bleak/pkg/turn"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// Engine owns every piece of per-run state: the active zone and registry,
// both goal maps, the turn pipeline, and the generators the next descent
// needs. One Engine drives one played session end to end.
type Engine struct {
	Cfg    *config.EngineConfig
	Log    *slog.Logger
	Clock  *timer.Clock
	RNG    *rng.RNG
	Depths *depthgraph.Graph

	RockTable  *themes.RockMineralTable
	SpawnTable *themes.SpawnVariantTable

	Zone     *zone.CellZone
	Registry *entity.Registry

	// GoodToPlayer has the player's position as its sole goal; evil NPCs
	// descend it to hunt the player. EvilToGood has every living evil
	// entity's position as goals; good NPCs descend it to hunt the
	// nearest threat. Both are rebuilt at the end of every turn per
	// §4.H step 7.
	GoodToPlayer *pathing.Field
	EvilToGood   *pathing.Field

	Pipeline *turn.Pipeline

	playerPos geom.Offset
}

// New constructs an Engine from a validated configuration. It logs the
// resolved RNG seed once, the one startup diagnostic §4.I allows across the
// logging boundary.
func New(cfg *config.EngineConfig, rockTable *themes.RockMineralTable, spawnTable *themes.SpawnVariantTable, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	root := rng.NewFromSeed(cfg.Seed)
	log.Info("engine started", "seed", root.Seed())

	return &Engine{
		Cfg:        cfg,
		Log:        log,
		Clock:      timer.NewClock(),
		RNG:        root,
		Depths:     depthgraph.New(),
		RockTable:  rockTable,
		SpawnTable: spawnTable,
		Registry:   entity.NewRegistry(),
	}
}

// PlayerPosition returns the player's last-known position, refreshed each
// time rebuildGoalMaps runs.
func (e *Engine) PlayerPosition() geom.Offset { return e.playerPos }

// Metric translates the configured pathing metric name to geom.Metric.
func (e *Engine) Metric() geom.Metric {
	switch e.Cfg.Pathing.Metric {
	case "chebyshev":
		return geom.Chebyshev
	case "octile":
		return geom.Octile
	case "euclidean":
		return geom.Euclidean
	default:
		return geom.Manhattan
	}
}

// environment builds the entity.Environment closures for the current zone
// and registry, keeping pkg/entity free of a pkg/zone import.
func (e *Engine) environment() entity.Environment {
	return entity.Environment{
		Interior: func(pos geom.Offset) bool { return e.Zone.Within(zone.Interior, pos) },
		Solid:    func(pos geom.Offset) bool { return e.Zone.At(pos).Solid() },
		RandomOpenCell: func() (geom.Offset, bool) {
			return e.Zone.FindRandomOpen(e.RNG.Derive("random-warp"), zone.Interior)
		},
	}
}

// rebuildGoalMaps recomputes both goal fields from the registry's current
// living entities, per §4.H step 7.
func (e *Engine) rebuildGoalMaps() {
	size := e.Zone.Size()
	passable := func(pos geom.Offset) bool { return !e.Zone.At(pos).Solid() }

	var playerGoal []geom.Offset
	var evilGoals []geom.Offset
	for _, ent := range e.Registry.All() {
		if !ent.Alive() {
			continue
		}
		switch {
		case ent.Variant == entity.Player:
			playerGoal = append(playerGoal, ent.Position)
			e.playerPos = ent.Position
		case ent.Variant.Evil():
			evilGoals = append(evilGoals, ent.Position)
		}
	}

	e.GoodToPlayer = pathing.Build(size, pathing.BuildConfig{Goals: playerGoal, Metric: e.Metric(), Passable: passable})
	e.EvilToGood = pathing.Build(size, pathing.BuildConfig{Goals: evilGoals, Metric: e.Metric(), Passable: passable})
}

// upLadders returns every up-ladder position eligible for a wave spawn.
func (e *Engine) upLadders() []geom.Offset {
	var out []geom.Offset
	for _, ent := range e.Registry.All() {
		if ent.Variant == entity.Ladder && !ent.LadderDown && !ent.Shackled {
			out = append(out, ent.Position)
		}
	}
	return out
}

// drawVariant samples a good-NPC variant for a new wave spawn from the
// theme table, mapping its string name onto an entity.Variant.
func (e *Engine) drawVariant(depth int) entity.Variant {
	if e.SpawnTable == nil {
		return entity.Adventurer
	}
	switch e.SpawnTable.Draw(e.RNG.Derive("spawn-variant"), depth) {
	case "paladin":
		return entity.Paladin
	case "priest":
		return entity.Priest
	default:
		return entity.Adventurer
	}
}

// pipelineConfig assembles a turn.Config bound to this engine's current
// zone and registry.
func (e *Engine) pipelineConfig() turn.Config {
	return turn.Config{
		Registry:               e.Registry,
		Env:                    e.environment(),
		RNG:                    e.RNG,
		Think:                  e.think,
		UpLadders:              e.upLadders,
		DrawVariant:            e.drawVariant,
		FloorsPerReinforcement: e.Cfg.FloorsPerReinforcement,
		RebuildGoalMaps:        e.rebuildGoalMaps,
		ImmunityTurns:          2,
	}
}

// RunTurn executes one §4.H turn against the player's intent. ctx is
// observed only for cancellation between the generation and resolver
// phases per §5; RunTurn itself never blocks.
func (e *Engine) RunTurn(ctx context.Context, intent entity.Command) (turn.Report, error) {
	select {
	case <-ctx.Done():
		return turn.Report{}, ctx.Err()
	default:
	}
	if e.Pipeline == nil {
		e.Pipeline = turn.NewPipeline(e.pipelineConfig())
	}
	return e.Pipeline.RunTurn(intent), nil
}

package turn

import (
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/rng"
)

// Config wires the pipeline to the rest of the engine without the turn
// package importing pkg/zone or pkg/pathing directly.
type Config struct {
	Registry *entity.Registry
	Env      entity.Environment
	RNG      *rng.RNG

	// Think computes an NPC's command for this turn.
	Think func(e *entity.Entity) entity.Command

	// UpLadders returns every up-ladder position eligible for a wave
	// spawn: present, unshackled, and not already holding a good NPC.
	UpLadders func() []geom.Offset

	// DrawVariant picks a good-NPC variant for a new wave spawn, biased by
	// the current depth per §4.H step 5.
	DrawVariant func(depth int) entity.Variant

	// FloorsPerReinforcement makes RunTurn run a second spawn pass on every
	// turn at each depth that is a positive multiple of N. That pass uses
	// the same WaveSize cap, so it only fills a shortfall left by the first
	// pass; it does not add NPCs beyond WaveSize, and it is not limited to
	// one turn. Zero disables reinforcement.
	FloorsPerReinforcement int

	// RebuildGoalMaps refreshes both goal maps after command resolution.
	RebuildGoalMaps func()

	// ImmunityTurns is how long a freshly spawned animate NPC sits out of
	// dispatch before it starts acting.
	ImmunityTurns int
}

// Pipeline drives one depth level's worth of turns.
type Pipeline struct {
	Phase Phase
	Stats Stats
	cfg   Config
}

// NewPipeline constructs a Pipeline in the Playing phase.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{Phase: Playing, cfg: cfg}
}

// Report summarizes one RunTurn call.
type Report struct {
	PlayerOutcome entity.Outcome
	NPCOutcomes   []entity.Outcome
	Spawned       int
	Reinforced    bool
}

// RunTurn executes the §4.H per-turn sequence once. intent.Kind == None
// skips player resolution entirely (the epoch was not due).
func (p *Pipeline) RunTurn(intent entity.Command) Report {
	var report Report

	if intent.Kind != entity.None {
		report.PlayerOutcome = p.cfg.Registry.Resolve(intent, p.cfg.Env)
	}

	for _, npc := range p.cfg.Registry.AnimateDispatchOrder() {
		if npc.Variant == entity.Player || npc.SpawnImmunity > 0 {
			continue
		}
		cmd := p.cfg.Think(npc)
		report.NPCOutcomes = append(report.NPCOutcomes, p.cfg.Registry.Resolve(cmd, p.cfg.Env))
	}

	report.Spawned = p.spawnWave()

	if p.cfg.FloorsPerReinforcement > 0 && p.Stats.GameDepth > 0 &&
		p.Stats.GameDepth%p.cfg.FloorsPerReinforcement == 0 {
		p.spawnWave()
		report.Reinforced = true
	}

	if p.cfg.RebuildGoalMaps != nil {
		p.cfg.RebuildGoalMaps()
	}

	p.advanceImmunity()

	return report
}

// liveGoodNPCs counts good, non-player animate entities currently in the
// registry.
func (p *Pipeline) liveGoodNPCs() int {
	n := 0
	for _, e := range p.cfg.Registry.All() {
		if e.Variant != entity.Player && e.Variant.Good() && e.Alive() {
			n++
		}
	}
	return n
}

// spawnWave spawns up to WaveSize - liveGoodNPCs new good NPCs at eligible
// up-ladders, per §4.H step 5. Returns the number actually spawned.
func (p *Pipeline) spawnWave() int {
	if p.cfg.UpLadders == nil || p.cfg.DrawVariant == nil {
		return 0
	}
	need := p.Stats.WaveSize - p.liveGoodNPCs()
	if need <= 0 {
		return 0
	}

	spawned := 0
	for _, pos := range p.cfg.UpLadders() {
		if spawned >= need {
			break
		}
		if p.cfg.Registry.Contains(pos) {
			continue
		}
		variant := p.cfg.DrawVariant(p.Stats.GameDepth)
		p.cfg.Registry.Add(&entity.Entity{
			Variant:       variant,
			Position:      pos,
			HP:            1,
			MaxHP:         1,
			SpawnImmunity: p.cfg.ImmunityTurns,
		})
		spawned++
	}
	return spawned
}

// advanceImmunity decrements every animate entity's spawn-immunity
// counter, promoting fresh spawns to acting entities once it reaches zero.
func (p *Pipeline) advanceImmunity() {
	for _, e := range p.cfg.Registry.All() {
		if e.SpawnImmunity > 0 {
			e.SpawnImmunity--
		}
	}
}

// Descend transitions Playing → Loading and increments GameDepth; no other
// pipeline state is reset. The caller is responsible for discarding the old zone
// and registry and constructing new ones once generation completes, then
// calling Resume.
func (p *Pipeline) Descend() {
	p.Phase = Loading
	p.Stats.GameDepth++
}

// Resume transitions Loading → Playing after generation has published a
// new zone and registry.
func (p *Pipeline) Resume(registry *entity.Registry, env entity.Environment) {
	p.cfg.Registry = registry
	p.cfg.Env = env
	p.Phase = Playing
}

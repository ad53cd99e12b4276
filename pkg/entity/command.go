package entity

import "github.com/ryanlockhart/bleak/pkg/geom"

// Kind names one entity-command per §3.
type Kind int

const (
	None Kind = iota
	Move
	Clash
	Consume
	RandomWarp
	TargetWarp
	ConsumeWarp
	CalciticInvocation
	SpectralInvocation
	SanguineInvocation
	NecromanticAscendance
	Exorcise
	Resurrect
	Anoint
	SummonWraith
	GrandSummoning
)

func (k Kind) String() string {
	names := [...]string{
		"none", "move", "clash", "consume", "random-warp", "target-warp",
		"consume-warp", "calcitic-invocation", "spectral-invocation",
		"sanguine-invocation", "necromantic-ascendance", "exorcise",
		"resurrect", "anoint", "summon-wraith", "grand-summoning",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Command is one actor's intended action for this turn.
type Command struct {
	Kind   Kind
	Source geom.Offset
	Target geom.Offset
}

// invocations name the AoE-conversion command kinds, each with a fixed
// energy cost and radius. Numeric balance is implementation-defined where
// §4.G and §8 scenario 6 do not pin it down; scenario 6 fixes
// SanguineInvocation at cost 3, radius 2, converting Skulls to Wraiths.
type invocationSpec struct {
	cost   int
	radius int
	result Variant
}

var invocations = map[Kind]invocationSpec{
	CalciticInvocation:  {cost: 2, radius: 2, result: Skeleton},
	SpectralInvocation:  {cost: 4, radius: 2, result: FleshGolem},
	SanguineInvocation:  {cost: 3, radius: 2, result: Wraith},
	GrandSummoning:      {cost: 6, radius: 3, result: Wraith},
}

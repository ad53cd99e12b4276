package entity

import (
	"math"

	"github.com/ryanlockhart/bleak/pkg/geom"
)

// Environment supplies the zone facts Resolve needs without coupling the
// entity package to pkg/zone or pkg/cellstate directly.
type Environment struct {
	// Interior reports whether pos belongs to the zone's Interior region.
	Interior func(pos geom.Offset) bool
	// Solid reports whether pos is currently impassable terrain.
	Solid func(pos geom.Offset) bool
	// RandomOpenCell returns a uniformly random legal warp destination, or
	// ok=false if none exists. Only consulted by RandomWarp.
	RandomOpenCell func() (geom.Offset, bool)
}

// legal reports whether pos is a valid destination for Move/Warp: inside
// the Interior, not solid, not occupied.
func (r *Registry) legal(env Environment, pos geom.Offset) bool {
	return env.Interior(pos) && !env.Solid(pos) && !r.Contains(pos)
}

const clashDamage = 1
const consumeHealAmount = 2
const anointArmorBonus = 1
const resurrectCost = 2

// Outcome reports whether cmd took effect. §4.G / §7.2: illegal commands
// are no-ops that do not consume the actor's turn; legal commands always
// consume it, even with a nil effect.
type Outcome struct {
	Resolved bool
	Detail   string
}

// Resolve applies cmd against the registry and env, mutating entity state
// and registry keys in place.
func (r *Registry) Resolve(cmd Command, env Environment) Outcome {
	actor, ok := r.At(cmd.Source)
	if !ok || !actor.Alive() {
		return Outcome{Resolved: false, Detail: "no living actor at source"}
	}

	switch cmd.Kind {
	case None:
		return Outcome{Resolved: false, Detail: "no intent"}

	case Move:
		if !r.legal(env, cmd.Target) {
			return Outcome{Resolved: false, Detail: "illegal move"}
		}
		r.Move(cmd.Source, cmd.Target)
		return Outcome{Resolved: true}

	case Clash:
		return r.resolveClash(actor, cmd, env)

	case Consume:
		target, ok := r.At(cmd.Target)
		if !ok {
			return Outcome{Resolved: false, Detail: "nothing to consume"}
		}
		r.Remove(cmd.Target)
		actor.HP = min(actor.MaxHP, actor.HP+consumeHealAmount)
		_ = target
		return Outcome{Resolved: true}

	case RandomWarp:
		dest, ok := env.RandomOpenCell()
		if !ok {
			return Outcome{Resolved: false, Detail: "no open cell to warp to"}
		}
		r.Move(cmd.Source, dest)
		return Outcome{Resolved: true}

	case TargetWarp:
		if !r.legal(env, cmd.Target) {
			return Outcome{Resolved: false, Detail: "illegal warp target"}
		}
		r.Move(cmd.Source, cmd.Target)
		return Outcome{Resolved: true}

	case ConsumeWarp:
		if !env.Interior(cmd.Target) || env.Solid(cmd.Target) {
			return Outcome{Resolved: false, Detail: "illegal warp target"}
		}
		r.Remove(cmd.Target)
		r.Move(cmd.Source, cmd.Target)
		return Outcome{Resolved: true}

	case CalciticInvocation, SpectralInvocation, SanguineInvocation, GrandSummoning:
		return r.resolveInvocation(actor, cmd)

	case NecromanticAscendance:
		if actor.Variant != Player {
			return Outcome{Resolved: false, Detail: "only the player ascends"}
		}
		actor.Energy = 0
		actor.Fresh = false
		actor.Piety = 0
		return Outcome{Resolved: true}

	case Exorcise:
		target, ok := r.AtVariant(cmd.Target, Skull)
		if !ok {
			return Outcome{Resolved: false, Detail: "no skull to exorcise"}
		}
		r.Remove(cmd.Target)
		_ = target
		return Outcome{Resolved: true}

	case Resurrect:
		if actor.Piety < resurrectCost {
			return Outcome{Resolved: false, Detail: "insufficient piety"}
		}
		target, ok := r.At(cmd.Target)
		if !ok || !target.Variant.Good() {
			return Outcome{Resolved: false, Detail: "no ally to resurrect"}
		}
		target.HP = target.MaxHP
		actor.Piety -= resurrectCost
		return Outcome{Resolved: true}

	case Anoint:
		target, ok := r.At(cmd.Target)
		if !ok || !target.Variant.Good() {
			return Outcome{Resolved: false, Detail: "no ally to anoint"}
		}
		target.Armor += anointArmorBonus
		return Outcome{Resolved: true}

	case SummonWraith:
		return r.convertSkulls(actor, cmd.Target, 1, 0, SanguineInvocation)

	default:
		return Outcome{Resolved: false, Detail: "unknown command kind"}
	}
}

func (r *Registry) resolveClash(actor *Entity, cmd Command, env Environment) Outcome {
	target, ok := r.At(cmd.Target)
	if !ok {
		return Outcome{Resolved: false, Detail: "nothing to clash with"}
	}

	damage := clashDamage - target.Armor
	if damage < 0 {
		damage = 0
	}
	target.HP -= damage

	if target.HP <= 0 && target.Variant.Animate() {
		r.Remove(cmd.Target)
		skull := &Entity{Variant: Skull, Position: cmd.Target, Fresh: actor.Variant.Good()}
		r.Add(skull)
	}
	return Outcome{Resolved: true}
}

// resolveInvocation converts every Skull within the invocation's radius of
// actor's position into invocations[cmd.Kind].result, paying the fixed
// energy cost once regardless of how many skulls convert. Fails (no-op,
// no energy spent) if actor cannot afford the cost or no skull is in
// range — §7.2's "AoE with no eligible targets".
func (r *Registry) resolveInvocation(actor *Entity, cmd Command) Outcome {
	spec, ok := invocations[cmd.Kind]
	if !ok {
		return Outcome{Resolved: false, Detail: "unknown invocation"}
	}
	if actor.Energy < spec.cost {
		return Outcome{Resolved: false, Detail: "insufficient energy"}
	}
	return r.convertSkulls(actor, actor.Position, math.MaxInt, spec.radius, cmd.Kind)
}

func (r *Registry) convertSkulls(actor *Entity, center geom.Offset, limit, radius int, kind Kind) Outcome {
	spec, known := invocations[kind]
	result := Wraith
	cost := 0
	if known {
		result = spec.result
		cost = spec.cost
	}

	var targets []geom.Offset
	for pos, v := range r.variantAt {
		if v != Skull {
			continue
		}
		if int(geom.Distance(geom.Chebyshev, pos, center)) > radius {
			continue
		}
		targets = append(targets, pos)
	}
	if len(targets) == 0 {
		return Outcome{Resolved: false, Detail: "no eligible skulls"}
	}
	if cost > 0 {
		actor.Energy -= cost
	}

	converted := 0
	for _, pos := range targets {
		if converted >= limit {
			break
		}
		skull, _ := r.AtVariant(pos, Skull)
		if skull == nil || !skull.Fresh {
			continue
		}
		r.Remove(pos)
		r.Add(&Entity{Variant: result, Position: pos, HP: 1, MaxHP: 1})
		converted++
	}
	if converted == 0 {
		if cost > 0 {
			actor.Energy += cost
		}
		return Outcome{Resolved: false, Detail: "no fresh skulls in range"}
	}
	return Outcome{Resolved: true}
}

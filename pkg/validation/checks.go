package validation

import (
	"fmt"

	"github.com/ryanlockhart/bleak/pkg/area"
	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/fov"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/pathing"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// CheckBorderClosed verifies every Border cell of z is solid and opaque.
func CheckBorderClosed(z *zone.CellZone) Result {
	for _, pos := range z.Offsets(zone.Border) {
		c := z.At(pos)
		if !c.Solid() || !c.Opaque() {
			return Result{Name: "border-closed", Satisfied: false,
				Detail: fmt.Sprintf("border cell %v is not solid+opaque", pos)}
		}
	}
	return Result{Name: "border-closed", Satisfied: true}
}

// CheckRegistryUniqueness verifies at most one entity occupies any offset.
func CheckRegistryUniqueness(r *entity.Registry) Result {
	seen := make(map[geom.Offset]int)
	for _, e := range r.All() {
		seen[e.Position]++
	}
	for pos, count := range seen {
		if count > 1 {
			return Result{Name: "registry-uniqueness", Satisfied: false,
				Detail: fmt.Sprintf("offset %v holds %d entities", pos, count)}
		}
	}
	return Result{Name: "registry-uniqueness", Satisfied: true}
}

// KillSnapshot is one turn's kill counters, used by CheckKillsMonotonic to
// verify a sequence never regresses.
type KillSnapshot struct {
	PlayerKills int
	MinionKills int
}

// CheckKillsMonotonic verifies that no snapshot holds a negative counter
// and that neither counter ever decreases across the sequence.
func CheckKillsMonotonic(snapshots []KillSnapshot) Result {
	for i, s := range snapshots {
		if s.PlayerKills < 0 || s.MinionKills < 0 {
			return Result{Name: "kills-monotonic", Satisfied: false,
				Detail: fmt.Sprintf("snapshot %d has a negative kill counter", i)}
		}
		if i == 0 {
			continue
		}
		prev := snapshots[i-1]
		if s.PlayerKills < prev.PlayerKills || s.MinionKills < prev.MinionKills {
			return Result{Name: "kills-monotonic", Satisfied: false,
				Detail: fmt.Sprintf("snapshot %d regresses from snapshot %d", i, i-1)}
		}
	}
	return Result{Name: "kills-monotonic", Satisfied: true}
}

// CheckGoalMapGradient verifies that every finite-valued cell in f is
// either a goal (value 0) or has a neighbour one step closer, per §8's
// goal-map invariant.
func CheckGoalMapGradient(f *pathing.Field) Result {
	size := f.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := geom.Offset{X: x, Y: y}
			v := f.At(pos)
			if v == pathing.Unreachable || v == 0 {
				continue
			}
			hasStep := false
			for _, d := range geom.CardinalNeighbourOffsets {
				if f.At(pos.Add(d)) == v-1 {
					hasStep = true
					break
				}
			}
			if !hasStep {
				return Result{Name: "goal-map-gradient", Satisfied: false,
					Detail: fmt.Sprintf("cell %v has value %d with no neighbour at %d", pos, v, v-1)}
			}
		}
	}
	return Result{Name: "goal-map-gradient", Satisfied: true}
}

// CheckFOVSymmetry verifies the approximate symmetry property: for every q
// visible from p, p is visible from q under the same radius and an
// unlimited span.
func CheckFOVSymmetry(pass func(geom.Offset) bool, origin geom.Offset, radius int) Result {
	fromOrigin := fov.Cast(fov.Params{Origin: origin, Radius: radius, Pass: pass})
	for _, q := range fromOrigin.Offsets() {
		fromQ := fov.Cast(fov.Params{Origin: q, Radius: radius, Pass: pass})
		if !fromQ.Contains(origin) {
			return Result{Name: "fov-symmetry", Satisfied: false,
				Detail: fmt.Sprintf("%v sees %v but not vice versa", origin, q)}
		}
	}
	return Result{Name: "fov-symmetry", Satisfied: true}
}

// CheckExtentRoundTrip verifies extent -> offset -> extent round-trips to
// identity via component re-packing.
func CheckExtentRoundTrip(e geom.Extent) Result {
	o := geom.Offset{X: e.W, Y: e.H}
	back := geom.Extent{W: o.X, H: o.Y}
	if back != e {
		return Result{Name: "extent-round-trip", Satisfied: false,
			Detail: fmt.Sprintf("%v round-tripped to %v", e, back)}
	}
	return Result{Name: "extent-round-trip", Satisfied: true}
}

// CheckColorRoundTrip verifies RGBA8 pack/unpack is the identity.
func CheckColorRoundTrip(c cellstate.RGBA8) Result {
	back := cellstate.UnpackRGBA8(c.Pack())
	if back != c {
		return Result{Name: "color-round-trip", Satisfied: false,
			Detail: fmt.Sprintf("%+v round-tripped to %+v", c, back)}
	}
	return Result{Name: "color-round-trip", Satisfied: true}
}

// CheckAreaSetIdempotent verifies applying the same Area.Set(trait) twice
// equals applying it once.
func CheckAreaSetIdempotent(z *zone.CellZone, a *area.Area, trait cellstate.Trait) Result {
	a.Set(z, trait)
	once := snapshotTraits(z, a, trait)
	a.Set(z, trait)
	twice := snapshotTraits(z, a, trait)

	for i := range once {
		if once[i] != twice[i] {
			return Result{Name: "area-set-idempotent", Satisfied: false,
				Detail: "repeated Set produced a different result than a single Set"}
		}
	}
	return Result{Name: "area-set-idempotent", Satisfied: true}
}

func snapshotTraits(z *zone.CellZone, a *area.Area, trait cellstate.Trait) []bool {
	offsets := a.Offsets()
	out := make([]bool, len(offsets))
	for i, pos := range offsets {
		out[i] = z.At(pos).Has(trait)
	}
	return out
}

// RunAll executes every invariant check that applies to a complete engine
// snapshot and aggregates the results into a Report.
func RunAll(z *zone.CellZone, r *entity.Registry, f *pathing.Field) *Report {
	report := &Report{}
	report.append(CheckBorderClosed(z))
	report.append(CheckRegistryUniqueness(r))
	if f != nil {
		report.append(CheckGoalMapGradient(f))
	}
	return report
}

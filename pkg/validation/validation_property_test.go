package validation

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/ryanlockhart/bleak/pkg/area"
	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/pathing"
)

// TestPropertyBorderAlwaysClosed verifies CheckBorderClosed is satisfied for
// every zone size CloseBorder is asked to close, not just the fixed 6x6
// fixture in validation_test.go.
func TestPropertyBorderAlwaysClosed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(3, 40).Draw(t, "w")
		h := rapid.IntRange(3, 40).Draw(t, "h")
		z := newClosedZone(w, h)
		if !CheckBorderClosed(z).Satisfied {
			t.Fatalf("CloseBorder left an open border cell on a %dx%d zone", w, h)
		}
	})
}

// TestPropertyRegistryUniquenessHoldsForAnyPlacement verifies no sequence of
// non-colliding Add calls can produce a registry two entities share a
// position in.
func TestPropertyRegistryUniquenessHoldsForAnyPlacement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		r := entity.NewRegistry()
		used := make(map[geom.Offset]bool)
		for i := 0; i < n; i++ {
			pos := geom.Offset{
				X: rapid.IntRange(0, 63).Draw(t, "x"),
				Y: rapid.IntRange(0, 63).Draw(t, "y"),
			}
			if used[pos] {
				continue
			}
			used[pos] = true
			r.Add(&entity.Entity{Variant: entity.Skull, Position: pos})
		}
		if !CheckRegistryUniqueness(r).Satisfied {
			t.Fatal("a registry built only from non-colliding placements should never fail uniqueness")
		}
	})
}

// TestPropertyKillsMonotonicAcceptsNonDecreasingSequences verifies any
// randomly generated non-decreasing walk of kill counters passes, and that
// inserting a single regression anywhere in the walk always fails it.
func TestPropertyKillsMonotonicAcceptsNonDecreasingSequences(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		snapshots := make([]KillSnapshot, steps)
		player, minion := 0, 0
		for i := 0; i < steps; i++ {
			player += rapid.IntRange(0, 3).Draw(t, "playerDelta")
			minion += rapid.IntRange(0, 3).Draw(t, "minionDelta")
			snapshots[i] = KillSnapshot{PlayerKills: player, MinionKills: minion}
		}
		if !CheckKillsMonotonic(snapshots).Satisfied {
			t.Fatal("a walk built from non-negative deltas must satisfy the monotonic check")
		}

		if steps < 2 {
			return
		}
		regressAt := rapid.IntRange(1, steps-1).Draw(t, "regressAt")
		broken := make([]KillSnapshot, len(snapshots))
		copy(broken, snapshots)
		broken[regressAt].PlayerKills = 0
		broken[regressAt].MinionKills = 0
		if broken[regressAt-1].PlayerKills == 0 && broken[regressAt-1].MinionKills == 0 {
			return // zeroing a snapshot already at zero is not a regression
		}
		if CheckKillsMonotonic(broken).Satisfied {
			t.Fatal("zeroing a mid-sequence snapshot after a nonzero one should fail the check")
		}
	})
}

// TestPropertyGoalMapGradientHoldsForAnyGoalSet verifies every Dijkstra
// build over an open, unobstructed field satisfies the gradient invariant
// regardless of field size or goal placement.
func TestPropertyGoalMapGradientHoldsForAnyGoalSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(2, 24).Draw(t, "w")
		h := rapid.IntRange(2, 24).Draw(t, "h")
		size := geom.Extent{W: w, H: h}

		goalCount := rapid.IntRange(1, 5).Draw(t, "goalCount")
		goals := make([]geom.Offset, goalCount)
		for i := range goals {
			goals[i] = geom.Offset{
				X: rapid.IntRange(0, w-1).Draw(t, "gx"),
				Y: rapid.IntRange(0, h-1).Draw(t, "gy"),
			}
		}

		f := pathing.Build(size, pathing.BuildConfig{Goals: goals})
		if !CheckGoalMapGradient(f).Satisfied {
			t.Fatalf("unobstructed Dijkstra build over a %dx%d field with goals %v broke the gradient invariant", w, h, goals)
		}
	})
}

// TestPropertyExtentRoundTripIsIdentity verifies the extent<->offset
// repacking is lossless for any extent with width and height in
// [0, 1<<20].
func TestPropertyExtentRoundTripIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := geom.Extent{
			W: rapid.IntRange(0, 1<<20).Draw(t, "w"),
			H: rapid.IntRange(0, 1<<20).Draw(t, "h"),
		}
		if !CheckExtentRoundTrip(e).Satisfied {
			t.Fatalf("extent %v failed to round-trip", e)
		}
	})
}

// TestPropertyColorRoundTripIsIdentity verifies RGBA8 pack/unpack is
// lossless for any byte-range channel combination.
func TestPropertyColorRoundTripIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := cellstate.RGBA8{
			R: uint8(rapid.IntRange(0, 255).Draw(t, "r")),
			G: uint8(rapid.IntRange(0, 255).Draw(t, "g")),
			B: uint8(rapid.IntRange(0, 255).Draw(t, "b")),
			A: uint8(rapid.IntRange(0, 255).Draw(t, "a")),
		}
		if !CheckColorRoundTrip(c).Satisfied {
			t.Fatalf("color %+v failed to round-trip", c)
		}
	})
}

// TestPropertyAreaSetIsIdempotentForAnyTrait verifies a double Area.Set
// never diverges from a single Set, for any trait and any member subset of
// a zone's interior.
func TestPropertyAreaSetIsIdempotentForAnyTrait(t *testing.T) {
	traits := []cellstate.Trait{
		cellstate.Damp, cellstate.Warm, cellstate.Smooth,
		cellstate.Protrudes, cellstate.Smelly, cellstate.Toxic, cellstate.Bloodied,
	}
	rapid.Check(t, func(t *rapid.T) {
		z := newClosedZone(10, 10)
		n := rapid.IntRange(0, 20).Draw(t, "n")
		var offsets []geom.Offset
		for i := 0; i < n; i++ {
			offsets = append(offsets, geom.Offset{
				X: rapid.IntRange(1, 8).Draw(t, "ax"),
				Y: rapid.IntRange(1, 8).Draw(t, "ay"),
			})
		}
		a := area.New(offsets)
		trait := traits[rapid.IntRange(0, len(traits)-1).Draw(t, "trait")]
		if !CheckAreaSetIdempotent(z, a, trait).Satisfied {
			t.Fatalf("Area.Set(%v) over %v was not idempotent", trait, offsets)
		}
	})
}

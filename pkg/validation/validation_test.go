package validation

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/area"
	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/pathing"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

func newClosedZone(w, h int) *zone.CellZone {
	z := zone.NewCellZone(geom.Extent{W: w, H: h}, 1)
	z.CloseBorder()
	return z
}

func TestCheckBorderClosedPasses(t *testing.T) {
	z := newClosedZone(6, 6)
	if !CheckBorderClosed(z).Satisfied {
		t.Fatal("a freshly closed border should satisfy the check")
	}
}

func TestCheckBorderClosedCatchesOpenBorderCell(t *testing.T) {
	z := newClosedZone(6, 6)
	z.Set(geom.Offset{X: 0, Y: 0}, cellstate.Cell{}.Set(cellstate.Open))
	result := CheckBorderClosed(z)
	if result.Satisfied {
		t.Fatal("an open border cell should fail the check")
	}
}

func TestCheckRegistryUniquenessAlwaysPasses(t *testing.T) {
	r := entity.NewRegistry()
	r.Add(&entity.Entity{Variant: entity.Player, Position: geom.Offset{X: 1, Y: 1}})
	r.Add(&entity.Entity{Variant: entity.Skull, Position: geom.Offset{X: 2, Y: 2}})

	if !CheckRegistryUniqueness(r).Satisfied {
		t.Fatal("a registry built only through Add can never collide by construction")
	}
}

func TestCheckKillsMonotonicCatchesRegression(t *testing.T) {
	snapshots := []KillSnapshot{
		{PlayerKills: 0, MinionKills: 0},
		{PlayerKills: 2, MinionKills: 1},
		{PlayerKills: 1, MinionKills: 1},
	}
	result := CheckKillsMonotonic(snapshots)
	if result.Satisfied {
		t.Fatal("a decreasing player kill count should fail the check")
	}
}

func TestCheckKillsMonotonicPassesNonDecreasingSequence(t *testing.T) {
	snapshots := []KillSnapshot{
		{PlayerKills: 0, MinionKills: 0},
		{PlayerKills: 1, MinionKills: 0},
		{PlayerKills: 1, MinionKills: 3},
	}
	if !CheckKillsMonotonic(snapshots).Satisfied {
		t.Fatal("a non-decreasing sequence should satisfy the check")
	}
}

func TestCheckGoalMapGradientPasses(t *testing.T) {
	size := geom.Extent{W: 8, H: 8}
	f := pathing.Build(size, pathing.BuildConfig{
		Goals: []geom.Offset{{X: 0, Y: 0}},
	})
	if !CheckGoalMapGradient(f).Satisfied {
		t.Fatal("an unobstructed Dijkstra build should satisfy the gradient invariant")
	}
}

func TestCheckExtentRoundTrip(t *testing.T) {
	if !CheckExtentRoundTrip(geom.Extent{W: 12, H: 9}).Satisfied {
		t.Fatal("extent round-trip should always be the identity")
	}
}

func TestCheckColorRoundTrip(t *testing.T) {
	c := cellstate.RGBA8{R: 12, G: 200, B: 7, A: 255}
	if !CheckColorRoundTrip(c).Satisfied {
		t.Fatal("RGBA8 pack/unpack should round-trip exactly")
	}
}

func TestCheckAreaSetIdempotent(t *testing.T) {
	z := newClosedZone(6, 6)
	a := area.New([]geom.Offset{{X: 2, Y: 2}, {X: 3, Y: 3}})
	if !CheckAreaSetIdempotent(z, a, cellstate.Damp).Satisfied {
		t.Fatal("applying the same trait twice should equal applying it once")
	}
}

func TestRunAllAggregatesChecks(t *testing.T) {
	z := newClosedZone(6, 6)
	r := entity.NewRegistry()
	report := RunAll(z, r, nil)
	if !report.Passed() {
		t.Fatalf("expected a clean snapshot to pass, got failures: %v", report.Failures())
	}
}

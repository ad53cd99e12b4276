package fov

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/geom"
)

func allOpen(geom.Offset) bool { return true }

func TestEmptyZoneFOVRadius3(t *testing.T) {
	origin := geom.Offset{X: 5, Y: 5}
	a := Cast(Params{Origin: origin, Radius: 3, Pass: allOpen})

	if got := a.Len(); got != 29 {
		t.Fatalf("visible count = %d, want 29", got)
	}
	for _, pos := range a.Offsets() {
		dx, dy := pos.X-origin.X, pos.Y-origin.Y
		if dx*dx+dy*dy > 9 {
			t.Fatalf("offset %v outside radius 3 (squared dist %d)", pos, dx*dx+dy*dy)
		}
	}
	if !a.Contains(origin) {
		t.Fatal("origin must always be visible")
	}
}

func TestRadiusZeroOnlyOrigin(t *testing.T) {
	origin := geom.Offset{X: 2, Y: 2}
	a := Cast(Params{Origin: origin, Radius: 0, Pass: allOpen})
	if a.Len() != 1 || !a.Contains(origin) {
		t.Fatalf("radius 0 should show only the origin, got %v", a.Offsets())
	}
}

func TestWallOccludes(t *testing.T) {
	origin := geom.Offset{X: 5, Y: 5}
	wall := geom.Offset{X: 5, Y: 4}
	pass := func(pos geom.Offset) bool { return pos != wall }

	a := Cast(Params{Origin: origin, Radius: 5, Pass: pass})

	if !a.Contains(wall) {
		t.Fatal("the wall cell itself should still be visible")
	}
	for dy := 3; dy >= 0; dy-- {
		pos := geom.Offset{X: 5, Y: dy}
		if a.Contains(pos) {
			t.Fatalf("cell %v beyond the wall should be occluded", pos)
		}
	}
	if !a.Contains(geom.Offset{X: 4, Y: 4}) || !a.Contains(geom.Offset{X: 6, Y: 4}) {
		t.Fatal("cells beside the wall at the same row should remain visible")
	}
}

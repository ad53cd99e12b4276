package themes

import (
	"testing"

	"github.com/ryanlockhart/bleak/pkg/rng"
)

func TestRockMineralTableValidateRejectsEmpty(t *testing.T) {
	tbl := &RockMineralTable{}
	if err := tbl.Validate(); err == nil {
		t.Fatal("expected validation error for empty table")
	}
}

func TestRockMineralTableBracketSelection(t *testing.T) {
	tbl := &RockMineralTable{
		Brackets: []RockMineralBracket{
			{MinDepth: 0, Rocks: []WeightedEntry{{Name: "limestone", Weight: 1}}},
			{MinDepth: 5, Rocks: []WeightedEntry{{Name: "basalt", Weight: 1}}},
		},
	}
	r := rng.NewFromSeed(1)
	rock, _ := tbl.Draw(r, 0)
	if rock.String() != "limestone" {
		t.Fatalf("depth 0 should draw from the first bracket, got %v", rock)
	}
	rock, _ = tbl.Draw(r, 10)
	if rock.String() != "basalt" {
		t.Fatalf("depth 10 should draw from the second bracket, got %v", rock)
	}
}

func TestSpawnVariantTableDraw(t *testing.T) {
	tbl := &SpawnVariantTable{
		Brackets: []SpawnVariantBracket{
			{MinDepth: 0, Variants: []WeightedEntry{{Name: "adventurer", Weight: 1}}},
		},
	}
	r := rng.NewFromSeed(2)
	if got := tbl.Draw(r, 3); got != "adventurer" {
		t.Fatalf("draw = %q, want adventurer", got)
	}
}

package themes

import (
	"errors"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ryanlockhart/bleak/pkg/cellstate"
	"github.com/ryanlockhart/bleak/pkg/rng"
)

// WeightedEntry names one choice and its selection weight, the same shape
// as the teacher's EncounterTable entries.
type WeightedEntry struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

func pick(r *rng.RNG, entries []WeightedEntry) string {
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	return entries[r.WeightedChoice(weights)].Name
}

// RockMineralBracket is the rock/mineral weight table in effect from
// MinDepth onward, until the next bracket's MinDepth.
type RockMineralBracket struct {
	MinDepth int             `yaml:"min_depth"`
	Rocks    []WeightedEntry `yaml:"rocks"`
	Minerals []WeightedEntry `yaml:"minerals"`
}

// RockMineralTable is a depth-indexed weighted table over RockType and
// MineralType, consumed by Zone.RandomizeRegion in place of a flat uniform
// draw.
type RockMineralTable struct {
	Name     string               `yaml:"name"`
	Brackets []RockMineralBracket `yaml:"brackets"`
}

// LoadRockMineralTable reads and validates a RockMineralTable from path.
func LoadRockMineralTable(path string) (*RockMineralTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t RockMineralTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks every bracket has at least one rock entry and that
// brackets are sorted by MinDepth, the same shape of check the teacher
// runs on ThemePack's tables.
func (t *RockMineralTable) Validate() error {
	if len(t.Brackets) == 0 {
		return errors.New("themes: rock/mineral table needs at least one bracket")
	}
	for i, b := range t.Brackets {
		if len(b.Rocks) == 0 {
			return errors.New("themes: bracket has no rock entries")
		}
		if i > 0 && b.MinDepth <= t.Brackets[i-1].MinDepth {
			return errors.New("themes: brackets must be sorted by ascending min_depth")
		}
	}
	return nil
}

// bracketFor returns the bracket whose MinDepth is the largest one not
// exceeding depth, falling back to the first bracket for shallower depths.
func (t *RockMineralTable) bracketFor(depth int) RockMineralBracket {
	idx := sort.Search(len(t.Brackets), func(i int) bool {
		return t.Brackets[i].MinDepth > depth
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return t.Brackets[idx]
}

// Draw samples a rock type and, independently, a mineral type for depth.
func (t *RockMineralTable) Draw(r *rng.RNG, depth int) (cellstate.RockType, cellstate.MineralType) {
	b := t.bracketFor(depth)
	rock := rockByName[pick(r, b.Rocks)]
	mineral := cellstate.NoMineral
	if len(b.Minerals) > 0 {
		mineral = mineralByName[pick(r, b.Minerals)]
	}
	return rock, mineral
}

var rockByName = map[string]cellstate.RockType{
	"limestone": cellstate.Limestone,
	"granite":   cellstate.Granite,
	"basalt":    cellstate.Basalt,
	"marble":    cellstate.Marble,
}

var mineralByName = map[string]cellstate.MineralType{
	"none":            cellstate.NoMineral,
	"lignite":         cellstate.Lignite,
	"bituminous_coal": cellstate.BituminousCoal,
	"native_copper":   cellstate.NativeCopper,
	"native_silver":   cellstate.NativeSilver,
	"native_gold":     cellstate.NativeGold,
	"native_platinum": cellstate.NativePlatinum,
	"limonite":        cellstate.Limonite,
	"hematite":        cellstate.Hematite,
	"magnetite":       cellstate.Magnetite,
	"malachite":       cellstate.Malachite,
	"tetrahedrite":    cellstate.Tetrahedrite,
	"garnierite":      cellstate.Garnierite,
	"galena":          cellstate.Galena,
	"sphalerite":      cellstate.Sphalerite,
	"cassiterite":     cellstate.Cassiterite,
}

// SpawnVariantBracket is the Adventurer/Paladin/Priest weight set in
// effect from MinDepth onward.
type SpawnVariantBracket struct {
	MinDepth int             `yaml:"min_depth"`
	Variants []WeightedEntry `yaml:"variants"`
}

// SpawnVariantTable is a depth-indexed weighted table over the three good
// NPC variants, consumed by the turn pipeline's wave-spawn step.
type SpawnVariantTable struct {
	Name     string                `yaml:"name"`
	Brackets []SpawnVariantBracket `yaml:"brackets"`
}

// LoadSpawnVariantTable reads and validates a SpawnVariantTable from path.
func LoadSpawnVariantTable(path string) (*SpawnVariantTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t SpawnVariantTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate mirrors RockMineralTable.Validate for the variant brackets.
func (t *SpawnVariantTable) Validate() error {
	if len(t.Brackets) == 0 {
		return errors.New("themes: spawn variant table needs at least one bracket")
	}
	for i, b := range t.Brackets {
		if len(b.Variants) == 0 {
			return errors.New("themes: bracket has no variant entries")
		}
		if i > 0 && b.MinDepth <= t.Brackets[i-1].MinDepth {
			return errors.New("themes: brackets must be sorted by ascending min_depth")
		}
	}
	return nil
}

func (t *SpawnVariantTable) bracketFor(depth int) SpawnVariantBracket {
	idx := sort.Search(len(t.Brackets), func(i int) bool {
		return t.Brackets[i].MinDepth > depth
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return t.Brackets[idx]
}

// Draw samples a variant name ("adventurer", "paladin", "priest") for
// depth. The caller maps the name onto an entity.Variant; themes does not
// import pkg/entity to avoid a dependency cycle with packages entity might
// need from themes in the future.
func (t *SpawnVariantTable) Draw(r *rng.RNG, depth int) string {
	return pick(r, t.bracketFor(depth).Variants)
}

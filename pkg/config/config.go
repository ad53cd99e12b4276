package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the single YAML document describing one engine run.
type EngineConfig struct {
	// Seed is the master RNG seed. 0 means derive from the wall clock,
	// matching §4.I's "seeded from a non-deterministic source at startup".
	Seed uint64 `yaml:"seed"`

	CellularAutomata CellularAutomataCfg `yaml:"cellular_automata"`
	FOV              FOVCfg              `yaml:"fov"`
	Pathing          PathingCfg          `yaml:"pathing"`
	Wave             WaveCfg             `yaml:"wave"`

	FloorsPerReinforcement int    `yaml:"floors_per_reinforcement"`
	PacingCurve            string `yaml:"pacing_curve"`
	RockMineralTable       string `yaml:"rock_mineral_table"`
	SpawnVariantTable      string `yaml:"spawn_variant_table"`
}

// CellularAutomataCfg parameterizes §4.B's interior carve and collapse.
type CellularAutomataCfg struct {
	Fill           float64 `yaml:"fill"`
	Iterations     int     `yaml:"iterations"`
	Threshold      int     `yaml:"threshold"`
	CollapseBelow  int     `yaml:"collapse_below"`
}

// FOVCfg parameterizes §4.E's shadow-cast defaults.
type FOVCfg struct {
	Radius  int     `yaml:"radius"`
	Limited bool    `yaml:"limited"`
	Span    float64 `yaml:"span"`
}

// PathingCfg selects the metric used by A* and the goal map.
type PathingCfg struct {
	Metric string `yaml:"metric"`
}

// WaveCfg parameterizes §4.H step 5's wave-size formula.
type WaveCfg struct {
	Base    int `yaml:"base"`
	Ceiling int `yaml:"ceiling"`
}

// Load reads and validates an EngineConfig from path, auto-generating a
// seed if one was not supplied.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates an EngineConfig from YAML bytes.
func LoadBytes(data []byte) (*EngineConfig, error) {
	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks every range constraint the engine relies on.
func (c *EngineConfig) Validate() error {
	if c.CellularAutomata.Fill < 0 || c.CellularAutomata.Fill > 1 {
		return fmt.Errorf("cellular_automata.fill must be in [0,1], got %f", c.CellularAutomata.Fill)
	}
	if c.CellularAutomata.Iterations < 0 {
		return fmt.Errorf("cellular_automata.iterations must be >= 0, got %d", c.CellularAutomata.Iterations)
	}
	if c.CellularAutomata.Threshold < 0 || c.CellularAutomata.Threshold > 8 {
		return fmt.Errorf("cellular_automata.threshold must be in [0,8], got %d", c.CellularAutomata.Threshold)
	}
	if c.CellularAutomata.CollapseBelow < 0 {
		return fmt.Errorf("cellular_automata.collapse_below must be >= 0, got %d", c.CellularAutomata.CollapseBelow)
	}
	if c.FOV.Radius <= 0 {
		return fmt.Errorf("fov.radius must be > 0, got %d", c.FOV.Radius)
	}
	if c.FOV.Limited && (c.FOV.Span <= 0 || c.FOV.Span > 2*3.141592653589793) {
		return fmt.Errorf("fov.span must be in (0, 2*pi] when fov.limited is set, got %f", c.FOV.Span)
	}
	switch c.Pathing.Metric {
	case "manhattan", "chebyshev", "octile", "euclidean":
	default:
		return fmt.Errorf("pathing.metric %q is not one of manhattan/chebyshev/octile/euclidean", c.Pathing.Metric)
	}
	if c.Wave.Base < 0 {
		return fmt.Errorf("wave.base must be >= 0, got %d", c.Wave.Base)
	}
	if c.Wave.Ceiling < 0 {
		return fmt.Errorf("wave.ceiling must be >= 0, got %d", c.Wave.Ceiling)
	}
	if c.FloorsPerReinforcement < 0 {
		return fmt.Errorf("floors_per_reinforcement must be >= 0, got %d", c.FloorsPerReinforcement)
	}
	switch c.PacingCurve {
	case "linear", "s_curve", "exponential", "custom":
	default:
		return fmt.Errorf("pacing_curve %q is not one of linear/s_curve/exponential/custom", c.PacingCurve)
	}
	return nil
}

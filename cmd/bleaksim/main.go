// Command bleaksim drives a headless session of the world simulation
// engine for a fixed number of turns and optionally dumps SVG snapshots,
// mirroring the teacher's dungeongen CLI's flag layout and output style.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ryanlockhart/bleak/pkg/config"
	"github.com/ryanlockhart/bleak/pkg/engine"
	"github.com/ryanlockhart/bleak/pkg/entity"
)

const version = "0.1.0"

var (
	configPath = flag.String("config", "", "Path to YAML engine configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for SVG dumps")
	turns      = flag.Int("turns", 50, "Number of turns to simulate")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	dumpSVG    = flag.Bool("svg", false, "Write SVG snapshots of the final zone and depth graph")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("bleaksim version %s\n", version)
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	e := engine.New(cfg, nil, nil, nil)

	if err := e.GenerateLevel(0); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if *verbose {
		fmt.Printf("Seed: %d, depth: 0, player at %v\n", e.RNG.Seed(), e.PlayerPosition())
	}

	for i := 0; i < *turns; i++ {
		if e.PlayerOnDownLadder() {
			if err := e.Descend(); err != nil {
				return fmt.Errorf("descent failed: %w", err)
			}
			if *verbose {
				fmt.Printf("turn %d: descended to depth %d\n", i, e.Pipeline.Stats.GameDepth)
			}
			continue
		}

		if _, err := e.RunTurn(ctx, entity.Command{Kind: entity.None}); err != nil {
			return fmt.Errorf("turn %d failed: %w", i, err)
		}
	}

	report := e.Validate()
	fmt.Printf("Simulated %d turns at depth %d. Validation: %s\n", *turns, e.Pipeline.Stats.GameDepth, status(report.Passed()))
	for _, failure := range report.Failures() {
		fmt.Printf("  FAILED %s: %s\n", failure.Name, failure.Detail)
	}

	if *dumpSVG {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		zonePath := filepath.Join(*outputDir, fmt.Sprintf("zone_%d.svg", cfg.Seed))
		if err := e.DumpSVG(zonePath); err != nil {
			return fmt.Errorf("failed to dump zone SVG: %w", err)
		}
		graphPath := filepath.Join(*outputDir, fmt.Sprintf("depths_%d.svg", cfg.Seed))
		if err := e.DumpDepthGraphSVG(graphPath); err != nil {
			return fmt.Errorf("failed to dump depth graph SVG: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s and %s\n", zonePath, graphPath)
		}
	}

	return nil
}

func status(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

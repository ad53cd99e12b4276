package engine

import (
	"os"

	"github.com/ryanlockhart/bleak/pkg/debugexport"
	"github.com/ryanlockhart/bleak/pkg/validation"
)

// Validate runs every applicable invariant check against the engine's
// current snapshot.
func (e *Engine) Validate() *validation.Report {
	return validation.RunAll(e.Zone, e.Registry, e.GoodToPlayer)
}

// DumpSVG renders the current zone and registry to an SVG file for offline
// inspection.
func (e *Engine) DumpSVG(path string) error {
	opts := debugexport.DefaultOptions()
	opts.Title = levelID(e.Pipeline.Stats.GameDepth)
	return debugexport.SaveZoneToFile(e.Zone, e.Registry, nil, opts, path)
}

// DumpDepthGraphSVG renders the session's depth-connectivity chain to an
// SVG file.
func (e *Engine) DumpDepthGraphSVG(path string) error {
	return os.WriteFile(path, debugexport.ExportDepthGraph(e.Depths, "depth chain"), 0644)
}

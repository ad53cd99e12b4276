package debugexport

import (
	"strings"
	"testing"

	"github.com/ryanlockhart/bleak/pkg/depthgraph"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

func testZone(t *testing.T) *zone.CellZone {
	t.Helper()
	z := zone.NewCellZone(geom.Extent{W: 10, H: 8}, 1)
	z.CloseBorder()
	return z
}

func TestExportZoneProducesValidSVG(t *testing.T) {
	z := testZone(t)
	reg := entity.NewRegistry()
	reg.Add(&entity.Entity{Variant: entity.Player, Position: geom.Offset{X: 4, Y: 4}})

	data := ExportZone(z, reg, nil, DefaultOptions())
	out := string(data)

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("ExportZone did not produce a well-formed SVG document")
	}
}

func TestExportZoneWithoutEntitiesStillRenders(t *testing.T) {
	z := testZone(t)
	opts := DefaultOptions()
	opts.ShowEntities = false

	data := ExportZone(z, nil, nil, opts)
	if len(data) == 0 {
		t.Fatal("expected non-empty SVG output")
	}
}

func TestExportDepthGraphRendersNodes(t *testing.T) {
	g := depthgraph.New()
	g.AddNode(depthgraph.DepthNode{ID: "depth-1", Depth: 1})
	g.AddNode(depthgraph.DepthNode{ID: "depth-2", Depth: 2})
	if err := g.AddEdge(depthgraph.DepthEdge{From: "depth-1", To: "depth-2"}); err != nil {
		t.Fatal(err)
	}

	data := ExportDepthGraph(g, "depth chain")
	if !strings.Contains(string(data), "<svg") {
		t.Fatal("ExportDepthGraph did not produce SVG output")
	}
}

package debugexport

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/ryanlockhart/bleak/pkg/depthgraph"
	"github.com/ryanlockhart/bleak/pkg/entity"
	"github.com/ryanlockhart/bleak/pkg/geom"
	"github.com/ryanlockhart/bleak/pkg/pathing"
	"github.com/ryanlockhart/bleak/pkg/zone"
)

// Options configures one zone snapshot's SVG export.
type Options struct {
	CellSize      int  // pixel size of one grid cell
	ShowEntities  bool // overlay registry contents as colored dots
	ShowGoalField bool // shade each cell by its goal-map distance
	Title         string
}

// DefaultOptions returns sensible defaults for a quick debug dump.
func DefaultOptions() Options {
	return Options{CellSize: 16, ShowEntities: true, Title: "zone snapshot"}
}

// ExportZone renders z, optionally overlaid with reg's entities and f's
// goal-map shading, to an SVG document.
func ExportZone(z *zone.CellZone, reg *entity.Registry, f *pathing.Field, opts Options) []byte {
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	size := z.Size()
	width := size.W*opts.CellSize + 2*margin
	height := size.H*opts.CellSize + 2*margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#15151f")

	if opts.Title != "" {
		canvas.Text(width/2, margin/2, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	drawCells(canvas, z, f, opts)
	if opts.ShowEntities && reg != nil {
		drawEntities(canvas, reg, opts)
	}

	canvas.End()
	return buf.Bytes()
}

// SaveZoneToFile writes ExportZone's output to path with owner-writable
// permissions.
func SaveZoneToFile(z *zone.CellZone, reg *entity.Registry, f *pathing.Field, opts Options, path string) error {
	return os.WriteFile(path, ExportZone(z, reg, f, opts), 0644)
}

const (
	margin       = 24
	headerHeight = 28
)

func drawCells(canvas *svg.SVG, z *zone.CellZone, f *pathing.Field, opts Options) {
	size := z.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := geom.Offset{X: x, Y: y}
			px := margin + x*opts.CellSize
			py := margin + headerHeight + y*opts.CellSize

			color := floorFill
			if z.At(pos).Solid() {
				color = wallFill
			}
			if opts.ShowGoalField && f != nil {
				if v := f.At(pos); v != pathing.Unreachable {
					color = goalFieldColor(v)
				}
			}
			canvas.Rect(px, py, opts.CellSize, opts.CellSize, fmt.Sprintf("fill:%s;stroke:#0a0a10", color))
		}
	}
}

func drawEntities(canvas *svg.SVG, reg *entity.Registry, opts Options) {
	for _, e := range reg.All() {
		px := margin + e.Position.X*opts.CellSize + opts.CellSize/2
		py := margin + headerHeight + e.Position.Y*opts.CellSize + opts.CellSize/2
		radius := opts.CellSize / 3
		canvas.Circle(px, py, radius, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", variantColor(e.Variant)))
	}
}

var (
	floorFill = "#2b2b38"
	wallFill  = "#55555f"
)

func variantColor(v entity.Variant) string {
	switch v {
	case entity.Player:
		return "#48bb78"
	case entity.Skeleton, entity.Wraith, entity.FleshGolem:
		return "#f56565"
	case entity.Adventurer, entity.Paladin, entity.Priest:
		return "#4299e1"
	case entity.Skull:
		return "#e2e8f0"
	case entity.Ladder:
		return "#ed8936"
	default:
		return "#a0aec0"
	}
}

// goalFieldColor fades from hot (near a goal) to cold (far from one), only
// ever applied to cells the field actually reached.
func goalFieldColor(distance int) string {
	switch {
	case distance <= 2:
		return "#ef4444"
	case distance <= 5:
		return "#f59e0b"
	case distance <= 10:
		return "#10b981"
	default:
		return "#3b82f6"
	}
}

// ExportDepthGraph renders a depth-connectivity graph as a simple left-to-
// right chain, one column per node in ascending depth order.
func ExportDepthGraph(g *depthgraph.Graph, title string) []byte {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Depth < nodes[j].Depth })
	const colWidth = 140
	const rowHeight = 60
	width := colWidth*(len(nodes)+1) + margin
	height := rowHeight*2 + margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#15151f")
	if title != "" {
		canvas.Text(width/2, margin/2, title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	positions := make(map[string][2]int, len(nodes))
	for i, n := range nodes {
		px := margin + (i+1)*colWidth
		py := margin + headerHeight + rowHeight
		positions[n.ID] = [2]int{px, py}
	}

	for _, e := range g.Edges() {
		from, fok := positions[e.From]
		to, tok := positions[e.To]
		if !fok || !tok {
			continue
		}
		canvas.Line(from[0], from[1], to[0], to[1], "stroke:#4299e1;stroke-width:2")
	}

	for _, n := range nodes {
		p := positions[n.ID]
		canvas.Circle(p[0], p[1], 18, "fill:#48bb78;stroke:#fff;stroke-width:2")
		canvas.Text(p[0], p[1]+32, n.ID, "text-anchor:middle;font-size:11px;font-family:monospace;fill:#e2e8f0")
	}

	canvas.End()
	return buf.Bytes()
}

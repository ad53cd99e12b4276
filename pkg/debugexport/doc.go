// Package debugexport renders a zone, its entity registry, and its
// depth-connectivity graph to SVG for offline inspection, grounded on the
// teacher's pkg/export SVG visualizer.
package debugexport

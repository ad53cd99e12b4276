// Package geom provides the 2-D integer geometry primitives shared by every
// other package: offsets, extents, eight-way directions, distance metrics,
// and a Bresenham line rasterizer.
package geom

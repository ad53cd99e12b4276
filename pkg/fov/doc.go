// Package fov implements recursive octant shadow-casting field of view
// (§4.E), producing an area.Area of visible offsets from an origin.
package fov

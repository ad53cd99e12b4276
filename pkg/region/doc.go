// Package region tiles several generated zones into one larger map and
// keeps the map playable by discarding every connected component of open
// space except the largest.
package region

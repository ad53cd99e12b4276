// Package cellstate defines the packed per-tile bitfield that a Zone stores:
// boolean traits, rock type, and mineral type, plus glyph/tooltip derivation
// from a tile's neighbourhood.
package cellstate

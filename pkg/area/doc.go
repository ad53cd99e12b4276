// Package area implements Area, an unordered set of offsets with fast
// membership, constructed either by flood-fill on a zone or by selecting
// every cell matching a trait.
package area

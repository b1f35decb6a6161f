// Package match ranks names by similarity.
//
// It backs the "did you mean" hints of manifest validation: an edge that
// names an unknown schema, or a step that names a missing field, is
// reported together with the closest known names.
package match

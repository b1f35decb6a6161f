// Package diagnostic collects validation findings for migration manifests.
//
// Validation reports every problem it finds instead of stopping at the
// first one: unknown schema references, loops, duplicate edges, malformed
// steps. Each finding carries a stable code, the edge or schema it concerns
// and, where possible, suggestions for a fix.
package diagnostic

// Package migration finds and applies chains of schema migrations.
//
// A caller describes every known version of a data shape as a Schema and
// every single-step conversion between two versions as an Edge. Compile
// turns the edge list into an immutable Graph, FindShortestPath searches it
// breadth-first for the route with the fewest hops, and Reduce folds a value
// through the edges of that route in order.
//
// # Lifecycle
//
//	edges := []*migration.Edge[string]{
//	    migration.NewEdge(v1, v2, upgradeV1),
//	    migration.NewEdge(v2, v3, upgradeV2),
//	}
//	graph, err := migration.Compile(edges)
//	...
//	out, err := graph.Migrate("v1", "v3", record)
//
// Compilation is all-or-nothing: a self loop (ErrLoopDetected) or a second
// edge for the same ordered pair of versions (ErrDuplicateEdge) rejects the
// whole list. The reverse direction of an existing edge is a different edge
// and is allowed.
//
// # Paths
//
// A Path is a chain of edges. The empty, non-nil path is the identity
// migration (source equals target); a nil path together with ok == false
// means the versions are not connected. Migrate and Pipeline turn the
// latter into a *NoPathError.
//
// # Concurrency
//
// A Graph is never mutated after Compile returns, so any number of
// goroutines may search and migrate against the same Graph. To add edges,
// compile a new Graph.
//
// # Schemas
//
// The package never calls Schema.Parse. Data passed to Migrate is assumed
// to be valid for the source version already; update functions that need
// strict output re-validate it themselves.
package migration

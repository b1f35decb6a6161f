package migration

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// pair is an ordered (from, to) pair of versions.
type pair[K comparable] struct {
	from K
	to   K
}

// Graph is a compiled, read-only set of migration edges.
type Graph[K comparable] struct {
	// adjacency keeps neighbors in edge insertion order; the search relies
	// on it for deterministic tie breaking.
	adjacency map[K][]K
	index     map[pair[K]]*Edge[K]
	edges     []*Edge[K]
	versions  []K
	known     map[K]struct{}
	logger    zerolog.Logger
}

// Compile validates edges and builds a Graph.
//
// Edges are checked in order. The first edge that is incomplete, loops back
// to its own version or repeats an ordered (from, to) pair aborts compilation
// with an *EdgeError; no partial graph is returned.
//
// Identifiers are used as map keys: with K = any every identifier must hold
// a comparable dynamic type.
func Compile[K comparable](edges []*Edge[K], opts ...Option) (*Graph[K], error) {
	o := newOptions(opts)

	g := &Graph[K]{
		adjacency: make(map[K][]K),
		index:     make(map[pair[K]]*Edge[K], len(edges)),
		edges:     slices.Clone(edges),
		known:     make(map[K]struct{}),
		logger:    o.logger,
	}

	addVersion := func(k K) {
		if _, ok := g.known[k]; !ok {
			g.known[k] = struct{}{}
			g.versions = append(g.versions, k)
		}
	}

	for i, e := range edges {
		if !e.valid() {
			return nil, &EdgeError{Kind: KindInvalidEdge, Index: i}
		}

		from, to := e.from.Version(), e.to.Version()
		if from == to {
			return nil, &EdgeError{Kind: KindLoopDetected, Index: i, From: from, To: to}
		}

		p := pair[K]{from: from, to: to}
		if _, dup := g.index[p]; dup {
			return nil, &EdgeError{Kind: KindDuplicateEdge, Index: i, From: from, To: to}
		}

		g.index[p] = e
		g.adjacency[from] = append(g.adjacency[from], to)

		addVersion(from)
		addVersion(to)
	}

	g.logger.Debug().
		Int("versions", len(g.versions)).
		Int("edges", len(g.edges)).
		Msg("compiled migration graph")

	return g, nil
}

// Edges returns the compiled edges in input order.
func (g *Graph[K]) Edges() []*Edge[K] {
	return slices.Clone(g.edges)
}

// Edge returns the edge from -> to, or nil if there is none.
func (g *Graph[K]) Edge(from, to K) *Edge[K] {
	return g.index[pair[K]{from: from, to: to}]
}

// Neighbors returns the versions directly reachable from k, in edge order.
func (g *Graph[K]) Neighbors(k K) []K {
	return slices.Clone(g.adjacency[k])
}

// Versions returns every version named by an edge, in first-seen order.
func (g *Graph[K]) Versions() []K {
	return slices.Clone(g.versions)
}

// Has reports whether k is an endpoint of any edge.
func (g *Graph[K]) Has(k K) bool {
	_, ok := g.known[k]
	return ok
}

// Len returns the number of edges.
func (g *Graph[K]) Len() int {
	return len(g.edges)
}

func (g *Graph[K]) String() string {
	return fmt.Sprintf("migration graph: %d versions, %d edges", len(g.versions), len(g.edges))
}

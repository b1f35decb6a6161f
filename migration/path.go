package migration

import (
	"fmt"
	"strings"
)

// Path is a chain of edges: every edge starts where the previous one ends.
//
// A non-nil empty Path is the identity migration. A nil Path stands for
// "no path".
type Path[K comparable] []*Edge[K]

// FindShortestPath returns the path with the fewest edges from -> to.
//
// The search is breadth-first over the adjacency lists. When several
// shortest paths exist, the one whose edges were supplied to Compile first
// wins. If from == to the result is an empty path, whether or not from is
// part of the graph. If to cannot be reached the result is (nil, false).
func (g *Graph[K]) FindShortestPath(from, to K) (Path[K], bool) {
	if from == to {
		return Path[K]{}, true
	}

	type frontier struct {
		at   K
		path Path[K]
	}

	queue := []frontier{{at: from}}
	visited := make(map[K]struct{})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.at == to {
			return cur.path, true
		}

		if _, ok := visited[cur.at]; ok {
			continue
		}

		visited[cur.at] = struct{}{}

		for _, next := range g.adjacency[cur.at] {
			if _, ok := visited[next]; ok {
				continue
			}

			// The edge taken is recorded with the step; the compiler
			// guarantees exactly one edge per ordered pair.
			path := make(Path[K], len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, g.index[pair[K]{from: cur.at, to: next}])

			queue = append(queue, frontier{at: next, path: path})
		}
	}

	return nil, false
}

// Hops returns the versions visited by p: the source, then the target of
// every edge.
//
// Paths of zero or one edge have no intermediate hops and yield an empty
// slice. A nil path yields nil.
func (p Path[K]) Hops() []K {
	if p == nil {
		return nil
	}

	if len(p) <= 1 {
		return []K{}
	}

	hops := make([]K, 0, len(p)+1)
	for _, e := range p {
		hops = append(hops, e.from.Version())
	}

	return append(hops, p[len(p)-1].to.Version())
}

// Hops is the function form of Path.Hops.
func Hops[K comparable](p Path[K]) []K {
	return p.Hops()
}

// String renders the path as "a -> b -> c".
func (p Path[K]) String() string {
	if len(p) == 0 {
		return "(identity)"
	}

	var sb strings.Builder

	fmt.Fprint(&sb, p[0].from.Version())

	for _, e := range p {
		fmt.Fprintf(&sb, " -> %v", e.to.Version())
	}

	return sb.String()
}

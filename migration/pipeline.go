package migration

import "slices"

// Pipeline is a migration route resolved once and applied many times.
type Pipeline[K comparable] struct {
	from K
	to   K
	path Path[K]
}

// Pipeline resolves the path from -> to. It fails with a *NoPathError when
// the versions are not connected.
func (g *Graph[K]) Pipeline(from, to K) (*Pipeline[K], error) {
	path, ok := g.FindShortestPath(from, to)
	if !ok {
		return nil, &NoPathError{From: from, To: to}
	}

	g.logger.Debug().
		Interface("from", from).
		Interface("to", to).
		Stringer("path", path).
		Msg("pipeline resolved")

	return &Pipeline[K]{from: from, to: to, path: path}, nil
}

// From returns the source version.
func (p *Pipeline[K]) From() K { return p.from }

// To returns the target version.
func (p *Pipeline[K]) To() K { return p.to }

// Path returns a copy of the resolved edges.
func (p *Pipeline[K]) Path() Path[K] {
	return slices.Clone(p.path)
}

// Hops returns the versions the pipeline passes through.
func (p *Pipeline[K]) Hops() []K {
	return p.path.Hops()
}

// Migrate applies the pipeline to data.
func (p *Pipeline[K]) Migrate(data any) (any, error) {
	return Reduce(p.path, data)
}

package migration

import (
	"fmt"
	"reflect"
)

// Reduce applies the edges of p to seed in order and returns the result.
//
// Intermediate values are not validated; each update must accept what the
// previous one returned. The first failing update stops the fold with a
// *StepError.
func Reduce[K comparable](p Path[K], seed any) (any, error) {
	acc := seed

	for i, e := range p {
		next, err := e.update(acc)
		if err != nil {
			return nil, &StepError{
				Index: i,
				From:  e.from.Version(),
				To:    e.to.Version(),
				Err:   err,
			}
		}

		acc = next
	}

	return acc, nil
}

// Migrate finds the shortest path from -> to and reduces data through it.
// It fails with a *NoPathError when the versions are not connected.
func (g *Graph[K]) Migrate(from, to K, data any) (any, error) {
	path, ok := g.FindShortestPath(from, to)
	if !ok {
		g.logger.Debug().
			Interface("from", from).
			Interface("to", to).
			Msg("no migration path")

		return nil, &NoPathError{From: from, To: to}
	}

	g.logger.Debug().
		Interface("from", from).
		Interface("to", to).
		Int("steps", len(path)).
		Msg("migrating")

	return Reduce(path, data)
}

// MigrateAs is Migrate with the result asserted to T.
func MigrateAs[T any, K comparable](g *Graph[K], from, to K, data any) (T, error) {
	var zero T

	out, err := g.Migrate(from, to, data)
	if err != nil {
		return zero, err
	}

	res, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("migrate %v -> %v: %w", from, to,
			&TypeMismatchError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(out)})
	}

	return res, nil
}

package migration

import (
	"fmt"
	"reflect"
)

// UpdateFunc converts a value of one schema version into the next.
type UpdateFunc func(data any) (any, error)

// Edge is a directed single-step migration between two schemas.
// Edges are immutable and may be shared by several graphs.
type Edge[K comparable] struct {
	from   Schema[K]
	to     Schema[K]
	update UpdateFunc
}

// NewEdge links two schemas with an update function.
// Nothing is validated here; Compile rejects loops and duplicates.
func NewEdge[K comparable](from, to Schema[K], update UpdateFunc) *Edge[K] {
	return &Edge[K]{
		from:   from,
		to:     to,
		update: update,
	}
}

// NewTypedEdge is NewEdge for an update written against concrete types.
func NewTypedEdge[K comparable, A, B any](from, to Schema[K], fn func(A) (B, error)) *Edge[K] {
	return NewEdge(from, to, Typed(fn))
}

// From returns the source schema.
func (e *Edge[K]) From() Schema[K] {
	return e.from
}

// To returns the target schema.
func (e *Edge[K]) To() Schema[K] {
	return e.to
}

// Update applies the edge transform to data.
func (e *Edge[K]) Update(data any) (any, error) {
	return e.update(data)
}

// String returns "from -> to".
func (e *Edge[K]) String() string {
	return fmt.Sprintf("%v -> %v", e.from.Version(), e.to.Version())
}

// valid reports whether the edge has both endpoints and an update.
func (e *Edge[K]) valid() bool {
	return e != nil && e.from != nil && e.to != nil && e.update != nil
}

// Typed wraps fn so it can be used as an UpdateFunc.
// Values that are not an A fail with a *TypeMismatchError.
func Typed[A, B any](fn func(A) (B, error)) UpdateFunc {
	return func(data any) (any, error) {
		in, ok := data.(A)
		if !ok {
			return nil, &TypeMismatchError{
				Want: reflect.TypeFor[A](),
				Got:  reflect.TypeOf(data),
			}
		}

		return fn(in)
	}
}

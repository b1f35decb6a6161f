package migration

// Schema is one version of a data shape.
//
// Version must be stable and comparable; it is the identifier edges are
// matched by. Parse validates an arbitrary input and returns the well-typed
// value for this version.
type Schema[K comparable] interface {
	Version() K
	Parse(data any) (any, error)
}

// SchemaFunc adapts a version identifier and a parse function to Schema.
type SchemaFunc[K comparable] struct {
	ID        K
	ParseFunc func(data any) (any, error)
}

// NewSchema returns a Schema with the given identifier and parse function.
// A nil parse function accepts any input unchanged.
func NewSchema[K comparable](id K, parse func(data any) (any, error)) *SchemaFunc[K] {
	return &SchemaFunc[K]{ID: id, ParseFunc: parse}
}

// Version returns the schema identifier.
func (s *SchemaFunc[K]) Version() K {
	return s.ID
}

// Parse runs the parse function.
func (s *SchemaFunc[K]) Parse(data any) (any, error) {
	if s.ParseFunc == nil {
		return data, nil
	}

	return s.ParseFunc(data)
}

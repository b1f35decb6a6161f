package manifest

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"schema-migrator/internal/document"
	"schema-migrator/migration"
)

var (
	// ErrInvalidManifest is returned by Build when validation reports errors.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrUnknownSchema is returned for a schema id the manifest does not declare.
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrUnversioned is returned for a record without a version field.
	ErrUnversioned = errors.New("record has no version")
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger for the registry and its graph.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// Registry is a built manifest: its schemas and the compiled graph.
type Registry struct {
	versionField string
	schemas      map[string]*RecordSchema
	order        []string
	graph        *migration.Graph[string]
	logger       zerolog.Logger
}

// Build validates f and compiles its edges.
func Build(f *File, opts ...Option) (*Registry, error) {
	o := buildOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, diags.Err())
	}

	r := &Registry{
		versionField: f.VersionField,
		schemas:      make(map[string]*RecordSchema, len(f.Schemas)),
		order:        f.SchemaIDs(),
		logger:       o.logger,
	}

	for _, sd := range f.Schemas {
		r.schemas[sd.ID] = NewRecordSchema(sd, f.VersionField)
	}

	edges := make([]*migration.Edge[string], 0, len(f.Edges))

	for _, ed := range f.Edges {
		update, err := buildUpdate(ed, f.VersionField)
		if err != nil {
			return nil, err
		}

		edges = append(edges, migration.NewEdge[string](r.schemas[ed.From], r.schemas[ed.To], update))
	}

	graph, err := migration.Compile(edges, migration.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to compile manifest edges: %w", err)
	}

	r.graph = graph

	r.logger.Debug().
		Int("schemas", len(r.schemas)).
		Int("edges", graph.Len()).
		Str("version_field", r.versionField).
		Msg("manifest built")

	return r, nil
}

// Load reads, validates and builds the manifest at path.
func Load(path string, opts ...Option) (*Registry, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(f, opts...)
}

// Graph returns the compiled migration graph.
func (r *Registry) Graph() *migration.Graph[string] {
	return r.graph
}

// VersionField returns the record field holding the schema id.
func (r *Registry) VersionField() string {
	return r.versionField
}

// Schema returns the schema with the given id.
func (r *Registry) Schema(id string) (*RecordSchema, bool) {
	s, ok := r.schemas[id]
	return s, ok
}

// Schemas returns all schemas in declaration order.
func (r *Registry) Schemas() []*RecordSchema {
	out := make([]*RecordSchema, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.schemas[id])
	}

	return out
}

// Detect returns the schema id recorded in rec.
func (r *Registry) Detect(rec document.Record) (string, error) {
	v, ok := rec[r.versionField]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: field %q is missing", ErrUnversioned, r.versionField)
	}

	id := fmt.Sprint(v)
	if _, ok := r.schemas[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSchema, id)
	}

	return id, nil
}

// Migrate moves rec to the target schema, detecting its current version
// from the version field.
func (r *Registry) Migrate(rec document.Record, to string) (document.Record, error) {
	from, err := r.Detect(rec)
	if err != nil {
		return nil, err
	}

	return r.MigrateFrom(rec, from, to)
}

// MigrateFrom moves rec from one schema to another.
//
// The record is validated against the source schema first, so defaults
// are filled before any step runs, and the result is validated against
// the target schema.
func (r *Registry) MigrateFrom(rec document.Record, from, to string) (document.Record, error) {
	src, ok := r.schemas[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, from)
	}

	dst, ok := r.schemas[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, to)
	}

	parsed, err := src.Parse(rec)
	if err != nil {
		return nil, err
	}

	migrated, err := r.graph.Migrate(from, to, parsed)
	if err != nil {
		return nil, err
	}

	out, err := dst.Parse(migrated)
	if err != nil {
		return nil, fmt.Errorf("migrated record is invalid: %w", err)
	}

	r.logger.Debug().
		Str("from", from).
		Str("to", to).
		Msg("record migrated")

	return out.(document.Record), nil
}

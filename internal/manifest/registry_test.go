package manifest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/document"
	"schema-migrator/migration"
)

func buildChain(t *testing.T, opts ...Option) *Registry {
	t.Helper()

	r, err := Build(mustParse(t, chainManifest), opts...)
	require.NoError(t, err)

	return r
}

func TestBuild(t *testing.T) {
	r := buildChain(t)

	assert.Equal(t, "v", r.VersionField())
	assert.Equal(t, 3, r.Graph().Len())
	assert.Equal(t, []string{"base", "2", "3", "4"}, r.Graph().Versions())

	schemas := r.Schemas()
	require.Len(t, schemas, 4)
	assert.Equal(t, "base", schemas[0].Version())

	s, ok := r.Schema("3")
	require.True(t, ok)
	assert.Equal(t, "3", s.Def().ID)

	_, ok = r.Schema("5")
	assert.False(t, ok)
}

func TestBuildInvalid(t *testing.T) {
	_, err := Build(mustParse(t, `
schemas: [{id: a}, {id: b}]
edges:
  - {from: a, to: b}
  - {from: a, to: b}
`))
	require.ErrorIs(t, err, ErrInvalidManifest)
	assert.Contains(t, err.Error(), "duplicate_edge")
}

func TestMigrateChain(t *testing.T) {
	r := buildChain(t)

	out, err := r.Migrate(document.Record{"v": "base", "test1": "x"}, "4")
	require.NoError(t, err)

	assert.Equal(t, document.Record{
		"v":     "4",
		"test1": "x",
		"test2": "test2",
		"test3": "test3",
		"test4": "test4",
	}, out)
}

func TestMigrateDetectsNumericVersion(t *testing.T) {
	r := buildChain(t)

	out, err := r.Migrate(document.Record{"v": 2, "test1": "x", "test2": "y"}, "4")
	require.NoError(t, err)
	assert.Equal(t, "y", out["test2"])
	assert.Equal(t, "4", out["v"])
}

func TestMigrateValidatesSource(t *testing.T) {
	r := buildChain(t)

	_, err := r.Migrate(document.Record{"v": "base"}, "4")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "base", verr.Schema)
}

func TestMigrateValidatesTarget(t *testing.T) {
	r, err := Build(mustParse(t, `
schemas:
  - id: a
  - id: b
    fields:
      - {name: count, type: int, required: true}
edges:
  - from: a
    to: b
    steps:
      - {op: set, path: count, value: many}
`))
	require.NoError(t, err)

	_, err = r.Migrate(document.Record{"v": "a"}, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrated record is invalid")
	assert.Contains(t, err.Error(), "count: want int, got string")
}

func TestMigrateErrors(t *testing.T) {
	r := buildChain(t)

	_, err := r.Migrate(document.Record{"test1": "x"}, "4")
	assert.ErrorIs(t, err, ErrUnversioned)

	_, err = r.Migrate(document.Record{"v": "9"}, "4")
	assert.ErrorIs(t, err, ErrUnknownSchema)

	_, err = r.Migrate(document.Record{"v": "base", "test1": "x"}, "9")
	assert.ErrorIs(t, err, ErrUnknownSchema)

	_, err = r.Migrate(document.Record{"v": "4"}, "base")
	assert.ErrorIs(t, err, migration.ErrNoPath)

	_, err = r.MigrateFrom(document.Record{"test1": "x"}, "nope", "4")
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestMigrateIdentity(t *testing.T) {
	r := buildChain(t)

	out, err := r.Migrate(document.Record{"v": "3", "test3": "z"}, "3")
	require.NoError(t, err)
	assert.Equal(t, document.Record{"v": "3", "test3": "z"}, out)
}

func TestMigrateRoundTrip(t *testing.T) {
	r, err := Build(mustParse(t, `
schemas:
  - id: v1
    fields: [{name: name, type: string, required: true}]
  - id: v2
    fields: [{name: full_name, type: string, required: true}]
edges:
  - from: v1
    to: v2
    steps: [{op: rename, from: name, to: full_name}]
  - from: v2
    to: v1
    steps: [{op: rename, from: full_name, to: name}]
`))
	require.NoError(t, err)

	orig := document.Record{"v": "v1", "name": "Ada"}

	up, err := r.Migrate(orig, "v2")
	require.NoError(t, err)
	assert.Equal(t, document.Record{"v": "v2", "full_name": "Ada"}, up)

	down, err := r.Migrate(up, "v1")
	require.NoError(t, err)
	assert.Equal(t, orig, down)
}

func TestLoad(t *testing.T) {
	f := mustParse(t, chainManifest)
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, WriteFile(f, path))

	var buf bytes.Buffer

	r, err := Load(path, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Graph().Len())
	assert.Contains(t, buf.String(), `"message":"manifest built"`)
	assert.Contains(t, buf.String(), `"message":"compiled migration graph"`)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

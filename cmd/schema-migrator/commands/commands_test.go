package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/migration"
)

var (
	exampleManifest = filepath.Join("..", "..", "..", "examples", "records", "migrations.yaml")
	exampleRecord   = filepath.Join("..", "..", "..", "examples", "records", "record.yaml")
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "check")
	require.NoError(t, err)
	assert.Equal(t, "0 error(s), 0 warning(s)\n", out)
}

func TestCheckInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schemas: [{id: base}, {id: v2}]
edges:
  - {from: bsae, to: v2}
`), 0o644))

	out, _, err := run(t, "", "-m", path, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
	assert.Contains(t, out,
		`error: [bsae -> v2]: [unknown_schema] source schema "bsae" is not declared (did you mean base?)`)
	assert.Contains(t, out, "warning: [base]: [isolated_schema]")
	assert.Contains(t, out, "1 error(s), 1 warning(s)")
}

func TestCheckMissingManifest(t *testing.T) {
	_, _, err := run(t, "", "-m", filepath.Join(t.TempDir(), "nope.yaml"), "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestPath(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "path", "base", "4")
	require.NoError(t, err)
	assert.Equal(t, "base -> 2 -> 3 -> 4\n3 step(s)\n", out)

	out, _, err = run(t, "", "-m", exampleManifest, "path", "3", "3")
	require.NoError(t, err)
	assert.Equal(t, "(identity)\n0 step(s)\n", out)
}

func TestPathJSON(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "path", "--json", "4", "4")
	require.NoError(t, err)

	var res pathResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 0, res.Steps)
	assert.Empty(t, res.Hops)

	out, _, err = run(t, "", "-m", exampleManifest, "path", "--json", "base", "3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, pathResult{
		From:  "base",
		To:    "3",
		Steps: 2,
		Hops:  []string{"base", "2", "3"},
		Edges: []string{"base -> 2", "2 -> 3"},
	}, res)
}

func TestPathNotFound(t *testing.T) {
	_, _, err := run(t, "", "-m", exampleManifest, "path", "4", "base")
	require.ErrorIs(t, err, migration.ErrNoPath)
}

func TestMigrateFromFile(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "migrate", "--to", "4", "-f", exampleRecord, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"4","test1":"x","test2":"test2","test3":"test3","test4":"test4"}`, out)
}

func TestMigrateFromStdin(t *testing.T) {
	out, _, err := run(t, `{"v": "3", "test1": "a", "test2": "b", "test3": "c"}`,
		"-m", exampleManifest, "migrate", "--to", "2")
	require.NoError(t, err)
	assert.YAMLEq(t, "v: \"2\"\ntest1: a\ntest2: b\n", out)
}

func TestMigrateExplicitSource(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	_, _, err := run(t, `{"test1": "x"}`,
		"-m", exampleManifest, "migrate", "--from", "base", "--to", "2", "-o", outPath, "--format", "json")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"2","test1":"x","test2":"test2"}`, string(data))
}

func TestMigrateErrors(t *testing.T) {
	_, _, err := run(t, "", "-m", exampleManifest, "migrate")
	assert.ErrorContains(t, err, "--to is required")

	_, _, err = run(t, "v: base\ntest1: x\n", "-m", exampleManifest, "migrate", "--to", "4", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "v: 4\n", "-m", exampleManifest, "migrate", "--to", "base")
	assert.ErrorIs(t, err, migration.ErrNoPath)

	_, _, err = run(t, "", "-m", exampleManifest, "migrate", "--to", "4", "-f", "missing.yaml")
	assert.ErrorContains(t, err, "failed to open input")
}

func TestGraph(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "graph")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"migration graph: 4 versions, 4 edges",
		"  base -> 2",
		"  2 -> 3",
		"  3 -> 4, 2",
		"  4",
		"",
	}, "\n"), out)
}

func TestGraphDump(t *testing.T) {
	out, _, err := run(t, "", "-m", exampleManifest, "graph", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(map[string][]string) (len=4)")
	assert.Contains(t, out, `(string) (len=4) "base"`)
	assert.Contains(t, out, "manifest.File")
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "", "-m", exampleManifest, "-v", "--log-format", "json", "path", "base", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"manifest loaded"`)
	assert.Contains(t, stderr, `"message":"compiled migration graph"`)

	_, _, err = run(t, "", "-m", exampleManifest, "--log-format", "xml", "check")
	assert.ErrorContains(t, err, "unknown log format")
}

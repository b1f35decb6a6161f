package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/diagnostic"
)

func mustParse(t *testing.T, src string) *File {
	t.Helper()

	f, err := Parse([]byte(src))
	require.NoError(t, err)

	return f
}

func findDiag(list []diagnostic.Diagnostic, code string) *diagnostic.Diagnostic {
	for i := range list {
		if list[i].Code == code {
			return &list[i]
		}
	}

	return nil
}

func TestValidateValid(t *testing.T) {
	res := Validate(mustParse(t, chainManifest))
	assert.False(t, res.HasErrors(), res.Err())
	assert.Empty(t, res.Warnings)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"manifest_is_nil"}, res.Codes())
}

func TestValidateReportsEverything(t *testing.T) {
	f := mustParse(t, `
version: "2"
schemas:
  - id: base
    fields:
      - name: name
        type: string
      - name: name
        type: strng
      - name: age
        type: int
        default: old
      - name: v
  - id: base
  - id: ""
  - id: v2
edges:
  - from: bsae
    to: v2
  - from: v2
    to: v2
  - from: base
    to: v2
    steps:
      - op: set
      - op: rename
        from: items[].a
        to: b
      - op: set
        path: a..b
  - from: base
    to: v2
`)

	res := Validate(f)

	assert.Equal(t, []string{
		"unsupported_version",
		"duplicate_field",
		"unknown_field_type",
		"invalid_default",
		"reserved_field",
		"duplicate_schema",
		"missing_schema_id",
		"unknown_schema",
		"loop_detected",
		"missing_argument",
		"scope_mismatch",
		"invalid_path",
		"duplicate_edge",
	}, res.Codes())

	unknown := findDiag(res.Errors, "unknown_schema")
	require.NotNil(t, unknown)
	assert.Equal(t, "bsae -> v2", unknown.Subject)
	assert.Equal(t, []string{"base"}, unknown.Suggestions)
}

func TestValidateWarnings(t *testing.T) {
	f := mustParse(t, `
schemas:
  - id: a
    fields:
      - name: first_name
      - name: last_name
  - id: b
  - id: lonely
edges:
  - from: a
    to: b
    steps:
      - op: rename
        from: firstname
        to: given_name
      - op: set
        path: v
        value: x
      - op: delete
        path: last_name
        from: nope
`)

	res := Validate(f)
	require.False(t, res.HasErrors(), res.Err())

	codes := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []string{"unknown_field", "version_field_written", "unused_argument", "isolated_schema"}, codes)

	unknown := findDiag(res.Warnings, "unknown_field")
	require.NotNil(t, unknown)
	require.NotEmpty(t, unknown.Suggestions)
	assert.Equal(t, "first_name", unknown.Suggestions[0])

	isolated := findDiag(res.Warnings, "isolated_schema")
	require.NotNil(t, isolated)
	assert.Equal(t, "lonely", isolated.Subject)
}

func TestValidateVersionField(t *testing.T) {
	f := mustParse(t, `
version_field: meta.version
schemas: [{id: a}]
`)

	assert.Equal(t, []string{"invalid_version_field"}, Validate(f).Codes())
}

func TestValidateMissingOp(t *testing.T) {
	f := &File{
		Version:      CurrentVersion,
		VersionField: DefaultVersionField,
		Schemas:      []SchemaDef{{ID: "a"}, {ID: "b"}},
		Edges: []EdgeDef{{
			From:  "a",
			To:    "b",
			Steps: []StepDef{{Path: "x"}},
		}},
	}

	assert.Equal(t, []string{"missing_op"}, Validate(f).Codes())
}

func TestValidateNoSchemas(t *testing.T) {
	res := Validate(mustParse(t, `version: "1"`))
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_schemas", res.Warnings[0].Code)
}

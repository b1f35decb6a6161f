package manifest

import (
	"fmt"
	"strings"

	"schema-migrator/internal/document"
	"schema-migrator/migration"
)

// Problem is one field-level validation failure.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return p.Field + ": " + p.Message
}

// ValidationError lists why a record does not conform to a schema.
type ValidationError struct {
	Schema   string
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}

	return fmt.Sprintf("record does not match schema %q: %s", e.Schema, strings.Join(parts, "; "))
}

// RecordSchema validates records against a SchemaDef.
type RecordSchema struct {
	def          SchemaDef
	versionField string
}

var _ migration.Schema[string] = (*RecordSchema)(nil)

// NewRecordSchema returns the schema for def. Records carry their version
// in versionField.
func NewRecordSchema(def SchemaDef, versionField string) *RecordSchema {
	return &RecordSchema{def: def, versionField: versionField}
}

// Version returns the schema id.
func (s *RecordSchema) Version() string {
	return s.def.ID
}

// Def returns the declaration the schema was built from.
func (s *RecordSchema) Def() SchemaDef {
	return s.def
}

// Parse checks data against the schema.
//
// data must be a record. The result is a copy with defaults filled in and
// the version field set to the schema id. A record whose version field
// names another schema is rejected. Problems are reported together in a
// *ValidationError.
func (s *RecordSchema) Parse(data any) (any, error) {
	in, ok := data.(map[string]any)
	if !ok {
		return nil, &ValidationError{
			Schema:   s.def.ID,
			Problems: []Problem{{Field: "", Message: "want a record, got " + describe(data)}},
		}
	}

	out := document.CloneRecord(in)

	var problems []Problem

	if v, ok := out[s.versionField]; ok && fmt.Sprint(v) != s.def.ID {
		problems = append(problems, Problem{
			Field:   s.versionField,
			Message: fmt.Sprintf("record is version %v", v),
		})
	}

	declared := make(map[string]struct{}, len(s.def.Fields))

	for _, fd := range s.def.Fields {
		declared[fd.Name] = struct{}{}

		v, ok := out[fd.Name]
		if !ok {
			switch {
			case fd.Default != nil:
				out[fd.Name] = document.Clone(fd.Default)
			case fd.Required:
				problems = append(problems, Problem{Field: fd.Name, Message: "required field is missing"})
			}

			continue
		}

		if v == nil && !fd.Required {
			continue
		}

		if err := fd.Type.Check(v); err != nil {
			problems = append(problems, Problem{Field: fd.Name, Message: err.Error()})
		}
	}

	if s.def.Strict {
		for _, name := range sortedKeys(out) {
			if name == s.versionField {
				continue
			}

			if _, ok := declared[name]; !ok {
				problems = append(problems, Problem{Field: name, Message: "field is not declared"})
			}
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Schema: s.def.ID, Problems: problems}
	}

	out[s.versionField] = s.def.ID

	return out, nil
}

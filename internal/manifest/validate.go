package manifest

import (
	"fmt"

	"schema-migrator/internal/diagnostic"
	"schema-migrator/internal/document"
	"schema-migrator/internal/match"
)

// maxSuggestions bounds "did you mean" hints per finding.
const maxSuggestions = 3

// Validate checks a manifest and reports every problem found.
//
// Errors make Build fail; warnings point at likely mistakes that still
// produce a working graph.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q (want %q)", f.Version, CurrentVersion), "", "")
	}

	if len(mustSegments(f.VersionField)) != 1 {
		res.AddError("invalid_version_field",
			fmt.Sprintf("version field %q must be a single field name", f.VersionField), "", f.VersionField)
	}

	ids := validateSchemas(res, f)
	validateEdges(res, f, ids)

	return res
}

func mustSegments(path string) []document.Segment {
	p, err := document.ParsePath(path)
	if err != nil {
		return nil
	}

	return p.Segments
}

// validateSchemas checks schema declarations and returns the known ids.
func validateSchemas(res *diagnostic.Diagnostics, f *File) map[string]struct{} {
	ids := make(map[string]struct{}, len(f.Schemas))

	if len(f.Schemas) == 0 {
		res.AddWarning("no_schemas", "manifest declares no schemas", "", "")
	}

	for i := range f.Schemas {
		sd := &f.Schemas[i]

		if sd.ID == "" {
			res.AddError("missing_schema_id", fmt.Sprintf("schema #%d has no id", i), "", "")
			continue
		}

		if _, dup := ids[sd.ID]; dup {
			res.AddError("duplicate_schema", fmt.Sprintf("schema %q is declared twice", sd.ID), sd.ID, "")
			continue
		}

		ids[sd.ID] = struct{}{}

		fields := make(map[string]struct{}, len(sd.Fields))

		for _, fd := range sd.Fields {
			if len(mustSegments(fd.Name)) != 1 {
				res.AddError("invalid_field", fmt.Sprintf("invalid field name %q", fd.Name), sd.ID, fd.Name)
				continue
			}

			if fd.Name == f.VersionField {
				res.AddError("reserved_field",
					fmt.Sprintf("field %q holds the schema id and cannot be declared", fd.Name), sd.ID, fd.Name)
			}

			if _, dup := fields[fd.Name]; dup {
				res.AddError("duplicate_field", fmt.Sprintf("field %q is declared twice", fd.Name), sd.ID, fd.Name)
			}

			fields[fd.Name] = struct{}{}

			if !fd.Type.IsValid() {
				res.AddError("unknown_field_type", fmt.Sprintf("unknown type %q", fd.Type), sd.ID, fd.Name)
				continue
			}

			if fd.Default != nil {
				if err := fd.Type.Check(fd.Default); err != nil {
					res.AddError("invalid_default", "default value: "+err.Error(), sd.ID, fd.Name)
				}
			}
		}
	}

	return ids
}

func validateEdges(res *diagnostic.Diagnostics, f *File, ids map[string]struct{}) {
	known := f.SchemaIDs()
	seen := make(map[[2]string]struct{}, len(f.Edges))
	connected := make(map[string]struct{})

	checkRef := func(label, role, id string) bool {
		if _, ok := ids[id]; ok {
			return true
		}

		if id == "" {
			res.AddError("missing_schema_ref", fmt.Sprintf("edge has no %s schema", role), label, "")
			return false
		}

		res.AddError("unknown_schema", fmt.Sprintf("%s schema %q is not declared", role, id), label, "").
			Suggest(match.Suggest(id, known, maxSuggestions)...)

		return false
	}

	for i := range f.Edges {
		ed := &f.Edges[i]
		label := ed.Label()

		fromOK := checkRef(label, "source", ed.From)
		toOK := checkRef(label, "target", ed.To)

		if ed.From == ed.To && ed.From != "" {
			res.AddError("loop_detected", fmt.Sprintf("edge loops back to %q", ed.From), label, "")
			continue
		}

		pair := [2]string{ed.From, ed.To}
		if _, dup := seen[pair]; dup {
			res.AddError("duplicate_edge", "edge is declared twice", label, "")
		}

		seen[pair] = struct{}{}
		connected[ed.From] = struct{}{}
		connected[ed.To] = struct{}{}

		var source *SchemaDef
		if fromOK && toOK {
			source, _ = f.FindSchema(ed.From)
		}

		for j, sd := range ed.Steps {
			validateStep(res, f, label, j, sd, source)
		}
	}

	if len(f.Schemas) > 1 {
		for _, sd := range f.Schemas {
			if _, ok := connected[sd.ID]; !ok && sd.ID != "" {
				res.AddWarning("isolated_schema", fmt.Sprintf("schema %q has no edges", sd.ID), sd.ID, "")
			}
		}
	}
}

func validateStep(res *diagnostic.Diagnostics, f *File, label string, idx int, sd StepDef, source *SchemaDef) {
	where := fmt.Sprintf("step %d", idx)

	if !sd.Op.IsValid() {
		res.AddError("missing_op", where+" has no op", label, "")
		return
	}

	where += " (" + sd.Op.String() + ")"

	checkPath := func(name, path string) (document.Path, bool) {
		if path == "" {
			res.AddError("missing_argument", fmt.Sprintf("%s needs %q", where, name), label, "")
			return document.Path{}, false
		}

		p, err := document.ParsePath(path)
		if err != nil {
			res.AddError("invalid_path", fmt.Sprintf("%s: %v", where, err), label, path)
			return document.Path{}, false
		}

		if p.Segments[0].Name == f.VersionField && len(p.Segments) == 1 {
			res.AddWarning("version_field_written",
				fmt.Sprintf("%s touches %q, which is overwritten with the target id", where, path), label, path)
		}

		return p, true
	}

	if sd.Op.NeedsPath() {
		checkPath("path", sd.Path)

		if sd.From != "" || sd.To != "" {
			res.AddWarning("unused_argument", where+" ignores from/to", label, sd.Path)
		}

		return
	}

	from, okFrom := checkPath("from", sd.From)
	to, okTo := checkPath("to", sd.To)

	if sd.Path != "" || sd.Value != nil {
		res.AddWarning("unused_argument", where+" ignores path/value", label, sd.From)
	}

	if okFrom && okTo && !from.SameScope(to) {
		res.AddError("scope_mismatch",
			fmt.Sprintf("%s: %s and %s do not fan out over the same lists", where, sd.From, sd.To), label, sd.From)
	}

	// Only top-level sources can be checked against the declared fields.
	if okFrom && source != nil && len(source.Fields) > 0 && len(from.Segments) == 1 && !from.Segments[0].IsSlice {
		names := make([]string, 0, len(source.Fields))
		for _, fd := range source.Fields {
			if fd.Name == sd.From {
				return
			}

			names = append(names, fd.Name)
		}

		res.AddWarning("unknown_field",
			fmt.Sprintf("%s: source schema %q does not declare %q", where, source.ID, sd.From), label, sd.From).
			Suggest(match.Suggest(sd.From, names, maxSuggestions)...)
	}
}

package manifest

// File is the root of a manifest.
type File struct {
	// Version of the manifest format.
	Version string `yaml:"version,omitempty"`

	// VersionField names the record field holding the schema id.
	VersionField string `yaml:"version_field,omitempty"`

	Schemas []SchemaDef `yaml:"schemas"`
	Edges   []EdgeDef   `yaml:"edges,omitempty"`
}

// SchemaDef declares one record version.
type SchemaDef struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description,omitempty"`

	// Strict rejects top-level fields that are not declared.
	Strict bool `yaml:"strict,omitempty"`

	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef declares one top-level field of a record.
type FieldDef struct {
	Name     string    `yaml:"name"`
	Type     FieldType `yaml:"type,omitempty"`
	Required bool      `yaml:"required,omitempty"`

	// Default fills the field when it is absent. A required field with a
	// default is never reported missing.
	Default any `yaml:"default,omitempty"`
}

// EdgeDef declares a migration from one schema to another.
type EdgeDef struct {
	From        string    `yaml:"from"`
	To          string    `yaml:"to"`
	Description string    `yaml:"description,omitempty"`
	Steps       []StepDef `yaml:"steps,omitempty"`
}

// Label returns "from -> to".
func (e EdgeDef) Label() string {
	return e.From + " -> " + e.To
}

// StepDef is one declarative operation of an edge.
type StepDef struct {
	Op Op `yaml:"op"`

	// Path is the field written or removed by set, default and delete.
	Path string `yaml:"path,omitempty"`

	// From and To are the source and destination of rename and copy.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	Value any `yaml:"value,omitempty"`
}

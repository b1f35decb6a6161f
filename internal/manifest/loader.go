package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the manifest format version this package reads.
const CurrentVersion = "1"

// DefaultVersionField is the record field holding the schema id unless
// the manifest names another.
const DefaultVersionField = "v"

// LoadFile loads and parses a manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.VersionField == "" {
		f.VersionField = DefaultVersionField
	}

	for i := range f.Schemas {
		for j := range f.Schemas[i].Fields {
			fd := &f.Schemas[i].Fields[j]
			if fd.Type == "" {
				fd.Type = TypeAny
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// SchemaIDs returns the declared schema ids in order.
func (f *File) SchemaIDs() []string {
	ids := make([]string, 0, len(f.Schemas))
	for _, s := range f.Schemas {
		ids = append(ids, s.ID)
	}

	return ids
}

// FindSchema returns the schema with the given id.
func (f *File) FindSchema(id string) (*SchemaDef, bool) {
	for i := range f.Schemas {
		if f.Schemas[i].ID == id {
			return &f.Schemas[i], true
		}
	}

	return nil, false
}

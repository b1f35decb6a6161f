// Package manifest declares schemas and migration edges in YAML.
//
// A manifest describes record versions and the declarative steps that turn
// one version into the next. Build validates it and compiles the edges into
// a migration.Graph, so records decoded from YAML or JSON can be moved
// between any two connected versions.
//
// # File overview
//
//	version: "1"
//	version_field: v            # field holding the schema id, default "v"
//	schemas:
//	  - id: base
//	    fields:
//	      - name: test1
//	        type: string
//	        required: true
//	  - id: "2"
//	    strict: true            # reject fields that are not declared
//	    fields:
//	      - name: test1
//	        type: string
//	      - name: test2
//	        type: string
//	        default: test2
//	edges:
//	  - from: base
//	    to: "2"
//	    steps:
//	      - op: set
//	        path: test2
//	        value: test2
//
// # Steps
//
// Steps run in order on a copy of the record:
//   - set: write value at path
//   - default: write value at path only when the field is absent
//   - rename: move the field at from to to
//   - copy: copy the field at from to to
//   - delete: remove the field at path
//
// Paths use the document package syntax ("a.b", "items[].sku"). The
// two paths of rename and copy must fan out over the same lists. After the
// last step the version field is set to the target schema id.
//
// # Versions
//
// Schema ids are strings. A record's version is read from the version
// field and compared in its printed form, so "v: 4" in a record selects
// schema "4".
package manifest

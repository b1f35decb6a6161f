// Package document manipulates generic records: decoded YAML or JSON
// objects held as map[string]any, with nested maps and []any lists.
//
// Fields are addressed with dotted paths:
//   - Simple fields: "name"
//   - Nested fields: "address.street"
//   - Every element of a list: "items[].sku"
//
// A "[]" segment fans out over the list elements and must be followed by a
// field name.
package document

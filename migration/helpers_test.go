package migration

import (
	"maps"
)

type record = map[string]any

// fieldSchema mirrors a versioned record shape: every listed field is
// filled with its own name when missing.
func fieldSchema(v any, fields ...string) *SchemaFunc[any] {
	return NewSchema[any](v, func(data any) (any, error) {
		in, _ := data.(record)
		out := record{"v": v}

		for _, f := range fields {
			if val, ok := in[f]; ok && val != nil && val != "" {
				out[f] = val
			} else {
				out[f] = f
			}
		}

		return out, nil
	})
}

var (
	schemaBase = fieldSchema("base", "test1")
	schema2    = fieldSchema(2, "test1", "test2")
	schema3    = fieldSchema(3, "test1", "test2", "test3")
	schema4    = fieldSchema(4, "test1", "test2", "test3", "test4")
)

// addField returns an update stamping version v and setting field to its name.
func addField(v any, field string) UpdateFunc {
	return func(data any) (any, error) {
		out := maps.Clone(data.(record))
		out["v"] = v
		out[field] = field

		return out, nil
	}
}

func restamp(v any) UpdateFunc {
	return func(data any) (any, error) {
		out := maps.Clone(data.(record))
		out["v"] = v

		return out, nil
	}
}

func strSchema(id string) *SchemaFunc[string] {
	return NewSchema[string](id, nil)
}

func identity(data any) (any, error) { return data, nil }

// chain builds identity edges a->b, b->c, ... over string schemas.
func chain(ids ...string) []*Edge[string] {
	var edges []*Edge[string]
	for i := 0; i+1 < len(ids); i++ {
		edges = append(edges, NewEdge[string](strSchema(ids[i]), strSchema(ids[i+1]), identity))
	}

	return edges
}

func pathKeys(p Path[string]) []string {
	if p == nil {
		return nil
	}

	keys := make([]string, 0, len(p))
	for _, e := range p {
		keys = append(keys, e.String())
	}

	return keys
}

package manifest

import "fmt"

// FieldType constrains the value of a declared field.
type FieldType string

const (
	TypeAny    FieldType = "any"
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeFloat  FieldType = "float"
	TypeBool   FieldType = "bool"
	TypeMap    FieldType = "map"
	TypeList   FieldType = "list"
)

var fieldTypes = []FieldType{TypeAny, TypeString, TypeInt, TypeFloat, TypeBool, TypeMap, TypeList}

// IsValid reports whether t is a known type.
func (t FieldType) IsValid() bool {
	for _, ft := range fieldTypes {
		if t == ft {
			return true
		}
	}

	return false
}

// Check returns an error when v does not have type t. Nil never matches
// a concrete type. Integers are accepted where a float is expected.
func (t FieldType) Check(v any) error {
	ok := false

	switch t {
	case TypeAny, "":
		ok = true
	case TypeString:
		_, ok = v.(string)
	case TypeInt:
		ok = isInt(v)
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
			ok = true
		default:
			ok = isInt(v)
		}
	case TypeBool:
		_, ok = v.(bool)
	case TypeMap:
		_, ok = v.(map[string]any)
	case TypeList:
		_, ok = v.([]any)
	default:
		return fmt.Errorf("unknown type %q", t)
	}

	if !ok {
		return fmt.Errorf("want %s, got %s", t, describe(v))
	}

	return nil
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "map"
	case []any:
		return "list"
	case float32, float64:
		return "float"
	default:
		if isInt(v) {
			return "int"
		}

		return fmt.Sprintf("%T", v)
	}
}

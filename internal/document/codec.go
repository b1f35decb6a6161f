package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for records.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml or json)", s)
	}
}

// Decode parses a YAML or JSON object into a Record.
// Non-string map keys are converted with fmt.Sprint.
func Decode(data []byte) (Record, error) {
	var raw any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	if raw == nil {
		return nil, errors.New("failed to decode record: document is empty")
	}

	rec, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to decode record: expected an object, got %T", raw)
	}

	return rec, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}

		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}

		return t
	default:
		return v
	}
}

// Encode serializes rec in the given format.
func Encode(rec Record, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return yaml.Marshal(rec)
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

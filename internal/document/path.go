package document

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Segment is one step of a Path.
type Segment struct {
	Name    string
	IsSlice bool
}

// Path addresses one or more fields of a record.
type Path struct {
	Segments []Segment
}

// ParsePath parses "field", "a.b" or "items[].sku".
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var segments []Segment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		isSlice := false
		name := part

		if strings.HasSuffix(part, "[]") {
			isSlice = true
			name = strings.TrimSuffix(part, "[]")

			if name == "" {
				return Path{}, fmt.Errorf("invalid path %q: list without field name", path)
			}
		}

		if !isValidKey(name) {
			return Path{}, fmt.Errorf("invalid path %q: invalid field name %q", path, name)
		}

		segments = append(segments, Segment{Name: name, IsSlice: isSlice})
	}

	if segments[len(segments)-1].IsSlice {
		return Path{}, fmt.Errorf("invalid path %q: list segment must be followed by a field", path)
	}

	return Path{Segments: segments}, nil
}

// MustParsePath is ParsePath that panics on error.
func MustParsePath(path string) Path {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String renders the path back to its textual form.
func (p Path) String() string {
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		parts[i] = s.Name
		if s.IsSlice {
			parts[i] += "[]"
		}
	}

	return strings.Join(parts, ".")
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Split cuts the path after its last list segment. Scope selects the
// records the rest is applied to; for a path without lists Scope is empty.
func (p Path) Split() (scope, rest Path) {
	last := -1

	for i, s := range p.Segments {
		if s.IsSlice {
			last = i
		}
	}

	return Path{Segments: p.Segments[:last+1]}, Path{Segments: p.Segments[last+1:]}
}

// SameScope reports whether p and other fan out over the same lists.
func (p Path) SameScope(other Path) bool {
	a, _ := p.Split()
	b, _ := other.Split()

	return slices.Equal(a.Segments, b.Segments)
}

// isValidKey accepts letters, digits, '_' and '-'.
func isValidKey(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}

	return true
}

package document

import (
	"fmt"
)

// Record is a decoded object.
type Record = map[string]any

// Clone deep-copies maps and lists; other values are shared.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}

		return out
	default:
		return v
	}
}

// CloneRecord is Clone for records.
func CloneRecord(r Record) Record {
	if r == nil {
		return nil
	}

	return Clone(r).(Record)
}

// Each calls fn for every record selected by scope: rec itself for an
// empty scope, otherwise every map element of the lists scope ends in.
// Missing fields, non-map values and non-map list elements are skipped.
func Each(rec Record, scope Path, fn func(Record) error) error {
	return each(rec, scope.Segments, fn)
}

func each(cur Record, segs []Segment, fn func(Record) error) error {
	if len(segs) == 0 {
		return fn(cur)
	}

	seg := segs[0]

	child, ok := cur[seg.Name]
	if !ok {
		return nil
	}

	if !seg.IsSlice {
		m, ok := child.(map[string]any)
		if !ok {
			return nil
		}

		return each(m, segs[1:], fn)
	}

	list, ok := child.([]any)
	if !ok {
		return nil
	}

	for _, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}

		if err := each(m, segs[1:], fn); err != nil {
			return err
		}
	}

	return nil
}

// Lookup reads a plain (list-free) path.
func Lookup(rec Record, p Path) (any, bool) {
	var cur any = rec

	for _, seg := range p.Segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		cur, ok = m[seg.Name]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// Assign writes v at a plain path, creating intermediate objects.
// It fails when an intermediate field holds something other than an object.
func Assign(rec Record, p Path, v any) error {
	if p.IsEmpty() {
		return fmt.Errorf("cannot assign to an empty path")
	}

	cur := rec

	for i, seg := range p.Segments[:len(p.Segments)-1] {
		next, ok := cur[seg.Name]
		if !ok || next == nil {
			m := make(map[string]any)
			cur[seg.Name] = m
			cur = m

			continue
		}

		m, ok := next.(map[string]any)
		if !ok {
			prefix := Path{Segments: p.Segments[:i+1]}
			return fmt.Errorf("cannot assign %s: %s is %T, not an object", p, prefix, next)
		}

		cur = m
	}

	cur[p.Segments[len(p.Segments)-1].Name] = v

	return nil
}

// Remove deletes a plain path. Missing fields are not an error.
func Remove(rec Record, p Path) {
	if p.IsEmpty() {
		return
	}

	parent, ok := Lookup(rec, Path{Segments: p.Segments[:len(p.Segments)-1]})
	if !ok {
		return
	}

	if m, ok := parent.(map[string]any); ok {
		delete(m, p.Segments[len(p.Segments)-1].Name)
	}
}

// Get returns the values at p, one per selected record. Records that lack
// the field contribute nothing.
func Get(rec Record, p Path) []any {
	scope, rest := p.Split()

	var out []any

	_ = Each(rec, scope, func(r Record) error {
		if v, ok := Lookup(r, rest); ok {
			out = append(out, v)
		}

		return nil
	})

	return out
}

// Set writes v at p in every selected record. Each write gets its own copy
// of v.
func Set(rec Record, p Path, v any) error {
	scope, rest := p.Split()

	return Each(rec, scope, func(r Record) error {
		return Assign(r, rest, Clone(v))
	})
}

// Delete removes p from every selected record.
func Delete(rec Record, p Path) {
	scope, rest := p.Split()

	_ = Each(rec, scope, func(r Record) error {
		Remove(r, rest)
		return nil
	})
}

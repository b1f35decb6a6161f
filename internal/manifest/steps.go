package manifest

import (
	"errors"
	"fmt"

	"schema-migrator/internal/document"
	"schema-migrator/migration"
)

// step mutates a record in place.
type step func(rec document.Record) error

// compileStep parses the paths of def once and returns the operation.
func compileStep(def StepDef) (step, error) {
	switch def.Op {
	case OpSet, OpDefault, OpDelete:
		p, err := document.ParsePath(def.Path)
		if err != nil {
			return nil, err
		}

		switch def.Op {
		case OpSet:
			return func(rec document.Record) error {
				return document.Set(rec, p, def.Value)
			}, nil
		case OpDefault:
			return defaultStep(p, def.Value), nil
		default:
			return func(rec document.Record) error {
				document.Delete(rec, p)
				return nil
			}, nil
		}

	case OpRename, OpCopy:
		from, err := document.ParsePath(def.From)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}

		to, err := document.ParsePath(def.To)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}

		if !from.SameScope(to) {
			return nil, fmt.Errorf("%s and %s do not fan out over the same lists", from, to)
		}

		return moveStep(from, to, def.Op == OpRename), nil

	default:
		return nil, fmt.Errorf("unknown op %v", def.Op)
	}
}

func defaultStep(p document.Path, value any) step {
	scope, rest := p.Split()

	return func(rec document.Record) error {
		return document.Each(rec, scope, func(r document.Record) error {
			if _, ok := document.Lookup(r, rest); ok {
				return nil
			}

			return document.Assign(r, rest, document.Clone(value))
		})
	}
}

func moveStep(from, to document.Path, remove bool) step {
	scope, src := from.Split()
	_, dst := to.Split()

	return func(rec document.Record) error {
		return document.Each(rec, scope, func(r document.Record) error {
			v, ok := document.Lookup(r, src)
			if !ok {
				return nil
			}

			if remove {
				document.Remove(r, src)
			} else {
				v = document.Clone(v)
			}

			return document.Assign(r, dst, v)
		})
	}
}

// errNotRecord is returned by declarative updates given a non-record value.
var errNotRecord = errors.New("value is not a record")

// buildUpdate turns the steps of def into an update that works on a copy
// of the record and stamps the target version.
func buildUpdate(def EdgeDef, versionField string) (migration.UpdateFunc, error) {
	steps := make([]step, 0, len(def.Steps))

	for i, sd := range def.Steps {
		st, err := compileStep(sd)
		if err != nil {
			return nil, fmt.Errorf("edge %s: step %d (%v): %w", def.Label(), i, sd.Op, err)
		}

		steps = append(steps, st)
	}

	return func(data any) (any, error) {
		rec, ok := data.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", errNotRecord, data)
		}

		out := document.CloneRecord(rec)

		for i, st := range steps {
			if err := st(out); err != nil {
				return nil, fmt.Errorf("step %d (%v): %w", i, def.Steps[i].Op, err)
			}
		}

		out[versionField] = def.To

		return out, nil
	}, nil
}

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Op -linecomment -output=op_string.go

// Op is a step operation.
type Op int

const (
	_ Op = iota // zero value marks a missing op

	OpSet     // set
	OpDefault // default
	OpRename  // rename
	OpCopy    // copy
	OpDelete  // delete

	opTotal = int(iota)
)

// ParseOp returns the op with the given name.
func ParseOp(name string) (Op, error) {
	for op := Op(1); int(op) < opTotal; op++ {
		if op.String() == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("unknown op %q", name)
}

// IsValid reports whether op is a known operation.
func (op Op) IsValid() bool {
	return op > 0 && int(op) < opTotal
}

// NeedsPath reports whether the op works on Path rather than From/To.
func (op Op) NeedsPath() bool {
	return op == OpSet || op == OpDefault || op == OpDelete
}

// UnmarshalYAML reads an op from its name.
func (op *Op) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}

	parsed, err := ParseOp(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*op = parsed

	return nil
}

// MarshalYAML writes the op name.
func (op Op) MarshalYAML() (any, error) {
	if !op.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid op %d", int(op))
	}

	return op.String(), nil
}

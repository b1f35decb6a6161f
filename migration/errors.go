package migration

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	ErrInvalidEdge   = errors.New("migration: invalid edge")
	ErrLoopDetected  = errors.New("migration: loop detected")
	ErrDuplicateEdge = errors.New("migration: duplicate edge")
	ErrNoPath        = errors.New("migration: no path found")
)

// EdgeError is returned by Compile for the first edge it rejects.
type EdgeError struct {
	Kind  ErrorKind
	Index int // position in the input list
	From  any
	To    any
}

func (e *EdgeError) Error() string {
	if e.Kind == KindInvalidEdge {
		return fmt.Sprintf("%v: edge #%d is missing a schema or update", e.Kind.Err(), e.Index)
	}

	return fmt.Sprintf("%v: %v -> %v (edge #%d)", e.Kind.Err(), e.From, e.To, e.Index)
}

func (e *EdgeError) Unwrap() error {
	return e.Kind.Err()
}

// NoPathError reports that two versions are not connected.
type NoPathError struct {
	From any
	To   any
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("%v: %v -> %v", ErrNoPath, e.From, e.To)
}

func (e *NoPathError) Unwrap() error {
	return ErrNoPath
}

// StepError wraps a failure of one edge's update during a reduction.
type StepError struct {
	Index int // position in the path
	From  any
	To    any
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("migration step %d (%v -> %v): %v", e.Index, e.From, e.To, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by Typed updates given a value of the wrong type.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}

	return fmt.Sprintf("unexpected value type: want %v, got %s", e.Want, got)
}

package migration

//go:generate go tool stringer -type=ErrorKind -linecomment -output=errorkind_string.go

// ErrorKind classifies a rejected edge.
type ErrorKind int

const (
	_ ErrorKind = iota // skip zero value, it marks an unset kind

	KindInvalidEdge   // invalid edge
	KindLoopDetected  // loop detected
	KindDuplicateEdge // duplicate edge
)

// Err returns the sentinel error matching the kind.
func (k ErrorKind) Err() error {
	switch k {
	case KindInvalidEdge:
		return ErrInvalidEdge
	case KindLoopDetected:
		return ErrLoopDetected
	case KindDuplicateEdge:
		return ErrDuplicateEdge
	default:
		return nil
	}
}

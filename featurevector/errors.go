package featurevector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for element access outside the vector.
	ErrOutOfRange = errors.New("index out of range")

	// ErrMalformedInput is returned when a byte buffer is shorter than the
	// length its header (or the supplied byte length) requires.
	ErrMalformedInput = errors.New("malformed input")

	// ErrDuplicateID is returned when a List already holds a vector with the same id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNilVector is returned when a nil vector is added to a List.
	ErrNilVector = errors.New("nil vector")
)

// ErrIndexOutOfRange carries the offending index and the vector length.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Length)
}

// Is reports whether target is ErrOutOfRange.
func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

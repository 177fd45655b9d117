package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when two vectors of different length are compared.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnsupportedMetric is returned for metric codes without an implementation.
	ErrUnsupportedMetric = errors.New("unsupported metric")
)

// ErrDimensionMismatch reports the lengths of the two compared vectors.
// It matches ErrLengthMismatch with errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("the feature vectors do not have the same size: %d != %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrLengthMismatch.
func (e *ErrDimensionMismatch) Is(target error) bool { return target == ErrLengthMismatch }

// ErrInvalidMetric reports a metric code that cannot be evaluated.
// It matches ErrUnsupportedMetric with errors.Is.
type ErrInvalidMetric struct {
	Metric Metric
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("unsupported metric: %v", e.Metric)
}

// Is reports whether target is ErrUnsupportedMetric.
func (e *ErrInvalidMetric) Is(target error) bool { return target == ErrUnsupportedMetric }

package closestpair

import (
	"errors"
	"fmt"

	"github.com/hupe1980/closestpair/point"
)

var (
	// ErrInvalidInput is returned when the input is unusable for the
	// requested operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotComputed is returned when a result is queried before a
	// search has completed successfully.
	ErrNotComputed = errors.New("closest pair not computed yet")
)

// ErrPointCount indicates that an operation received too few or too many
// points. It matches ErrInvalidInput via errors.Is.
type ErrPointCount struct {
	Op  string
	Got int
	Min int
	Max int // 0 means unbounded
}

func (e *ErrPointCount) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s: invalid input: need at least %d points, got %d", e.Op, e.Min, e.Got)
	}
	return fmt.Sprintf("%s: invalid input: need %d to %d points, got %d", e.Op, e.Min, e.Max, e.Got)
}

func (e *ErrPointCount) Is(target error) bool { return target == ErrInvalidInput }

// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
// It matches ErrInvalidInput via errors.Is.
type ErrInvalidPoint struct {
	Index int
	Point point.Point
}

func (e *ErrInvalidPoint) Error() string {
	return fmt.Sprintf("invalid input: point %d %s has a non-finite coordinate", e.Index, e.Point)
}

func (e *ErrInvalidPoint) Is(target error) bool { return target == ErrInvalidInput }

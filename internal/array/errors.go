package array

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a generation request with min > max or a
// non-positive length.
var ErrInvalidRange = errors.New("array: invalid range")

// InvalidRangeError carries the rejected generation parameters.
type InvalidRangeError struct {
	N        int
	Min, Max int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s (n=%d, min=%d, max=%d)", ErrInvalidRange, e.N, e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

package vector

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch matches any *DimensionMismatchError via errors.Is.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// DimensionMismatchError reports two vectors of different lengths.
type DimensionMismatchError struct {
	Expected int
	Found    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: expected %d, found %d", e.Expected, e.Found)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

package vector

import "github.com/viant/vec/search"

// Vector is an ordered, fixed-length sequence of float32 values. Operations
// never modify the receiver or their arguments.
type Vector []float32

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// At returns the i-th element.
func (v Vector) At(i int) float32 { return v[i] }

// Dot returns the dot product of v and other. It returns a
// *DimensionMismatchError when the lengths differ.
func (v Vector) Dot(other Vector) (float32, error) {
	if len(v) != len(other) {
		return 0, &DimensionMismatchError{Expected: len(v), Found: len(other)}
	}
	var sum float32
	for i := range v {
		sum += v[i] * other[i]
	}
	return sum, nil
}

// Norm returns the Euclidean (L2) norm of v.
func (v Vector) Norm() float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

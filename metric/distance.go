package metric

import (
	"math"

	"github.com/viant/vec/search"

	"github.com/viant/vecmetric/vector"
)

// Compute returns the distance between v1 and v2 under m. It returns a
// *vector.DimensionMismatchError (Expected: len(v1), Found: len(v2)) when the
// lengths differ, whatever the metric.
func Compute(m Metric, v1, v2 vector.Vector) (float32, error) {
	if v1.Len() != v2.Len() {
		return 0, &vector.DimensionMismatchError{Expected: v1.Len(), Found: v2.Len()}
	}
	switch m {
	case Euclidean:
		return euclidean(v1, v2), nil
	case Manhattan:
		return manhattan(v1, v2), nil
	case CosineDistance:
		return cosineDistance(v1, v2)
	default:
		return 0, &UnsupportedMetricError{Metric: m}
	}
}

// Distance is the method form of Compute.
func (m Metric) Distance(v1, v2 vector.Vector) (float32, error) {
	return Compute(m, v1, v2)
}

func euclidean(v1, v2 vector.Vector) float32 {
	return search.Float32s(v1).EuclideanDistance(search.Float32s(v2))
}

func manhattan(v1, v2 vector.Vector) float32 {
	var sum float32
	for i := range v1 {
		sum += float32(math.Abs(float64(v1[i] - v2[i])))
	}
	return sum
}

// cosineDistance treats a zero vector as neither similar nor opposite and
// returns 1.
func cosineDistance(v1, v2 vector.Vector) (float32, error) {
	dot, err := v1.Dot(v2)
	if err != nil {
		return 0, err
	}
	norm1, norm2 := v1.Norm(), v2.Norm()
	if norm1 == 0 || norm2 == 0 {
		return 1, nil
	}
	sim := dot / (norm1 * norm2)
	sim = min(max(sim, -1), 1)
	return 1 - sim, nil
}

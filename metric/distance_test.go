package metric

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vec/search"

	"github.com/viant/vecmetric/vector"
)

func TestCompute_Euclidean(t *testing.T) {
	d, err := Compute(Euclidean, vector.Vector{0, 0}, vector.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, float32(5), d)
}

func TestCompute_Manhattan(t *testing.T) {
	d, err := Compute(Manhattan, vector.Vector{0, 0}, vector.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, float32(7), d)
}

func TestCompute_CosineDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vector.Vector
		expected float32
	}{
		{"Identical", vector.Vector{1, 0}, vector.Vector{1, 0}, 0},
		{"Opposite", vector.Vector{1, 0}, vector.Vector{-1, 0}, 2},
		{"Orthogonal", vector.Vector{1, 0}, vector.Vector{0, 1}, 1},
		{"Scaled", vector.Vector{1, 2, 3}, vector.Vector{2, 4, 6}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Compute(CosineDistance, tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, d, 1e-6)
		})
	}
}

func TestCompute_CosineZeroVector(t *testing.T) {
	zero := vector.Vector{0, 0}
	for _, other := range []vector.Vector{{0, 0}, {1, 0}, {-3, 4}} {
		d, err := Compute(CosineDistance, zero, other)
		require.NoError(t, err)
		assert.Equal(t, float32(1), d)

		d, err = Compute(CosineDistance, other, zero)
		require.NoError(t, err)
		assert.Equal(t, float32(1), d)
	}
}

func TestCompute_CosineRange(t *testing.T) {
	samples := []vector.Vector{
		{0.1, 0.2, 0.3},
		{-5, 2, 0.5},
		{1e-3, -1e-3, 7},
		{3, 3, 3},
	}
	for _, a := range samples {
		for _, b := range samples {
			d, err := Compute(CosineDistance, a, b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, float32(0))
			assert.LessOrEqual(t, d, float32(2))
		}
	}
}

func TestCompute_Identity(t *testing.T) {
	samples := []vector.Vector{
		{},
		{1},
		{0.5, -1.25, 3},
		{1e3, 2e-3, -7, 0},
	}
	for _, v := range samples {
		for _, m := range []Metric{Euclidean, Manhattan} {
			d, err := Compute(m, v, v)
			require.NoError(t, err)
			assert.Equal(t, float32(0), d, "%s %v", m, v)
		}
		if v.Norm() != 0 {
			d, err := Compute(CosineDistance, v, v)
			require.NoError(t, err)
			assert.InDelta(t, float32(0), d, 1e-6, "%v", v)
		}
	}
}

func TestCompute_Symmetry(t *testing.T) {
	pairs := [][2]vector.Vector{
		{{0, 0}, {3, 4}},
		{{1, -2, 3}, {-4, 5, 0.5}},
		{{0.3, 0.1}, {0, 0}},
		{{7}, {-7}},
	}
	for _, m := range All() {
		for _, p := range pairs {
			ab, err := Compute(m, p[0], p[1])
			require.NoError(t, err)
			ba, err := Compute(m, p[1], p[0])
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s %v", m, p)
		}
	}
}

func TestCompute_DimensionMismatch(t *testing.T) {
	v1 := vector.Vector{1, 2}
	v2 := vector.Vector{1, 2, 3}
	for _, m := range All() {
		t.Run(m.Name(), func(t *testing.T) {
			_, err := Compute(m, v1, v2)
			require.Error(t, err)
			assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

			var dm *vector.DimensionMismatchError
			require.True(t, errors.As(err, &dm))
			assert.Equal(t, 2, dm.Expected)
			assert.Equal(t, 3, dm.Found)
		})
	}

	_, err := Compute(CosineDistance, vector.Vector{}, vector.Vector{0})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestCompute_Unsupported(t *testing.T) {
	_, err := Compute(Metric(42), vector.Vector{1}, vector.Vector{2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMetric)

	// length is checked first
	_, err = Compute(Metric(42), vector.Vector{1}, vector.Vector{1, 2})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMetric_Distance(t *testing.T) {
	d, err := Manhattan.Distance([]float32{1, 1}, []float32{-1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(3), d)
}

func TestCompute_EuclideanMatchesSearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 0; n <= 36; n++ {
		a := make(vector.Vector, n)
		b := make(vector.Vector, n)
		for i := range a {
			a[i] = rnd.Float32()*20 - 10
			b[i] = rnd.Float32()*20 - 10
		}
		d, err := Compute(Euclidean, a, b)
		require.NoError(t, err)
		assert.Equal(t, search.Float32s(a).EuclideanDistance(search.Float32s(b)), d, "len %d", n)
	}
}

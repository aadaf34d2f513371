package bspline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinemi/bspline"
)

func TestTransform_Affine(t *testing.T) {
	t.Parallel()

	z, rng, err := bspline.Transform([]float64{0, 5, 10, 2.5}, 2, 5, bspline.DefaultZeroRangeEpsilon)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3.5, 5, 2.75}, z, 1e-15)
	assert.Equal(t, bspline.Range{Min: 0, Max: 10}, rng)
}

func TestTransform_EndpointsAreExact(t *testing.T) {
	t.Parallel()

	// Awkward ranges must still hit lo and hi exactly at min and max.
	values := []float64{0.1, 0.7, 0.3, 1e-17, 0.30000000000000004}
	z, _, err := bspline.Transform(values, 2, 5, 1e-6)
	require.NoError(t, err)
	for _, v := range z {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.LessOrEqual(t, v, 5.0)
	}
	assert.Equal(t, 5.0, z[1])
	assert.Equal(t, 2.0, z[3])
}

func TestTransform_ZeroRange(t *testing.T) {
	t.Parallel()

	z, rng, err := bspline.Transform([]float64{-3, -3}, 0, 4, 1e-6)
	require.NoError(t, err)
	assert.True(t, rng.Widened)
	assert.Equal(t, []float64{2, 2}, z)
}

func TestTransform_WideRange(t *testing.T) {
	t.Parallel()

	z, rng, err := bspline.Transform([]float64{-1e308, 0, 1e308, 5e307}, 0, 4, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, bspline.Range{Min: -1e308, Max: 1e308}, rng)
	assert.InDeltaSlice(t, []float64{0, 2, 4, 3}, z, 1e-12)

	z, _, err = bspline.Transform([]float64{-math.MaxFloat64, math.MaxFloat64, 0}, 2, 5, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 3.5}, z)
}

func TestTransform_ZeroRangeAtLargestValue(t *testing.T) {
	t.Parallel()

	z, rng, err := bspline.Transform([]float64{math.MaxFloat64}, 0, 4, 1e-6)
	require.NoError(t, err)
	assert.True(t, rng.Widened)
	assert.Equal(t, math.MaxFloat64, rng.Max)
	assert.Less(t, rng.Min, math.MaxFloat64)
	assert.Equal(t, []float64{2}, z)

	z, rng, err = bspline.Transform([]float64{-math.MaxFloat64, -math.MaxFloat64}, 0, 4, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, -math.MaxFloat64, rng.Min)
	assert.Equal(t, []float64{2, 2}, z)
}

func TestTransform_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := bspline.Transform(nil, 0, 1, 1e-6)
	assert.ErrorIs(t, err, bspline.ErrInvalidInput)

	_, _, err = bspline.Transform([]float64{1, math.NaN()}, 0, 1, 1e-6)
	assert.ErrorIs(t, err, bspline.ErrInvalidInput)

	_, _, err = bspline.Transform([]float64{1, 2}, 1, 1, 1e-6)
	assert.ErrorIs(t, err, bspline.ErrInvalidInput)

	_, _, err = bspline.Transform([]float64{1, 2}, 0, math.Inf(1), 1e-6)
	assert.ErrorIs(t, err, bspline.ErrInvalidInput)

	_, _, err = bspline.Transform([]float64{1, 2}, 0, 1, 0)
	assert.ErrorIs(t, err, bspline.ErrInvalidConfiguration)
}

// SPDX-License-Identifier: MIT

package bspline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinemi/bspline"
)

// TestValidateConfig covers every rejected (bins, order) corner and the
// smallest accepted configurations.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	bad := []struct {
		name        string
		bins, order int
		detail      string
	}{
		{"zero bins", 0, 0, "bins=0"},
		{"negative bins", -3, 0, "bins=-3"},
		{"negative order", 3, -1, "order=-1"},
		{"order equals bins", 2, 2, "order=2 must be < bins=2"},
		{"order above bins", 3, 5, "order=5"},
		{"single bin linear", 1, 1, "order=1 must be < bins=1"},
	}
	for _, tc := range bad {
		err := bspline.ValidateConfig(tc.bins, tc.order)
		require.ErrorIs(t, err, bspline.ErrInvalidConfiguration, tc.name)
		assert.Contains(t, err.Error(), tc.detail, tc.name)
	}

	assert.NoError(t, bspline.ValidateConfig(1, 0))
	assert.NoError(t, bspline.ValidateConfig(2, 1))
	assert.NoError(t, bspline.ValidateConfig(5, 3))
}

func TestDegree(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, bspline.Degree(0))
	assert.Equal(t, 0, bspline.Degree(1))
	assert.Equal(t, 2, bspline.Degree(3))
}

func TestKnots(t *testing.T) {
	t.Parallel()

	k, err := bspline.Knots(5, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, k)

	k, err = bspline.Knots(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, k, "order 0 is indicator binning")

	_, err = bspline.Knots(2, 2)
	assert.ErrorIs(t, err, bspline.ErrInvalidConfiguration)
}

// TestBasis_QuadraticUniform checks the textbook quadratic uniform B-spline
// values (1/8, 3/4, 1/8) at a span midpoint.
func TestBasis_QuadraticUniform(t *testing.T) {
	t.Parallel()

	knots := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	out := make([]float64, 5)
	require.NoError(t, bspline.Basis(knots, 2, 3.5, out))
	assert.InDeltaSlice(t, []float64{0, 0.125, 0.75, 0.125, 0}, out, 1e-15)
}

// TestBasis_RightEdge checks that the right end of the base interval keeps
// its unit mass in the last span.
func TestBasis_RightEdge(t *testing.T) {
	t.Parallel()

	knots := []float64{0, 1, 2, 3}
	out := make([]float64, 3)
	require.NoError(t, bspline.Basis(knots, 0, 3, out))
	assert.Equal(t, []float64{0, 0, 1}, out)

	knots = []float64{0, 1, 2, 3, 4, 5, 6, 7}
	out = make([]float64, 5)
	require.NoError(t, bspline.Basis(knots, 2, 5, out))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.5, 0.5}, out, 1e-15)
}

// TestBasis_ClampedKnots exercises repeated knots (zero-width spans), where
// the recursion must drop 0/0 terms.
func TestBasis_ClampedKnots(t *testing.T) {
	t.Parallel()

	knots := []float64{0, 0, 0, 1, 2, 2, 2}
	out := make([]float64, 4)
	for _, z := range []float64{0, 0.3, 1, 1.7, 2} {
		require.NoError(t, bspline.Basis(knots, 2, z, out))
		s := 0.0
		for _, v := range out {
			assert.GreaterOrEqual(t, v, 0.0)
			s += v
		}
		assert.InDelta(t, 1.0, s, 1e-12, "z=%v", z)
	}

	require.NoError(t, bspline.Basis(knots, 2, 0, out))
	assert.InDeltaSlice(t, []float64{1, 0, 0, 0}, out, 1e-15)
	require.NoError(t, bspline.Basis(knots, 2, 2, out))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 1}, out, 1e-15)
}

func TestBasis_OutsideAndErrors(t *testing.T) {
	t.Parallel()

	knots := []float64{0, 1, 2, 3}
	out := make([]float64, 3)
	require.NoError(t, bspline.Basis(knots, 0, -0.5, out))
	assert.Equal(t, []float64{0, 0, 0}, out)

	assert.ErrorIs(t, bspline.Basis(knots, -1, 1, out), bspline.ErrInvalidConfiguration)
	assert.ErrorIs(t, bspline.Basis(knots, 3, 1, out), bspline.ErrInvalidConfiguration)
	assert.ErrorIs(t, bspline.Basis(knots, 1, 1, out), bspline.ErrInvalidInput, "wrong out length")
	assert.ErrorIs(t, bspline.Basis([]float64{0, 2, 1, 3}, 0, 1, out), bspline.ErrInvalidInput)
}

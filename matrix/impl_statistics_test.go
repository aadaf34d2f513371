// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinemi/matrix"
)

const epsTight = 1e-12

// ------------------------------
// RowSums / ColSums / ColMeans / Sum
// ------------------------------

func TestReductions_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	for name, m := range map[string]matrix.Matrix{"dense": X, "hidden": hide{X}} {
		rows, err := matrix.RowSums(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{6, 60}, rows, name)

		cols, err := matrix.ColSums(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{11, 22, 33}, cols, name)

		means, err := matrix.ColMeans(m)
		require.NoError(t, err, name)
		assert.InDeltaSlice(t, []float64{5.5, 11, 16.5}, means, epsTight, name)

		total, err := matrix.Sum(m)
		require.NoError(t, err, name)
		assert.Equal(t, 66.0, total, name)
	}
}

func TestReductions_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.RowSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColMeans(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// NormalizeRowsL1
// ------------------------------

func TestNormalizeRowsL1(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{1, 3, 0, 0, -2, 2})
	Y, norms, err := matrix.NormalizeRowsL1(X)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 0, 4}, norms)
	want := NewFilledDense(t, 3, 2, []float64{0.25, 0.75, 0, 0, -0.5, 0.5})
	CompareClose(t, Y, want, 0, epsTight)

	// Input is untouched.
	assert.Equal(t, 1.0, MustAt(t, X, 0, 0))
}

// ------------------------------
// AllClose
// ------------------------------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	c := NewFilledDense(t, 2, 1, []float64{1, 2})
	_, err = matrix.AllClose(a, c, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateFinite(nil))
	assert.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))

	err := matrix.ValidateFinite([]float64{0, math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "index 1")
}

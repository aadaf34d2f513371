package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinemi/matrix"
)

func TestScale(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, -2, 4})
	want := NewFilledDense(t, 1, 3, []float64{0.5, -1, 2})

	fast, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	CompareClose(t, fast, want, 0, 0)

	slow, err := matrix.Scale(hide{a}, 0.5)
	require.NoError(t, err)
	CompareClose(t, slow, want, 0, 0)

	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTransA_OuterProductSum(t *testing.T) {
	t.Parallel()

	// soft-assignment shaped operands: n=4 observations, p=3 and q=2 bins
	a := NewFilledDense(t, 4, 3, []float64{
		1, 0, 0,
		0.5, 0.5, 0,
		0, 0.25, 0.75,
		0, 0, 1,
	})
	b := NewFilledDense(t, 4, 2, []float64{
		1, 0,
		0, 1,
		0.5, 0.5,
		0, 1,
	})
	want := NewFilledDense(t, 3, 2, []float64{
		1, 0.5,
		0.125, 0.625,
		0.375, 1.375,
	})

	fast, err := matrix.MulTransA(a, b)
	require.NoError(t, err)
	CompareClose(t, fast, want, 0, 1e-15)
	assert.Equal(t, 3, fast.Rows())
	assert.Equal(t, 2, fast.Cols())

	slow, err := matrix.MulTransA(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, slow, want, 0, 1e-15)
}

func TestMulTransA_Errors(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	_, err := matrix.MulTransA(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulTransA(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.MulTransA(a, nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

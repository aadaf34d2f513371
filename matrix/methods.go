// SPDX-License-Identifier: MIT

// Products and scaling. Every kernel reads its
// operands row by row through rowView, so *Dense operands are walked over
// their backing slices and any other Matrix goes through At.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulTransA = "MulTransA"
	opScale     = "Scale"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowView returns row i of m. For *Dense it is the backing slice (read-only
// by contract); otherwise buf (len == m.Cols()) is filled through At.
func rowView(m Matrix, i int, buf []float64) []float64 {
	if d, ok := m.(*Dense); ok {
		base := i * d.c

		return d.data[base : base+d.c : base+d.c]
	}
	for j := range buf {
		buf[j], _ = m.At(i, j)
	}

	return buf
}

// axpy accumulates dst += alpha·x (len(dst) == len(x)).
func axpy(dst []float64, alpha float64, x []float64) {
	for j, v := range x {
		dst[j] += alpha * v
	}
}

// MulTransA returns aᵀ·b for a (n×p) and b (n×q) sharing their row count,
// without materializing aᵀ. Each shared row k adds the outer product
// a[k,:] ⊗ b[k,:] to the p×q result, so for soft-assignment matrices the
// work is proportional to the non-zeros of a.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when a.Rows != b.Rows.
//
// Complexity: O(nnz(a)·q) time, O(p·q) memory.
func MulTransA(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opMulTransA, fmt.Errorf("rows %d vs %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch))
	}
	res, err := NewDense(a.Cols(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}

	bufA := make([]float64, a.Cols())
	bufB := make([]float64, b.Cols())
	var bk []float64
	for k := 0; k < a.Rows(); k++ {
		bk = rowView(b, k, bufB)
		for i, av := range rowView(a, k, bufA) {
			if av == 0 {
				continue
			}
			axpy(res.data[i*res.c:(i+1)*res.c], av, bk)
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new matrix.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	buf := make([]float64, res.c)
	for i := 0; i < res.r; i++ {
		dst := res.data[i*res.c : (i+1)*res.c]
		for j, v := range rowView(m, i, buf) {
			dst[j] = v * alpha
		}
	}

	return res, nil
}

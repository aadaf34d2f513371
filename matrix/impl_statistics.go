// SPDX-License-Identifier: MIT
// Package matrix - reductions, row normalization and numeric comparison.
//
// Purpose:
//   - Row/column reductions with a *Dense flat-slice fast path.
//   - L1 row normalization (unit-sum rows) used to repair drift in
//     stochastic matrices such as soft-assignment tables.
//   - Tolerance-based matrix comparison.
//
// Determinism:
//   - Fixed i→j traversal everywhere; no randomness, no map iteration.

package matrix

import "math"

const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opAllClose        = "AllClose"
)

// rowSums computes r[i] = Σ_j X[i,j].
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)

	var i, j int
	var s float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			out[i] = s
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		out[i] = s
	}

	return out, nil
}

// colSums computes c[j] = Σ_i X[i,j].
// Row-outer traversal keeps the *Dense path sequential in memory.
func colSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// normalizeRowsL1 scales each row to unit L1 norm.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms Σ_j |x_ij|.
//   - Stage 3: Build row scale factors 1/norm; for norm==0 use 1 (row unchanged).
//   - Stage 4: Write the scaled copy.
//
// Returns:
//   - normalized copy, original norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func normalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	// Stage 2 (Norms)
	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			s += math.Abs(v)
		}
		norms[i] = s
	}

	// Stage 3 (Scales)
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	// Stage 4 (Apply)
	Y, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v, _ = X.At(i, j)
			Y.data[base+j] = v * scale[i]
		}
	}

	return Y, norms, nil
}

// allClose implements AllClose.
func allClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

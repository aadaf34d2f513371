// SPDX-License-Identifier: MIT
// Package matrix public API facades.
//
// Purpose:
//   - Provide thin, documented entry points for reductions and comparisons.
//   - Each facade delegates to the canonical implementation in impl_*.go.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Reductions iterate rows in ascending order, then columns in ascending order.

package matrix

// ---------- Reductions ----------

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Complexity: O(rc).
//
// For an n×bins soft-assignment matrix this is the un-normalized marginal
// histogram.
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// ColMeans returns ColSums(m) divided by Rows(m).
// Complexity: O(rc).
func ColMeans(m Matrix) ([]float64, error) {
	sums, err := colSums(m)
	if err != nil {
		return nil, matrixErrorf("ColMeans", err)
	}
	inv := 1.0 / float64(m.Rows())
	for j := range sums {
		sums[j] *= inv
	}

	return sums, nil
}

// Sum returns the sum of all elements of m.
// Complexity: O(rc).
func Sum(m Matrix) (float64, error) {
	rows, err := rowSums(m)
	if err != nil {
		return 0, matrixErrorf("Sum", err)
	}
	total := 0.0
	for _, v := range rows {
		total += v
	}

	return total, nil
}

// ---------- Normalization & numeric compare ----------

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1 (if possible).
// Degenerate rows (norm==0) are left unchanged. Also returns the norms per row.
// Time: O(r*c). Space: O(r*c). Deterministic.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) { return normalizeRowsL1(X) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return allClose(a, b, rtol, atol)
}

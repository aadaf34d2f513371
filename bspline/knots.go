// SPDX-License-Identifier: MIT

package bspline

import "fmt"

const (
	opValidate = "ValidateConfig"
	opKnots    = "Knots"
	opBasis    = "Basis"
)

// ValidateConfig checks bins >= 1, order >= 0 and order < bins.
// The error names the violated precondition and wraps ErrInvalidConfiguration.
func ValidateConfig(bins, order int) error {
	if bins < 1 {
		return binErrorf(opValidate, ErrInvalidConfiguration, "bins=%d must be >= 1", bins)
	}
	if order < 0 {
		return binErrorf(opValidate, ErrInvalidConfiguration, "spline order=%d must be >= 0", order)
	}
	if order >= bins {
		return binErrorf(opValidate, ErrInvalidConfiguration,
			"spline order=%d must be < bins=%d", order, bins)
	}

	return nil
}

// Degree returns the polynomial degree of a spline of the given order.
// Order 0 is treated as order 1 (indicator functions, degree 0).
func Degree(order int) int {
	if order <= 1 {
		return 0
	}

	return order - 1
}

// Knots returns the uniform knot vector t_i = i for i = 0..bins+degree.
// Its length is bins+degree+1, so it carries exactly `bins` basis functions
// of the given order. The base interval on which the basis is a partition of
// unity is [t_degree, t_bins].
//
// Errors:
//   - ErrInvalidConfiguration (see ValidateConfig).
//
// Complexity: O(bins+order).
func Knots(bins, order int) ([]float64, error) {
	if err := ValidateConfig(bins, order); err != nil {
		return nil, fmt.Errorf("%s: %w", opKnots, err)
	}
	n := bins + Degree(order) + 1
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i)
	}

	return t, nil
}

// Basis evaluates all B-spline basis functions of the given degree defined
// over knots at the point z and writes them into out.
//
// Algorithm (Cox–de Boor, bottom-up):
//  1. Degree 0: N_{i,0}(z) = 1 on the half-open span [t_i, t_{i+1}) containing z.
//     At the right end of the base interval (z == t_nb, nb = number of basis
//     functions) the last non-empty span is used instead, so the maximum of
//     the data keeps its full unit mass.
//  2. Degree p: N_{i,p} = (z-t_i)/(t_{i+p}-t_i)·N_{i,p-1}
//     + (t_{i+p+1}-z)/(t_{i+p+1}-t_{i+1})·N_{i+1,p-1},
//     a term with a zero-width denominator contributes 0.
//
// Preconditions:
//   - knots non-decreasing, degree >= 0, len(out) == len(knots)-degree-1 >= 1.
//
// Points outside [t_0, t_last] yield an all-zero row.
//
// Complexity: O(len(knots)·degree) time, O(len(knots)) scratch.
func Basis(knots []float64, degree int, z float64, out []float64) error {
	if degree < 0 {
		return binErrorf(opBasis, ErrInvalidConfiguration, "degree=%d must be >= 0", degree)
	}
	nb := len(knots) - degree - 1
	if nb < 1 {
		return binErrorf(opBasis, ErrInvalidConfiguration,
			"%d knots cannot carry a degree-%d basis", len(knots), degree)
	}
	if len(out) != nb {
		return binErrorf(opBasis, ErrInvalidInput, "len(out)=%d, want %d", len(out), nb)
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return binErrorf(opBasis, ErrInvalidInput, "knots decrease at index %d", i)
		}
	}
	basisInto(knots, degree, z, out, make([]float64, len(knots)-1))

	return nil
}

// basisInto is the allocation-free core of Basis. Arguments are trusted:
// len(out) == len(knots)-degree-1 and len(scratch) == len(knots)-1.
func basisInto(knots []float64, degree int, z float64, out, scratch []float64) {
	for i := range scratch {
		scratch[i] = 0
	}
	for i := range out {
		out[i] = 0
	}

	nb := len(out)
	span := findSpan(knots, nb, z)
	if span < 0 {
		return
	}
	scratch[span] = 1

	// Bottom-up recursion; ascending i reads scratch[i+1] before it is overwritten.
	m := len(scratch)
	var left, right, d float64
	for p := 1; p <= degree; p++ {
		for i := 0; i < m-p; i++ {
			left, right = 0, 0
			if d = knots[i+p] - knots[i]; d != 0 {
				left = (z - knots[i]) / d * scratch[i]
			}
			if d = knots[i+p+1] - knots[i+1]; d != 0 {
				right = (knots[i+p+1] - z) / d * scratch[i+1]
			}
			scratch[i] = left + right
		}
		scratch[m-p] = 0
	}
	copy(out, scratch[:nb])
}

// findSpan returns the index s of the degree-0 span holding z, or -1 when z
// lies outside the knot vector.
func findSpan(knots []float64, nb int, z float64) int {
	if z == knots[nb] {
		// Right end of the base interval: last non-empty span at or before nb-1.
		for s := nb - 1; s >= 0; s-- {
			if knots[s] < knots[s+1] {
				return s
			}
		}

		return -1
	}
	for s := 0; s < len(knots)-1; s++ {
		if knots[s] <= z && z < knots[s+1] {
			return s
		}
	}

	return -1
}

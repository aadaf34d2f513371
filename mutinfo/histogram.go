// SPDX-License-Identifier: MIT

package mutinfo

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/splinemi/bspline"
	"github.com/katalvlaran/splinemi/matrix"
)

const (
	opJoint     = "JointHistogram"
	opMarginal  = "Marginal"
	opEntropy   = "Entropy"
	opFromJoint = "FromJoint"
)

// JointHistogram returns the normalized soft joint histogram J = Bxᵀ·By / n
// of two soft-assignment matrices with the same number of rows n.
// J[i,j] is the mean over observations of Bx[k,i]·By[k,j], so J sums to 1
// whenever every row of Bx and By does.
//
// Stage 1 (Validate): nil-checks, matching row counts, n >= 1.
// Stage 2 (Execute): Bxᵀ·By via matrix.MulTransA, one outer product per
// observation over its non-zero support.
// Stage 3 (Finalize): scale by 1/n.
//
// Errors:
//   - matrix.ErrNilMatrix for nil inputs.
//   - ErrLengthMismatch (also bspline.ErrInvalidInput) for differing row counts.
//   - bspline.ErrInvalidInput for zero rows.
//
// Complexity: O(n·k²) time with k = spline order, O(binsX·binsY) memory.
func JointHistogram(bx, by matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: Validate
	if err := matrix.ValidateNotNil(bx); err != nil {
		return nil, miErrorf(opJoint, err)
	}
	if err := matrix.ValidateNotNil(by); err != nil {
		return nil, miErrorf(opJoint, err)
	}
	n := bx.Rows()
	if n != by.Rows() {
		return nil, lengthMismatch(opJoint, n, by.Rows())
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: no observations: %w", opJoint, bspline.ErrInvalidInput)
	}

	// Stage 2: Execute
	counts, err := matrix.MulTransA(bx, by)
	if err != nil {
		return nil, miErrorf(opJoint, err)
	}

	// Stage 3: Finalize
	joint, err := matrix.Scale(counts, 1.0/float64(n))
	if err != nil {
		return nil, miErrorf(opJoint, err)
	}

	return joint.(*matrix.Dense), nil
}

// Marginal returns the column means of a soft-assignment matrix: the
// probability mass each bin receives. For J from JointHistogram the
// marginals of Bx and By equal the row and column sums of J.
func Marginal(b matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, miErrorf(opMarginal, err)
	}
	if b.Rows() == 0 {
		return nil, fmt.Errorf("%s: no observations: %w", opMarginal, bspline.ErrInvalidInput)
	}
	p, err := matrix.ColMeans(b)
	if err != nil {
		return nil, miErrorf(opMarginal, err)
	}

	return p, nil
}

// Entropy returns H(p) = -Σ p_i log_base p_i over p_i > 0.
// p is taken as given; it is not renormalized.
//
// Errors:
//   - matrix.ErrNaNInf (also bspline.ErrInvalidInput) for non-finite entries.
//   - bspline.ErrInvalidInput for negative entries.
//
// Complexity: O(len(p)).
func Entropy(p []float64, base float64) (float64, error) {
	if err := validateDistribution(opEntropy, p); err != nil {
		return 0, err
	}
	if !(base > 0) || base == 1 {
		return 0, fmt.Errorf("%s: base=%v: %w", opEntropy, base, bspline.ErrInvalidConfiguration)
	}

	return entropy(p, logFunc(base)), nil
}

// entropy computes -Σ p·log p with the terms formed as an elementwise product.
func entropy(p []float64, log func(float64) float64) float64 {
	logs := make([]float64, len(p))
	for i, v := range p {
		if v > 0 {
			logs[i] = log(v)
		}
	}
	vecmath.MulBlockInPlace(logs, p)

	return -sum(logs)
}

// validateDistribution rejects non-finite or negative probabilities.
func validateDistribution(tag string, p []float64) error {
	if err := matrix.ValidateFinite(p); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, err, bspline.ErrInvalidInput)
	}
	for i, v := range p {
		if v < 0 {
			return fmt.Errorf("%s: p[%d]=%v is negative: %w", tag, i, v, bspline.ErrInvalidInput)
		}
	}

	return nil
}

// FromJoint returns the mutual information of a joint distribution J in the
// given log base, using the row and column sums of J as marginals:
//
//	MI = Σ_ij J[i,j] · log(J[i,j] / (px[i]·py[j])),  over J[i,j] > 0.
//
// The result is clamped below at 0 to absorb rounding.
//
// Errors:
//   - matrix.ErrNilMatrix for nil J.
//   - bspline.ErrInvalidInput for negative or non-finite entries.
//   - bspline.ErrInvalidConfiguration for an invalid base.
//
// Complexity: O(rows·cols).
func FromJoint(j matrix.Matrix, base float64) (float64, error) {
	if err := matrix.ValidateNotNil(j); err != nil {
		return 0, miErrorf(opFromJoint, err)
	}
	if !(base > 0) || base == 1 {
		return 0, fmt.Errorf("%s: base=%v: %w", opFromJoint, base, bspline.ErrInvalidConfiguration)
	}
	px, err := matrix.RowSums(j)
	if err != nil {
		return 0, miErrorf(opFromJoint, err)
	}
	py, err := matrix.ColSums(j)
	if err != nil {
		return 0, miErrorf(opFromJoint, err)
	}
	if err = validateDistribution(opFromJoint, px); err != nil {
		return 0, err
	}
	for r := 0; r < j.Rows(); r++ {
		for c := 0; c < j.Cols(); c++ {
			v, _ := j.At(r, c)
			if v < 0 {
				return 0, fmt.Errorf("%s: J[%d,%d]=%v is negative: %w", opFromJoint, r, c, v, bspline.ErrInvalidInput)
			}
		}
	}

	return mutualInfo(j, px, py, logFunc(base)), nil
}

// mutualInfo evaluates the MI sum row by row. Each row contributes
// Σ_j J[i,j]·L[i,j] with L the log ratio, formed as an elementwise product.
// J must be non-negative and px, py its row and column sums.
func mutualInfo(j matrix.Matrix, px, py []float64, log func(float64) float64) float64 {
	cols := j.Cols()
	row := make([]float64, cols)
	logs := make([]float64, cols)
	var (
		r, c int
		v    float64
		mi   float64
	)
	for r = 0; r < j.Rows(); r++ {
		if px[r] == 0 {
			continue
		}
		for c = 0; c < cols; c++ {
			v, _ = j.At(r, c)
			row[c] = v
			logs[c] = 0
			if v > 0 {
				logs[c] = log(v / (px[r] * py[c]))
			}
		}
		vecmath.MulBlockInPlace(logs, row)
		mi += sum(logs)
	}
	if mi < 0 {
		mi = 0
	}

	return mi
}

// sum adds x left to right.
func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}

	return s
}

// SPDX-License-Identifier: MIT

package mutinfo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splinemi/bspline"
	"github.com/katalvlaran/splinemi/matrix"
)

const opEstimate = "Estimate"

// Result is the full report of one MI estimate.
//   - MI:          the estimate in the configured base, >= 0.
//   - Joint:       the bins×bins joint distribution (sums to 1).
//   - Px, Py:      marginals (row and column sums of Joint).
//   - Hx, Hy, Hxy: marginal and joint entropies in the same base.
//   - N:           observations used; Dropped: NaN pairs removed.
//   - Corrected:   true when the finite-size correction was applied.
//   - RangeX, RangeY: observed ranges used by the binners.
type Result struct {
	MI          float64
	Joint       *matrix.Dense
	Px, Py      []float64
	Hx, Hy, Hxy float64
	N, Dropped  int
	Corrected   bool
	RangeX      bspline.Range
	RangeY      bspline.Range
}

// MutualInformation estimates the mutual information between x and y in bits
// using B-spline soft binning with the given number of bins and spline order.
// Order 0 and 1 are hard binning; order k >= 2 spreads each observation over
// k adjacent bins.
//
// Errors:
//   - bspline.ErrInvalidConfiguration: bins < 1, order < 0 or order >= bins
//     (checked before the inputs).
//   - ErrLengthMismatch: len(x) != len(y); also matches bspline.ErrInvalidInput.
//   - bspline.ErrInvalidInput: empty input or NaN/±Inf values.
//
// Complexity: O(n·k² + bins²) time, O(n·bins + bins²) memory.
func MutualInformation(x, y []float64, bins, order int, opts ...Option) (float64, error) {
	res, err := Estimate(x, y, bins, order, opts...)
	if err != nil {
		return 0, err
	}

	return res.MI, nil
}

// Estimate runs the full estimator and reports the intermediate
// distributions alongside the MI value.
//
// Stage 1 (Validate): configuration, correction order, lengths.
// Stage 2 (Filter): optional pairwise-complete NaN removal.
// Stage 3 (Bin): soft-assign x and y independently.
// Stage 4 (Reduce): joint histogram, marginals, entropies, MI.
func Estimate(x, y []float64, bins, order int, opts ...Option) (*Result, error) {
	return estimate(x, y, bins, order, gatherOptions(opts...))
}

// estimate is Estimate over already gathered options.
func estimate(x, y []float64, bins, order int, o Options) (*Result, error) {
	// Stage 1: Validate
	if err := validateEstimate(bins, order, o); err != nil {
		return nil, miErrorf(opEstimate, err)
	}
	if len(x) != len(y) {
		return nil, lengthMismatch(opEstimate, len(x), len(y))
	}

	// Stage 2: Filter
	var dropped int
	if o.pairwise {
		var err error
		if x, y, dropped, err = completePairs(x, y, o.minDefined); err != nil {
			return nil, miErrorf(opEstimate, err)
		}
	}

	// Stage 3: Bin
	binner, err := bspline.NewBinner(bins, order, o.binnerOpts...)
	if err != nil {
		return nil, miErrorf(opEstimate, err)
	}
	bx, rx, err := binner.Bin(x)
	if err != nil {
		return nil, fmt.Errorf("%s: x: %w", opEstimate, err)
	}
	by, ry, err := binner.Bin(y)
	if err != nil {
		return nil, fmt.Errorf("%s: y: %w", opEstimate, err)
	}

	// Stage 4: Reduce
	res, err := reduce(bx, by, bins, o)
	if err != nil {
		return nil, miErrorf(opEstimate, err)
	}
	res.Dropped = dropped
	res.RangeX, res.RangeY = rx, ry

	return res, nil
}

// validateEstimate checks the configuration before any input is inspected.
func validateEstimate(bins, order int, o Options) error {
	if err := bspline.ValidateConfig(bins, order); err != nil {
		return err
	}
	if o.correct && order > 1 {
		return fmt.Errorf("order=%d: %w: %w", order, ErrCorrectionOrder, bspline.ErrInvalidConfiguration)
	}

	return nil
}

// completePairs keeps the indices where neither x nor y is NaN.
func completePairs(x, y []float64, minDefined int) (cx, cy []float64, dropped int, err error) {
	cx = make([]float64, 0, len(x))
	cy = make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			dropped++
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	if len(cx) == 0 || len(cx) < minDefined {
		return nil, nil, dropped, fmt.Errorf("%d complete of %d, need %d: %w",
			len(cx), len(x), max(minDefined, 1), ErrInsufficientData)
	}

	return cx, cy, dropped, nil
}

// reduce turns two soft-assignment matrices into a Result.
func reduce(bx, by *matrix.Dense, bins int, o Options) (*Result, error) {
	joint, err := JointHistogram(bx, by)
	if err != nil {
		return nil, err
	}
	px, err := matrix.RowSums(joint)
	if err != nil {
		return nil, err
	}
	py, err := matrix.ColSums(joint)
	if err != nil {
		return nil, err
	}

	log := logFunc(o.base)
	n := bx.Rows()
	res := &Result{
		MI:    mutualInfo(joint, px, py, log),
		Joint: joint,
		Px:    px,
		Py:    py,
		Hx:    entropy(px, log),
		Hy:    entropy(py, log),
		Hxy:   entropy(joint.Data(), log),
		N:     n,
	}
	if o.correct {
		res.MI -= correction(bins, n)
		if res.MI < 0 {
			res.MI = 0
		}
		res.Corrected = true
	}

	return res, nil
}

// correction is the finite-size term (bins-1)/(2n), subtracted as is in the
// configured unit.
func correction(bins, n int) float64 {
	return float64(bins-1) / (2 * float64(n))
}

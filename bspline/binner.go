// SPDX-License-Identifier: MIT

package bspline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splinemi/matrix"
)

const (
	opNewBinner = "NewBinner"
	opBin       = "Bin"
)

// Binner maps sample vectors onto n×bins soft-assignment matrices.
// A Binner is immutable after construction and safe for concurrent use.
type Binner struct {
	bins   int
	order  int
	degree int
	knots  []float64
	lo, hi float64 // base interval [t_degree, t_bins]
	opts   Options
}

// NewBinner validates (bins, order) once and precomputes the knot vector.
//
// Errors:
//   - ErrInvalidConfiguration (see ValidateConfig).
func NewBinner(bins, order int, opts ...Option) (*Binner, error) {
	knots, err := Knots(bins, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewBinner, err)
	}
	degree := Degree(order)

	return &Binner{
		bins:   bins,
		order:  order,
		degree: degree,
		knots:  knots,
		lo:     knots[degree],
		hi:     knots[bins],
		opts:   gatherOptions(opts...),
	}, nil
}

// Bins returns the number of bins (basis functions).
func (b *Binner) Bins() int { return b.bins }

// Order returns the configured spline order.
func (b *Binner) Order() int { return b.order }

// Knots returns a copy of the knot vector.
func (b *Binner) Knots() []float64 {
	cp := make([]float64, len(b.knots))
	copy(cp, b.knots)

	return cp
}

// Bin evaluates the basis at every observation. Bin only reads the
// Binner, so one Binner may serve concurrent callers.
//
// Implementation:
//   - Stage 1: validate values (non-empty, finite).
//   - Stage 2: compute the observed range (widened if constant) and map
//     the values onto the base interval.
//   - Stage 3: evaluate the basis row by row straight into the result buffer.
//   - Stage 4: renormalize when some row drifted from unit sum by more than
//     the row tolerance (only when renormalization is enabled).
//
// Returns:
//   - *matrix.Dense of shape len(values)×bins; rows are non-negative and sum to 1.
//   - Range actually used for the map.
//
// Errors:
//   - ErrInvalidInput: empty input or NaN/±Inf values (index reported).
//
// Complexity: O(n·(bins+order)·order) time, O(n·bins) space.
func (b *Binner) Bin(values []float64) (*matrix.Dense, Range, error) {
	// Stage 1
	if err := validateValues(opBin, values); err != nil {
		return nil, Range{}, err
	}

	// Stage 2
	n := len(values)
	rng := observedRange(values, b.opts.zeroRangeEps)
	z := make([]float64, n)
	transformInto(values, rng, b.lo, b.hi, z)

	// Stage 3
	out, err := matrix.NewDense(n, b.bins)
	if err != nil {
		return nil, Range{}, fmt.Errorf("%s: %w", opBin, err)
	}
	scratch := make([]float64, len(b.knots)-1)
	drift := false
	var row []float64
	for i := 0; i < n; i++ {
		if row, err = out.RawRow(i); err != nil {
			return nil, Range{}, fmt.Errorf("%s: %w", opBin, err)
		}
		basisInto(b.knots, b.degree, z[i], row, scratch)
		if math.Abs(sum(row)-1) > b.opts.rowTol {
			drift = true
		}
	}

	// Stage 4
	if drift && b.opts.renormalize {
		normalized, _, err := matrix.NormalizeRowsL1(out)
		if err != nil {
			return nil, Range{}, fmt.Errorf("%s: %w", opBin, err)
		}
		out = normalized.(*matrix.Dense)
	}

	return out, rng, nil
}

// Bin is the one-shot form of NewBinner(bins, order, opts...).Bin(values)
// that returns only the soft-assignment matrix.
func Bin(values []float64, bins, order int, opts ...Option) (*matrix.Dense, error) {
	b, err := NewBinner(bins, order, opts...)
	if err != nil {
		return nil, err
	}
	m, _, err := b.Bin(values)

	return m, err
}

// sum is a plain left-to-right accumulation.
func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}

	return s
}

// SPDX-License-Identifier: MIT

package bspline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splinemi/matrix"
)

const opTransform = "Transform"

// Range describes the observed extent of a sample vector as used for the
// affine map onto the base interval.
//   - Min, Max: the (possibly widened) range.
//   - Widened:  true when the input had zero range and was widened
//     symmetrically; an advisory, not an error.
type Range struct {
	Min, Max float64
	Widened  bool
}

// Transform maps values affinely from their observed range onto [lo, hi]:
//
//	z = (v - min) * (hi - lo) / (max - min) + lo
//
// The observed min and max map exactly onto lo and hi; interior results are
// clamped into [lo, hi]. Ranges wider than math.MaxFloat64 are mapped without
// overflow, so every finite input lands inside [lo, hi].
//
// Zero-range input (all values equal to v) is widened to [v-w, v+w] with
// w = eps * max(1, |v|), saturating at ±math.MaxFloat64; every value then maps
// to (lo+hi)/2.
//
// Errors:
//   - ErrInvalidInput: empty values, NaN/±Inf values, or lo/hi not finite with lo < hi.
//   - ErrInvalidConfiguration: eps not finite and > 0.
//
// Complexity: O(n).
func Transform(values []float64, lo, hi, eps float64) ([]float64, Range, error) {
	if err := validateValues(opTransform, values); err != nil {
		return nil, Range{}, err
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || !(lo < hi) {
		return nil, Range{}, binErrorf(opTransform, ErrInvalidInput, "target interval [%v, %v] is not a finite interval", lo, hi)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, Range{}, binErrorf(opTransform, ErrInvalidConfiguration, "eps=%v must be finite and > 0", eps)
	}

	rng := observedRange(values, eps)
	out := make([]float64, len(values))
	transformInto(values, rng, lo, hi, out)

	return out, rng, nil
}

// validateValues enforces the non-empty, finite-only input contract.
func validateValues(tag string, values []float64) error {
	if len(values) == 0 {
		return binErrorf(tag, ErrInvalidInput, "sample vector is empty")
	}
	if err := matrix.ValidateFinite(values); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, err, ErrInvalidInput)
	}

	return nil
}

// observedRange returns [min, max] of values, widened when min == max.
// values must be non-empty and finite.
func observedRange(values []float64, eps float64) Range {
	mn, mx := values[0], values[0]
	for _, v := range values[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	if mn < mx {
		return Range{Min: mn, Max: mx}
	}

	w := eps * math.Max(1, math.Abs(mn))
	lo, hi := mn-w, mx+w
	if math.IsInf(lo, -1) {
		lo = -math.MaxFloat64
	}
	if math.IsInf(hi, 1) {
		hi = math.MaxFloat64
	}

	return Range{Min: lo, Max: hi, Widened: true}
}

// transformInto writes the affine image of values into out (len(out) == len(values)).
// A widened range holds a single repeated value, which maps to the midpoint.
func transformInto(values []float64, rng Range, lo, hi float64, out []float64) {
	if rng.Widened {
		mid := lo + (hi-lo)/2
		for i := range out {
			out[i] = mid
		}

		return
	}

	span := rng.Max - rng.Min
	width := hi - lo
	var z, num float64
	for i, v := range values {
		switch v {
		case rng.Min:
			out[i] = lo
			continue
		case rng.Max:
			out[i] = hi
			continue
		}
		num = (v - rng.Min) * width
		if math.IsInf(span, 0) || math.IsInf(num, 0) {
			// halving is exact for values this large
			z = lo + (v/2-rng.Min/2)/(rng.Max/2-rng.Min/2)*width
		} else {
			z = num/span + lo
		}
		if !(z >= lo) {
			z = lo
		} else if z > hi {
			z = hi
		}
		out[i] = z
	}
}

// SPDX-License-Identifier: MIT

// Package bspline: functional configuration of the binner.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Defaults live in constants (single source of truth).
package bspline

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroRangeEpsilon is the relative half-width used to widen a
	// zero-range input: [v - w, v + w] with w = eps * max(1, |v|).
	// Any positive eps maps v onto the midpoint of the base interval, so the
	// value only has to be large enough for v ± w to be distinct floats.
	DefaultZeroRangeEpsilon = 1e-6

	// DefaultRenormalize enables row renormalization on drift.
	DefaultRenormalize = true

	// DefaultRowTolerance is the allowed |Σ row - 1| before renormalization kicks in.
	DefaultRowTolerance = 1e-12
)

// ---------- Internal panic messages ----------

const (
	panicZeroRangeEpsilon = "bspline: WithZeroRangeEpsilon: eps must be finite and > 0"
	panicRowTolerance     = "bspline: WithRowTolerance: tol must be finite and >= 0"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective binner configuration. Fields are unexported;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	zeroRangeEps float64 // > 0; DefaultZeroRangeEpsilon
	renormalize  bool    // DefaultRenormalize
	rowTol       float64 // >= 0; DefaultRowTolerance
}

// WithZeroRangeEpsilon sets the relative widening used for constant input.
// Panics when eps is not finite or not strictly positive.
func WithZeroRangeEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicZeroRangeEpsilon)
	}

	return func(o *Options) { o.zeroRangeEps = eps }
}

// WithoutRenormalize disables row renormalization; rows are returned exactly
// as the Cox–de Boor recursion produced them.
func WithoutRenormalize() Option {
	return func(o *Options) { o.renormalize = false }
}

// WithRowTolerance sets the drift tolerance for row renormalization.
// Panics when tol is negative, NaN or infinite.
func WithRowTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicRowTolerance)
	}

	return func(o *Options) { o.rowTol = tol }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroRangeEps: DefaultZeroRangeEpsilon,
		renormalize:  DefaultRenormalize,
		rowTol:       DefaultRowTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

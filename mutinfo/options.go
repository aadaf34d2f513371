// SPDX-License-Identifier: MIT

package mutinfo

import (
	"math"

	"github.com/katalvlaran/splinemi/bspline"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBase is the logarithm base; 2 reports information in bits.
	DefaultBase = 2.0

	// DefaultFiniteSizeCorrection disables the (bins-1)/(2n) correction.
	DefaultFiniteSizeCorrection = false

	// DefaultPairwiseComplete rejects NaN like any other non-finite value.
	DefaultPairwiseComplete = false
)

const (
	panicBase       = "mutinfo: WithBase: base must be finite, > 0 and != 1"
	panicMinDefined = "mutinfo: WithPairwiseComplete: minDefined must be >= 0"
	panicWorkers    = "mutinfo: WithWorkers: n must be >= 1"
)

// Option mutates Options. Last writer wins.
type Option func(*Options)

// Options stores the effective estimator configuration.
type Options struct {
	base       float64          // log base; DefaultBase
	correct    bool             // finite-size correction
	pairwise   bool             // drop NaN pairs before binning
	minDefined int              // minimum complete pairs when pairwise
	workers    int              // Pairwise pool size; 0 means GOMAXPROCS
	binnerOpts []bspline.Option // forwarded to both binners
}

// WithBase sets the logarithm base. Panics on a base that is not finite,
// not positive or equal to 1.
func WithBase(base float64) Option {
	if !(base > 0) || base == 1 || math.IsInf(base, 0) {
		panic(panicBase)
	}

	return func(o *Options) { o.base = base }
}

// WithNats reports information in nats (natural logarithm).
func WithNats() Option { return WithBase(math.E) }

// WithFiniteSizeCorrection subtracts (bins-1)/(2n) from the estimate, the
// first-order bias of plug-in MI under hard binning. Only valid for spline
// order 0 or 1; the corrected value is still clamped at 0.
func WithFiniteSizeCorrection() Option {
	return func(o *Options) { o.correct = true }
}

// WithPairwiseComplete drops every index where x or y is NaN before binning.
// ±Inf values still fail as invalid input. When fewer than minDefined pairs
// remain (or none at all) the estimate fails with ErrInsufficientData.
func WithPairwiseComplete(minDefined int) Option {
	if minDefined < 0 {
		panic(panicMinDefined)
	}

	return func(o *Options) {
		o.pairwise = true
		o.minDefined = minDefined
	}
}

// WithBinnerOptions forwards options to the B-spline binner of both variables.
func WithBinnerOptions(opts ...bspline.Option) Option {
	return func(o *Options) { o.binnerOpts = append(o.binnerOpts, opts...) }
}

// WithWorkers bounds the goroutine pool used by Pairwise.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		base:     DefaultBase,
		correct:  DefaultFiniteSizeCorrection,
		pairwise: DefaultPairwiseComplete,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// logFunc returns the logarithm for base, using the exact library routines
// for 2 and e.
func logFunc(base float64) func(float64) float64 {
	switch base {
	case 2:
		return math.Log2
	case math.E:
		return math.Log
	}
	lb := math.Log(base)

	return func(x float64) float64 { return math.Log(x) / lb }
}

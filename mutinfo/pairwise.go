// SPDX-License-Identifier: MIT

package mutinfo

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/splinemi/bspline"
	"github.com/katalvlaran/splinemi/matrix"
)

const opPairwise = "Pairwise"

// Pairwise returns the symmetric m×m matrix of mutual information between
// every pair of the m variables in vars. Entry [i,i] is MI(vars[i], vars[i]),
// the self-information of the binned variable.
//
// Implementation:
//   - Stage 1: validate configuration, then that vars is non-empty and all
//     variables share one length.
//   - Stage 2: bin every variable once. Skipped under WithPairwiseComplete,
//     where the kept indices differ per pair and each pair is binned on its own.
//   - Stage 3: reduce the m·(m+1)/2 pairs i <= j on a pool of WithWorkers
//     goroutines (default GOMAXPROCS), writing [i,j] and [j,i].
//
// The first failing pair cancels the rest. Cancellation of ctx stops the
// pool and is reported as an error matching ctx.Err().
//
// Errors:
//   - bspline.ErrInvalidConfiguration: as MutualInformation.
//   - bspline.ErrInvalidInput: no variables, or a variable that cannot be binned.
//   - ErrLengthMismatch: variables of different lengths.
//   - ErrInsufficientData: under WithPairwiseComplete, a pair with too few
//     complete observations.
//   - context.Canceled / context.DeadlineExceeded.
//
// Complexity: O(m·n·k² + m²·(n·k² + bins²)) time, O(m·n·bins + m²) memory.
func Pairwise(ctx context.Context, vars [][]float64, bins, order int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	// Stage 1: Validate
	if err := validateEstimate(bins, order, o); err != nil {
		return nil, miErrorf(opPairwise, err)
	}
	m := len(vars)
	if m == 0 {
		return nil, fmt.Errorf("%s: no variables: %w", opPairwise, bspline.ErrInvalidInput)
	}
	n := len(vars[0])
	for i := 1; i < m; i++ {
		if len(vars[i]) != n {
			return nil, fmt.Errorf("%s: variable %d: len=%d, want %d: %w: %w",
				opPairwise, i, len(vars[i]), n, ErrLengthMismatch, bspline.ErrInvalidInput)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, miErrorf(opPairwise, err)
	}
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Stage 2: Bin once per variable
	var binned []*matrix.Dense
	if !o.pairwise {
		var err error
		if binned, err = binAll(ctx, vars, bins, order, workers, o); err != nil {
			return nil, miErrorf(opPairwise, err)
		}
	}

	// Stage 3: Reduce pairs
	out, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, miErrorf(opPairwise, err)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				mi, err := pairMI(vars, binned, i, j, bins, order, o)
				if err != nil {
					return fmt.Errorf("pair (%d,%d): %w", i, j, err)
				}
				// distinct cells per pair; no two goroutines share an index
				if err = out.Set(i, j, mi); err != nil {
					return err
				}

				return out.Set(j, i, mi)
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, miErrorf(opPairwise, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, miErrorf(opPairwise, err)
	}

	return out, nil
}

// binAll bins every variable with one shared Binner on the worker pool.
func binAll(ctx context.Context, vars [][]float64, bins, order, workers int, o Options) ([]*matrix.Dense, error) {
	binner, err := bspline.NewBinner(bins, order, o.binnerOpts...)
	if err != nil {
		return nil, err
	}
	binned := make([]*matrix.Dense, len(vars))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range vars {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, _, err := binner.Bin(vars[i])
			if err != nil {
				return fmt.Errorf("variable %d: %w", i, err)
			}
			binned[i] = b

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return binned, nil
}

// pairMI computes MI for one pair, from the pre-binned matrices when present.
func pairMI(vars [][]float64, binned []*matrix.Dense, i, j, bins, order int, o Options) (float64, error) {
	if binned == nil {
		res, err := estimate(vars[i], vars[j], bins, order, o)
		if err != nil {
			return 0, err
		}

		return res.MI, nil
	}
	res, err := reduce(binned[i], binned[j], bins, o)
	if err != nil {
		return 0, err
	}

	return res.MI, nil
}

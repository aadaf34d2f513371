// Package matrix provides the dense row-major storage used by the binning
// and estimation packages.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major float64 matrix with safe accessors
//     (At/Set return errors instead of panicking) and no-copy row views for
//     hot loops.
//   - Kernels over any Matrix with a flat-slice fast path for *Dense:
//     MulTransA forms aᵀ·b as a sum of per-row outer products (how joint
//     histograms are accumulated) and Scale multiplies by a scalar.
//   - Reductions used by histogram code: RowSums, ColSums, ColMeans, Sum.
//   - NormalizeRowsL1 for stochastic (unit-sum) rows and AllClose for
//     numeric comparison in tests.
//
// Errors are package-level sentinels (errors.go) wrapped with a call-site tag;
// match them with errors.Is.
//
// Typical shapes in this module are n×bins (soft assignments, one row per
// observation) and bins×bins (joint histograms).
package matrix

// SPDX-License-Identifier: MIT

package mutinfo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/splinemi/bspline"
)

var (
	// ErrLengthMismatch indicates paired vectors of different lengths.
	// Returned errors also match bspline.ErrInvalidInput.
	ErrLengthMismatch = errors.New("mutinfo: length mismatch")

	// ErrCorrectionOrder indicates that the finite-size correction was
	// requested for a spline order above 1. Returned errors also match
	// bspline.ErrInvalidConfiguration.
	ErrCorrectionOrder = errors.New("mutinfo: finite-size correction requires spline order <= 1")

	// ErrInsufficientData indicates that fewer complete observation pairs
	// remain than the configured minimum.
	ErrInsufficientData = errors.New("mutinfo: insufficient complete observations")
)

// miErrorf wraps err with an operation tag.
func miErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthMismatch builds the error for len(x) != len(y).
func lengthMismatch(tag string, nx, ny int) error {
	return fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w: %w",
		tag, nx, ny, ErrLengthMismatch, bspline.ErrInvalidInput)
}

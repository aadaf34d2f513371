// SPDX-License-Identifier: MIT

package bspline

import (
	"errors"
	"fmt"
)

// Sentinel errors. Detection sites wrap them with the failing precondition,
// callers match with errors.Is.
var (
	// ErrInvalidConfiguration indicates bins < 1, order < 0 or order >= bins.
	ErrInvalidConfiguration = errors.New("bspline: invalid configuration")

	// ErrInvalidInput indicates an empty sample vector or a non-finite value.
	ErrInvalidInput = errors.New("bspline: invalid input")
)

// binErrorf wraps err with an operation tag and a formatted detail.
func binErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with call-site
// context via %w); tests match them with errors.Is. No function panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/AddAt return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadKernel indicates a convolution kernel that is empty, even-length,
	// or contains non-finite weights.
	ErrBadKernel = errors.New("matrix: kernel must be odd-length and finite")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

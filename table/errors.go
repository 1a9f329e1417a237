// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every message carries the "table:" prefix. Call sites add context with
// fmt.Errorf("Op(...): %w", ErrX); callers match with errors.Is.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrShape signals a length or dimension mismatch: fields of different
	// lengths, a mask of the wrong length, a malformed image_size, or a
	// required field that is absent.
	ErrShape = errors.New("table: shape mismatch")

	// ErrSchemaMismatch signals that two tables do not share the same field
	// names and kinds (Join).
	ErrSchemaMismatch = errors.New("table: schema mismatch")

	// ErrFieldNotFound signals a lookup of a field that is not present.
	ErrFieldNotFound = errors.New("table: field not found")

	// ErrParamNotFound signals a lookup of a parameter that is not present.
	ErrParamNotFound = errors.New("table: parameter not found")

	// ErrInvalidValue signals an argument whose value is outside its domain
	// (empty names, empty parameter vectors, unknown kinds, ...).
	ErrInvalidValue = errors.New("table: invalid value")

	// ErrOutOfRange signals a row index outside [0, Len()).
	ErrOutOfRange = errors.New("table: row index out of range")

	// ErrNilTable signals a nil *Table argument.
	ErrNilTable = errors.New("table: nil table")
)

// tableErrorf wraps err with an operation tag and an optional subject (field
// or parameter name).
func tableErrorf(op, subject string, err error) error {
	if subject == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s(%q): %w", op, subject, err)
}

// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
)

const (
	opParam           = "Param"
	opScalar          = "Scalar"
	opSetParam        = "SetParam"
	opImageSize       = "ImageSize"
	opPixelsPerDegree = "PixelsPerDegree"
)

// Param returns a copy of the named parameter vector or ErrParamNotFound.
func (t *Table) Param(name string) ([]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.params[name]
	if !ok {
		return nil, tableErrorf(opParam, name, ErrParamNotFound)
	}

	return append([]float64(nil), v...), nil
}

// Scalar returns the single value of a length-1 parameter.
// Errors: ErrParamNotFound, or ErrShape when the vector has another length.
func (t *Table) Scalar(name string) (float64, error) {
	v, err := t.Param(name)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, fmt.Errorf("%s(%q): %d values: %w", opScalar, name, len(v), ErrShape)
	}

	return v[0], nil
}

// SetParam stores a copy of values under name, replacing any previous value.
// Errors: ErrInvalidValue for an empty name or no values.
func (t *Table) SetParam(name string, values ...float64) error {
	if name == "" || len(values) == 0 {
		return tableErrorf(opSetParam, name, ErrInvalidValue)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Always store a fresh slice: snapshots share the old one read-only.
	t.params[name] = append([]float64(nil), values...)

	return nil
}

// ParamNames returns the parameter names in ascending order.
func (t *Table) ParamNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedKeys(t.params)
}

// Params returns a deep copy of every parameter.
func (t *Table) Params() map[string][]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return copyParams(t.params)
}

// ImageSize returns image_size as (height, width).
// Errors: ErrParamNotFound; ErrShape when the vector is not [height, width].
// Positivity is checked by consumers (density), not here.
func (t *Table) ImageSize() (height, width float64, err error) {
	v, err := t.Param(ParamImageSize)
	if err != nil {
		return 0, 0, err
	}
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("%s: %d values, want [height, width]: %w", opImageSize, len(v), ErrShape)
	}

	return v[0], v[1], nil
}

// PixelsPerDegree returns the pixels_per_degree scalar.
// Errors: ErrParamNotFound, ErrShape, or ErrInvalidValue when not a positive
// finite number.
func (t *Table) PixelsPerDegree() (float64, error) {
	ppd, err := t.Scalar(ParamPixelsPerDegree)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(ppd) || math.IsInf(ppd, 0) || ppd <= 0 {
		return 0, fmt.Errorf("%s: %g: %w", opPixelsPerDegree, ppd, ErrInvalidValue)
	}

	return ppd, nil
}

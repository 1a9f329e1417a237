// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-grid reductions and scaling used by density normalization.
//   - Delegate the tight loops to gonum's floats package over the flat buffer.
//
// Determinism:
//   - floats.Sum / floats.MaxIdx traverse the buffer in row-major order, so
//     ArgMax reports the first maximum in that order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opScale = "Scale"
)

// Sum returns the total mass of the grid (Σ_ij m[i,j]).
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	return floats.Sum(m.data)
}

// Max returns the largest element.
// Complexity: O(r*c).
func (m *Dense) Max() float64 {
	return floats.Max(m.data)
}

// ArgMax returns the (row, col) of the first largest element in row-major order.
// Complexity: O(r*c).
func (m *Dense) ArgMax() (row, col int) {
	k := floats.MaxIdx(m.data)

	return k / m.c, k % m.c
}

// Scale multiplies every element by alpha in place.
// Errors:
//   - ErrNaNInf when alpha is not finite; the grid is left unchanged.
func (m *Dense) Scale(alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return matrixErrorf(opScale, ErrNaNInf)
	}
	floats.Scale(alpha, m.data)

	return nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Separable 2D convolution with zero padding ("constant" border mode):
//     values outside the grid are treated as 0, so mass near the border is
//     truncated rather than wrapped or reflected.
//
// Algorithm:
//   - Pass 1 convolves every row with kCols (horizontal).
//   - Pass 2 convolves every column of the intermediate with kRows (vertical).
//   - Rows that are entirely zero are skipped in pass 1; a sparse impulse grid
//     therefore costs O(nonzeroRows*c*kc + r*c*kr).
//
// Kernels must have odd length so their centre aligns with a cell.

package matrix

import (
	"math"
)

const opConvolve = "ConvolveSeparable"

// validateKernel checks a 1D kernel is non-empty, odd-length and finite.
func validateKernel(k []float64) error {
	if len(k) == 0 || len(k)%2 == 0 {
		return ErrBadKernel
	}
	for _, w := range k {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return ErrBadKernel
		}
	}

	return nil
}

// ConvolveSeparable returns a new grid holding m convolved with the outer
// product kRows ⊗ kCols, using zero padding at the borders.
// MAIN DESCRIPTION:
//   - out[i,j] = Σ_a Σ_b kRows[a] * kCols[b] * m[i-a+hr, j-b+hc], with
//     out-of-grid terms contributing 0.
//
// Inputs:
//   - m: source grid (not modified).
//   - kRows: vertical kernel (odd length).
//   - kCols: horizontal kernel (odd length).
//
// Errors:
//   - ErrNilMatrix when m is nil; ErrBadKernel for an invalid kernel.
//
// Complexity:
//   - Time O(r*c*(len(kRows)+len(kCols))), Space O(r*c).
func ConvolveSeparable(m *Dense, kRows, kCols []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opConvolve, ErrNilMatrix)
	}
	if err := validateKernel(kRows); err != nil {
		return nil, matrixErrorf(opConvolve, err)
	}
	if err := validateKernel(kCols); err != nil {
		return nil, matrixErrorf(opConvolve, err)
	}

	r, c := m.r, m.c
	hr, hc := len(kRows)/2, len(kCols)/2
	tmp := make([]float64, r*c)
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	// Pass 1: horizontal. Scatter each nonzero source value into its row window.
	var i, j, b, lo, hi, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = m.data[base+j]
			if v == 0 {
				continue
			}
			// Output columns touched by source column j: j-hc .. j+hc, clipped.
			lo, hi = j-hc, j+hc
			if lo < 0 {
				lo = 0
			}
			if hi > c-1 {
				hi = c - 1
			}
			for b = lo; b <= hi; b++ {
				tmp[base+b] += v * kCols[b-j+hc]
			}
		}
	}

	// Pass 2: vertical. Same scatter along columns of tmp.
	var a int
	for i = 0; i < r; i++ {
		base = i * c
		lo, hi = i-hr, i+hr
		if lo < 0 {
			lo = 0
		}
		if hi > r-1 {
			hi = r - 1
		}
		for j = 0; j < c; j++ {
			v = tmp[base+j]
			if v == 0 {
				continue
			}
			for a = lo; a <= hi; a++ {
				out.data[a*c+j] += v * kRows[a-i+hr]
			}
		}
	}

	return out, nil
}

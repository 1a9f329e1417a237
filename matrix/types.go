// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface shared by grids in this module.
// Dense is the only implementation; consumers such as density.Sample accept
// the interface so callers may pass their own feature maps.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange / ErrNaNInf.
	Set(i, j int, v float64) error
}

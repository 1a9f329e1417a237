// SPDX-License-Identifier: MIT

// Dense: the grid behind every density map.
//
// Layout: one flat []float64, row-major, cell (row, col) at row*cols + col,
// so row 0 is the top image row and col 0 the left image column.
// Writes (Set, AddAt) refuse NaN/Inf; accessors report bad indices as
// ErrOutOfRange instead of panicking.
//
// Cost: NewDense O(r*c); At/Set/AddAt O(1); Do O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxAddAt = "AddAt" // method tag used in error wrappers
)

// String layout.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the method and cell; the sentinel stays matchable.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 grid with at least one row and one column.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a rows×cols grid of zeros, or ErrInvalidDimensions when
// either extent is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds an r×c grid from a row-major slice (copied).
// Returns ErrInvalidDimensions for non-positive shapes or len(data) != rows*cols,
// and ErrNaNInf when data holds non-finite values.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows is the grid height in cells.
func (m *Dense) Rows() int { return m.r }

// Cols is the grid width in cells.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to a buffer offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads cell (row, col); ErrOutOfRange outside the grid.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v into cell (row, col).
// Errors: ErrOutOfRange, or ErrNaNInf when v is not finite.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AddAt increments the cell (row, col) by delta.
// Used to accumulate impulses when binning repeated fixations into one cell.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when delta or the sum is non-finite.
func (m *Dense) AddAt(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	nv := m.data[off] + delta
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return denseErrorf(ctxAddAt, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// String renders one bracketed line per row, e.g. "[0, 1.5]\n".
// Meant for small grids in tests and examples.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}


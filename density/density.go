// SPDX-License-Identifier: MIT

package density

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/internal/logx"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/table"
)

const (
	opCompute   = "Compute"
	opFromTable = "FromTable"
)

// Point is a fixation location in image pixels.
type Point struct {
	X, Y float64
}

// Size is an image size in pixels.
type Size struct {
	Height, Width float64
}

// Map is a fixation density map. The embedded Dense holds the grid; the
// remaining fields record how it was produced.
type Map struct {
	*matrix.Dense

	// ScaleFactor applied to coordinates and grid.
	ScaleFactor float64
	// Sigma is the kernel standard deviation in grid cells.
	Sigma float64
	// Normalization applied after smoothing.
	Normalization Normalization
	// Points is the number of input fixations.
	Points int
	// Dropped counts fixations outside the image (or NaN).
	Dropped int
}

// Binned returns the number of fixations that landed on the grid.
func (m *Map) Binned() int { return m.Points - m.Dropped }

// Compute builds a density map for points on an image of the given size.
// MAIN DESCRIPTION:
//   - Stage 1: validate scale, image size and bandwidth.
//   - Stage 2: bin every in-image point into its grid cell as a unit impulse.
//   - Stage 3: convolve with the separable Gaussian (zero padding).
//   - Stage 4: apply the requested normalization.
//
// Behavior highlights:
//   - Zero points (or all dropped) yield an all-zero grid of the right shape.
//   - The input slice is only read.
//
// Errors:
//   - ErrInvalidScale, ErrImageSize, ErrInvalidBandwidth, ErrInvalidTruncate.
//
// Complexity:
//   - Time O(N + R·C·k), Space O(R·C) with k the kernel width.
func Compute(points []Point, size Size, opts Options) (*Map, error) {
	// Stage 1 (Validate).
	s := opts.ScaleFactor
	if err := validateScale(s); err != nil {
		return nil, fmt.Errorf("%s: scale %g: %w", opCompute, s, err)
	}
	rows, cols, err := gridShape(size, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	sigmaPx, err := opts.sigmaPixels()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if !positiveFinite(opts.Truncate) {
		return nil, fmt.Errorf("%s: truncate %g: %w", opCompute, opts.Truncate, ErrInvalidTruncate)
	}
	if opts.Normalization > CountMass {
		return nil, fmt.Errorf("%s: normalization %s: %w", opCompute, opts.Normalization, table.ErrInvalidValue)
	}

	impulses, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	// Stage 2 (Bin). Points outside [0,H)×[0,W) are dropped; the clamp only
	// matters when rounding shrank the grid below ⌈H·s⌉.
	dropped := 0
	var row, col int
	for _, p := range points {
		if !(p.X >= 0 && p.X < size.Width && p.Y >= 0 && p.Y < size.Height) {
			dropped++ // also catches NaN
			continue
		}
		row = min(int(math.Floor(p.Y*s)), rows-1)
		col = min(int(math.Floor(p.X*s)), cols-1)
		if err = impulses.AddAt(row, col, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
	}

	// Stage 3 (Smooth).
	sigma := sigmaPx * s
	kRows := gaussianKernel(sigma, opts.Truncate, rows-1)
	kCols := gaussianKernel(sigma, opts.Truncate, cols-1)
	grid, err := matrix.ConvolveSeparable(impulses, kRows, kCols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	m := &Map{
		Dense:         grid,
		ScaleFactor:   s,
		Sigma:         sigma,
		Normalization: opts.Normalization,
		Points:        len(points),
		Dropped:       dropped,
	}

	// Stage 4 (Normalize).
	if err = m.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	logx.L().Debug("density map computed",
		"rows", rows, "cols", cols, "sigma", sigma,
		"kernel_rows", len(kRows), "kernel_cols", len(kCols),
		"points", len(points), "dropped", dropped)

	return m, nil
}

// FromTable computes the density map of t's fixations.
// MAIN DESCRIPTION:
//   - Reads fields "x" and "y" and parameter "image_size" = [H, W].
//   - Fills opts.PixelsPerDegree from "pixels_per_degree" when neither
//     opts.Sigma nor opts.PixelsPerDegree is set.
//
// Errors:
//   - Missing "x"/"y": matches both table.ErrShape and table.ErrFieldNotFound.
//   - Missing "image_size"/"pixels_per_degree": table.ErrParamNotFound.
//   - Malformed "image_size": table.ErrShape.
//   - Everything Compute returns.
func FromTable(t *table.Table, opts Options) (*Map, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opFromTable, table.ErrNilTable)
	}
	points, err := Points(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromTable, err)
	}
	h, w, err := t.ImageSize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromTable, err)
	}
	if opts.Sigma == 0 && opts.PixelsPerDegree == 0 {
		if opts.PixelsPerDegree, err = t.PixelsPerDegree(); err != nil {
			return nil, fmt.Errorf("%s: %w", opFromTable, err)
		}
	}

	return Compute(points, Size{Height: h, Width: w}, opts)
}

// Points extracts the (x, y) pairs of t in row order.
// A missing coordinate field matches both table.ErrShape and
// table.ErrFieldNotFound.
func Points(t *table.Table) ([]Point, error) {
	xf, errX := t.Field(table.FieldX)
	yf, errY := t.Field(table.FieldY)
	if err := errors.Join(errX, errY); err != nil {
		return nil, fmt.Errorf("coordinates required: %w: %w", table.ErrShape, err)
	}

	out := make([]Point, xf.Len())
	for k := range out {
		out[k] = Point{X: xf.Float64(k), Y: yf.Float64(k)}
	}

	return out, nil
}

// gridShape returns (round(H·s), round(W·s)) or ErrImageSize.
func gridShape(size Size, s float64) (rows, cols int, err error) {
	if !positiveFinite(size.Height) || !positiveFinite(size.Width) {
		return 0, 0, fmt.Errorf("%gx%g: %w", size.Height, size.Width, ErrImageSize)
	}
	rows = int(math.Round(size.Height * s))
	cols = int(math.Round(size.Width * s))
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%gx%g at scale %g is an empty grid: %w", size.Height, size.Width, s, ErrImageSize)
	}

	return rows, cols, nil
}

// normalize rescales the grid per m.Normalization. All-zero grids are left
// as they are.
func (m *Map) normalize() error {
	if m.Normalization == Raw {
		return nil
	}
	total := m.Sum()
	if total <= 0 {
		return nil
	}
	if m.Normalization == CountMass {
		return m.Scale(float64(m.Binned()) / total)
	}

	return m.Scale(1 / total)
}

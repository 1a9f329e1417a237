// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/table"
)

const opSample = "Sample"

// Sample reads grid at every fixation of t and stores the values as a new
// float field called name (replacing an existing field of that name).
// MAIN DESCRIPTION:
//   - Fixation (x, y) reads grid cell (⌊y·scale⌋, ⌊x·scale⌋), so a map built
//     with the same scale factor is read back at the cell each fixation was
//     binned into.
//   - Fixations off the grid, or with NaN coordinates, get NaN.
//
// Errors:
//   - table.ErrNilTable, matrix.ErrNilMatrix, ErrInvalidScale.
//   - Missing coordinates: table.ErrShape and table.ErrFieldNotFound.
//   - table.ErrInvalidValue for an empty name.
//
// Complexity:
//   - Time O(N), Space O(N).
func Sample(t *table.Table, name string, grid matrix.Matrix, scale float64) error {
	if t == nil {
		return fmt.Errorf("%s: %w", opSample, table.ErrNilTable)
	}
	if grid == nil {
		return fmt.Errorf("%s: %w", opSample, matrix.ErrNilMatrix)
	}
	if err := validateScale(scale); err != nil {
		return fmt.Errorf("%s: scale %g: %w", opSample, scale, err)
	}
	points, err := Points(t)
	if err != nil {
		return fmt.Errorf("%s: %w", opSample, err)
	}

	rows, cols := grid.Rows(), grid.Cols()
	values := make([]float64, len(points))
	var row, col int
	for k, p := range points {
		values[k] = math.NaN()
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		row = int(math.Floor(p.Y * scale))
		col = int(math.Floor(p.X * scale))
		if row < 0 || row >= rows || col < 0 || col >= cols {
			continue
		}
		if values[k], err = grid.At(row, col); err != nil {
			return fmt.Errorf("%s: %w", opSample, err)
		}
	}

	if err = t.AddField(name, table.Floats(values...)); err != nil {
		return fmt.Errorf("%s: %w", opSample, err)
	}

	return nil
}

package density_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixmat/density"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/table"
	"github.com/stretchr/testify/require"
)

// TestSampleReadsBinnedCell verifies each fixation reads the cell it was
// binned into and off-grid fixations read NaN.
func TestSampleReadsBinnedCell(t *testing.T) {
	tb, err := table.New(map[string]table.Field{
		"x": table.Floats(1, 3, 9, -1, math.NaN()),
		"y": table.Floats(0, 2, 3, 0, 1),
	}, nil)
	require.NoError(t, err)
	grid, err := matrix.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)

	require.NoError(t, density.Sample(tb, "salience", grid, 0.5))
	got, err := tb.Floats("salience")
	require.NoError(t, err)
	require.Equal(t, 1.0, got[0])
	require.Equal(t, 5.0, got[1])
	require.True(t, math.IsNaN(got[2]), "x·s = 4.5 is past the last column")
	require.True(t, math.IsNaN(got[3]))
	require.True(t, math.IsNaN(got[4]))
}

// TestSampleDensityRoundTrip samples a density map at its own fixations.
func TestSampleDensityRoundTrip(t *testing.T) {
	tb := fixations(t, []float64{100, 300}, []float64{200, 400})
	m, err := density.FromTable(tb, density.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, density.Sample(tb, "density", m, m.ScaleFactor))

	got, err := tb.Floats("density")
	require.NoError(t, err)
	require.InDelta(t, at(t, m, 200, 100), got[0], 1e-12)
	require.InDelta(t, at(t, m, 400, 300), got[1], 1e-12)
}

// TestSampleErrors checks argument validation.
func TestSampleErrors(t *testing.T) {
	grid, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	tb := fixations(t, []float64{1}, []float64{1})

	require.ErrorIs(t, density.Sample(nil, "v", grid, 1), table.ErrNilTable)
	require.ErrorIs(t, density.Sample(tb, "v", nil, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, density.Sample(tb, "v", grid, 0), density.ErrInvalidScale)
	require.ErrorIs(t, density.Sample(tb, "", grid, 1), table.ErrInvalidValue)

	noX, err := table.New(map[string]table.Field{"y": table.Floats(1)}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, density.Sample(noX, "v", grid, 1), table.ErrFieldNotFound)
}

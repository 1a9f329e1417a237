package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestConvolveBadKernel rejects even-length and empty kernels.
func TestConvolveBadKernel(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	_, err = matrix.ConvolveSeparable(m, []float64{0.5, 0.5}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadKernel)

	_, err = matrix.ConvolveSeparable(m, []float64{1}, nil)
	require.ErrorIs(t, err, matrix.ErrBadKernel)

	_, err = matrix.ConvolveSeparable(nil, []float64{1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestConvolveIdentity verifies a [1] kernel returns an equal copy.
func TestConvolveIdentity(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	out, err := matrix.ConvolveSeparable(m, []float64{1}, []float64{1})
	require.NoError(t, err)
	require.Equal(t, m.String(), out.String())
}

// TestConvolveImpulseInterior spreads a centered impulse into the outer product.
func TestConvolveImpulseInterior(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 4))

	k := []float64{0.25, 0.5, 0.25}
	out, err := matrix.ConvolveSeparable(m, k, k)
	require.NoError(t, err)

	want := []float64{
		0.25, 0.5, 0.25,
		0.5, 1, 0.5,
		0.25, 0.5, 0.25,
	}
	for i := 0; i < 3; i++ {
		require.InDeltaSlice(t, want[i*3:(i+1)*3], rowOf(t, out, i), 1e-12)
	}
	require.InDelta(t, 4.0, out.Sum(), 1e-12, "interior impulse keeps its mass")
}

// TestConvolveZeroPaddingTruncates checks mass is lost at the border, not wrapped.
func TestConvolveZeroPaddingTruncates(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	k := []float64{0.25, 0.5, 0.25}
	out, err := matrix.ConvolveSeparable(m, k, k)
	require.NoError(t, err)

	require.InDelta(t, 0.75*0.75, out.Sum(), 1e-12)
	far, _ := out.At(2, 2)
	require.Equal(t, 0.0, far, "no wrap-around to the opposite corner")
	corner, _ := out.At(0, 0)
	require.InDelta(t, 0.25, corner, 1e-12)
}

// TestConvolveLeavesSourceUntouched verifies the input grid is not modified.
func TestConvolveLeavesSourceUntouched(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 3, []float64{0, 1, 0})
	require.NoError(t, err)

	_, err = matrix.ConvolveSeparable(m, []float64{1}, []float64{0.25, 0.5, 0.25})
	require.NoError(t, err)
	require.Equal(t, "[0, 1, 0]\n", m.String())
}

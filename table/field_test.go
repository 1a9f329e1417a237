package table_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixmat/table"
	"github.com/stretchr/testify/require"
)

// TestFieldKinds covers constructors, Len, conversions and kind-specific access.
func TestFieldKinds(t *testing.T) {
	f := table.Floats(1.5, 2.5)
	require.Equal(t, table.KindFloat, f.Kind())
	require.Equal(t, 2, f.Len())
	_, ok := f.Int64s()
	require.False(t, ok)

	i := table.Ints(-1, 7)
	require.Equal(t, []float64{-1, 7}, i.Float64s())
	vs, ok := i.Int64s()
	require.True(t, ok)
	require.Equal(t, []int64{-1, 7}, vs)

	u := table.Uints(math.MaxUint64)
	us, ok := u.Uint64s()
	require.True(t, ok)
	require.Equal(t, []uint64{math.MaxUint64}, us, "uint64 values survive without float rounding")

	var zero table.Field
	require.Equal(t, table.KindInvalid, zero.Kind())
	require.Equal(t, 0, zero.Len())
}

// TestFieldAccessorsCopy verifies returned slices do not alias the field.
func TestFieldAccessorsCopy(t *testing.T) {
	f := table.Ints(1, 2)
	vs, _ := f.Int64s()
	vs[0] = 100
	again, _ := f.Int64s()
	require.Equal(t, []int64{1, 2}, again)
}

// TestValueCanonicalization verifies NaN and signed zero collapse for grouping.
func TestValueCanonicalization(t *testing.T) {
	require.Equal(t, table.FloatValue(0), table.FloatValue(math.Copysign(0, -1)))
	require.Equal(t, table.FloatValue(math.NaN()), table.FloatValue(-math.NaN()))
	require.NotEqual(t, table.FloatValue(1), table.IntValue(1), "kind is part of identity")
}

// TestValueOrdering covers Less across kinds and NaN placement.
func TestValueOrdering(t *testing.T) {
	require.True(t, table.IntValue(-5).Less(table.IntValue(3)))
	require.True(t, table.UintValue(1).Less(table.UintValue(2)))
	require.True(t, table.FloatValue(1).Less(table.FloatValue(math.NaN())))
	require.False(t, table.FloatValue(math.NaN()).Less(table.FloatValue(1)))
	require.Equal(t, "-5", table.IntValue(-5).String())
	require.Equal(t, "2.5", table.FloatValue(2.5).String())
}

// TestParseKind covers the name round trip and the unknown-name error.
func TestParseKind(t *testing.T) {
	for _, k := range []table.Kind{table.KindFloat, table.KindInt, table.KindUint} {
		got, err := table.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := table.ParseKind("complex")
	require.ErrorIs(t, err, table.ErrInvalidValue)
}

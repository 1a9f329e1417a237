package table_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixmat/table"
	"github.com/stretchr/testify/require"
)

// TestRecordRoundTrip verifies Record/FromRecord is lossless for every kind.
func TestRecordRoundTrip(t *testing.T) {
	tb, err := table.New(map[string]table.Field{
		"x":       table.Floats(0.1, math.NaN()),
		"subject": table.Ints(math.MinInt64, 3),
		"hash":    table.Uints(math.MaxUint64, 0),
	}, map[string][]float64{"image_size": {768, 1024}})
	require.NoError(t, err)

	rec := tb.Record()
	require.Equal(t, "uint", rec.Fields["hash"].Kind)

	back, err := table.FromRecord(rec)
	require.NoError(t, err)
	require.True(t, tb.Equal(back))
}

// TestRecordIsDetached verifies mutating the record leaves the table intact.
func TestRecordIsDetached(t *testing.T) {
	tb := newXY(t)
	rec := tb.Record()
	rec.Fields["x"].Floats[0] = 42
	rec.Params["image_size"][0] = 1

	x, _ := tb.Floats("x")
	require.Equal(t, 1.0, x[0])
	h, _, _ := tb.ImageSize()
	require.Equal(t, 10.0, h)
}

// TestFromRecordErrors covers unknown kinds and mismatched value slices.
func TestFromRecordErrors(t *testing.T) {
	_, err := table.FromRecord(table.Record{Fields: map[string]table.FieldRecord{
		"x": {Kind: "string"},
	}})
	require.ErrorIs(t, err, table.ErrInvalidValue)

	_, err = table.FromRecord(table.Record{Fields: map[string]table.FieldRecord{
		"x": {Kind: "int", Floats: []float64{1}},
	}})
	require.ErrorIs(t, err, table.ErrInvalidValue)

	_, err = table.FromRecord(table.Record{Fields: map[string]table.FieldRecord{
		"x": {Kind: "float", Floats: []float64{1, 2}},
		"y": {Kind: "float", Floats: []float64{1}},
	}})
	require.ErrorIs(t, err, table.ErrShape)
}

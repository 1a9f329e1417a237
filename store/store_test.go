package store_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/fixmat/store"
	"github.com/katalvlaran/fixmat/table"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixmat.db")
	s, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func recording(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(map[string]table.Field{
		"x":       table.Floats(1.25, math.NaN(), math.Inf(-1), math.Copysign(0, -1)),
		"y":       table.Floats(10, 20, 30, 40),
		"subject": table.Ints(math.MinInt64, -7, 0, math.MaxInt64),
		"hash":    table.Uints(0, 1<<63, math.MaxUint64, 3),
		"empty":   table.Ints(0, 0, 0, 0),
	}, map[string][]float64{
		"image_size":        {768, 1024},
		"pixels_per_degree": {45},
		"calibration":       {math.NaN(), math.Inf(1), -1.5},
	})
	require.NoError(t, err)

	return tb
}

// TestSaveLoadLossless verifies every kind and non-finite value survives.
func TestSaveLoadLossless(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	in := recording(t)

	require.NoError(t, s.Save(ctx, "session-1", in))
	out, err := s.Load(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, in.Equal(out), "got %v", out)

	x, err := out.Floats("x")
	require.NoError(t, err)
	require.True(t, math.Signbit(x[3]), "-0 keeps its sign bit")
	cal, err := out.Param("calibration")
	require.NoError(t, err)
	require.True(t, math.IsNaN(cal[0]))
	require.Equal(t, -1.5, cal[2])
}

// TestSaveReplaces verifies a second Save under the same name replaces the
// first table completely.
func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	require.NoError(t, s.Save(ctx, "a", recording(t)))

	small, err := table.New(map[string]table.Field{"x": table.Floats(5)}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "a", small))

	out, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, small.Equal(out))
	require.Empty(t, out.ParamNames())
}

// TestEmptyTable verifies a zero-row table keeps its schema.
func TestEmptyTable(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	in, err := table.New(map[string]table.Field{"x": table.Floats(), "c": table.Uints()}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "empty", in))
	out, err := s.Load(ctx, "empty")
	require.NoError(t, err)
	require.True(t, in.Equal(out))
}

// TestListDelete covers listing order, row counts and deletion.
func TestListDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	before := time.Now().Add(-time.Minute)
	require.NoError(t, s.Save(ctx, "b", recording(t)))
	require.NoError(t, s.Save(ctx, "a", recording(t)))

	infos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	require.Equal(t, "a", infos[0].Name)
	require.Equal(t, "b", infos[1].Name)
	require.Equal(t, 4, infos[0].Rows)
	require.True(t, infos[0].SavedAt.After(before))

	require.NoError(t, s.Delete(ctx, "a"))
	require.ErrorIs(t, s.Delete(ctx, "a"), store.ErrNotFound)
	_, err = s.Load(ctx, "a")
	require.ErrorIs(t, err, store.ErrNotFound)

	infos, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
}

// TestReopen verifies data persists across Open calls and migrations are
// not re-applied.
func TestReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)
	in := recording(t)
	require.NoError(t, s.Save(ctx, "kept", in))
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Close(), store.ErrClosed)
	require.ErrorIs(t, s.Save(ctx, "x", in), store.ErrClosed)

	again, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer again.Close()
	out, err := again.Load(ctx, "kept")
	require.NoError(t, err)
	require.True(t, in.Equal(out))
}

// TestSaveErrors checks argument validation.
func TestSaveErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	require.ErrorIs(t, s.Save(ctx, "n", nil), table.ErrNilTable)
	require.ErrorIs(t, s.Save(ctx, "", recording(t)), table.ErrInvalidValue)
}

// TestInMemory verifies the ":memory:" path.
func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Save(ctx, "m", recording(t)))
	_, err = s.Load(ctx, "m")
	require.NoError(t, err)
}

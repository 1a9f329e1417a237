package density_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/density"
	"github.com/katalvlaran/fixmat/table"
	"github.com/katalvlaran/fixmat/view"
	"github.com/stretchr/testify/require"
)

func grouped(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(map[string]table.Field{
		"x":          table.Floats(5, 10, 15, 20, 25, 30, 35),
		"y":          table.Floats(5, 5, 10, 10, 20, 20, 30),
		"filenumber": table.Ints(3, 1, 3, 2, 1, 3, 2),
	}, map[string][]float64{"image_size": {40, 40}, "pixels_per_degree": {2}})
	require.NoError(t, err)

	return tb
}

// TestFromGroupsMatchesSequential verifies the worker pool returns, in group
// order, the same maps FromTable computes one by one.
func TestFromGroupsMatchesSequential(t *testing.T) {
	tb := grouped(t)
	for _, workers := range []int{0, 1, 2, 8} {
		seq, err := view.GroupBy(tb, "filenumber")
		require.NoError(t, err)
		got, err := density.FromGroups(seq, density.DefaultOptions(), workers)
		require.NoError(t, err)
		require.Len(t, got, 3)

		want, err := view.Groups(tb, "filenumber")
		require.NoError(t, err)
		for k, g := range want {
			require.Equal(t, g.Value, got[k].Value, "workers=%d", workers)
			m, err := density.FromTable(g.Table, density.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, m.String(), got[k].Map.String())
			require.Equal(t, g.Table.Len(), got[k].Map.Points)
		}
	}
}

// TestFromGroupsError verifies a failing computation surfaces its error kind.
func TestFromGroupsError(t *testing.T) {
	seq, err := view.GroupBy(grouped(t), "filenumber", view.WithSortedOrder())
	require.NoError(t, err)
	opts := density.DefaultOptions()
	opts.ScaleFactor = 2
	_, err = density.FromGroups(seq, opts, 4)
	require.ErrorIs(t, err, density.ErrInvalidScale)
	require.ErrorContains(t, err, "group 1")
}

// TestFromGroupsEmpty verifies a nil or empty sequence yields no maps.
func TestFromGroupsEmpty(t *testing.T) {
	got, err := density.FromGroups(nil, density.DefaultOptions(), 2)
	require.NoError(t, err)
	require.Empty(t, got)

	empty, err := table.New(map[string]table.Field{
		"x": table.Floats(), "y": table.Floats(), "filenumber": table.Ints(),
	}, map[string][]float64{"image_size": {4, 4}})
	require.NoError(t, err)
	seq, err := view.GroupBy(empty, "filenumber")
	require.NoError(t, err)
	got, err = density.FromGroups(seq, density.DefaultOptions(), 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

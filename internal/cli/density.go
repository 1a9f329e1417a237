// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixmat/codec"
	"github.com/katalvlaran/fixmat/density"
	"github.com/katalvlaran/fixmat/table"
	"github.com/katalvlaran/fixmat/view"
)

func (a *app) densityCommand() *cobra.Command {
	var (
		where []string
		sigma float64
		ppd   float64
		by    string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "density FILE",
		Short: "Compute a fixation density map",
		Long: `Compute the fixation density map of a table, optionally filtered with
--where FIELD=VALUE (repeatable, combined with AND) or split per group with
--by FIELD. With --out the grid is written as CSV; per-group grids get the
group value appended to the file name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			if t, err = applyWhere(t, where); err != nil {
				return err
			}
			opts, err := a.densityOptions(sigma, ppd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if by == "" {
				m, err := density.FromTable(t, opts)
				if err != nil {
					return err
				}
				printSummary(w, "", m)
				return writeGridFile(out, m.Dense)
			}

			seq, err := view.GroupBy(t, by)
			if err != nil {
				return err
			}
			maps, err := density.FromGroups(seq, opts, a.v.GetInt(keyWorkers))
			if err != nil {
				return err
			}
			for _, g := range maps {
				printSummary(w, fmt.Sprintf("%s=%s ", by, g.Value), g.Map)
				if err = writeGridFile(groupPath(out, g.Value), g.Map.Dense); err != nil {
					return err
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&where, "where", nil, "keep rows with FIELD=VALUE (repeatable)")
	f.Float64("scale", 1, "scale factor in (0, 1]")
	f.Float64("degrees", 1, "kernel standard deviation in degrees of visual angle")
	f.Float64("truncate", 4, "kernel radius in standard deviations")
	f.String("normalize", "raw", "normalization: raw, unit or count")
	f.Int("workers", 0, "goroutines for --by (0 = GOMAXPROCS)")
	f.Float64Var(&sigma, "sigma", 0, "kernel standard deviation in pixels (overrides --degrees)")
	f.Float64Var(&ppd, "ppd", 0, "pixels per degree (default: the table's pixels_per_degree)")
	f.StringVar(&by, "by", "", "compute one map per value of this field")
	f.StringVarP(&out, "out", "o", "", "write the grid as CSV to this path")

	for key, flag := range map[string]string{
		keyScale:     "scale",
		keyDegrees:   "degrees",
		keyTruncate:  "truncate",
		keyNormalize: "normalize",
		keyWorkers:   "workers",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// densityOptions resolves density.Options from flags, config and env.
func (a *app) densityOptions(sigma, ppd float64) (density.Options, error) {
	norm, err := density.ParseNormalization(a.v.GetString(keyNormalize))
	if err != nil {
		return density.Options{}, err
	}
	opts := density.DefaultOptions()
	opts.ScaleFactor = a.v.GetFloat64(keyScale)
	opts.Degrees = a.v.GetFloat64(keyDegrees)
	opts.Truncate = a.v.GetFloat64(keyTruncate)
	opts.Normalization = norm
	opts.Sigma = sigma
	opts.PixelsPerDegree = ppd

	return opts, nil
}

// applyWhere filters t by every FIELD=VALUE expression.
func applyWhere(t *table.Table, exprs []string) (*table.Table, error) {
	if len(exprs) == 0 {
		return t, nil
	}
	masks := make([][]bool, 0, len(exprs))
	for _, expr := range exprs {
		field, raw, err := parseWhere(expr)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("--where %q: %w", expr, err)
		}
		mask, err := view.Equal(t, field, v)
		if err != nil {
			return nil, err
		}
		masks = append(masks, mask)
	}
	mask, err := view.And(masks...)
	if err != nil {
		return nil, err
	}

	return view.Filter(t, mask)
}

func printSummary(w io.Writer, prefix string, m *density.Map) {
	rows, cols := m.Shape()
	pr, pc := m.ArgMax()
	fmt.Fprintf(w, "%sgrid %dx%d sigma=%g peak=%g at (%d,%d) mass=%g points=%d dropped=%d\n",
		prefix, rows, cols, m.Sigma, m.Max(), pr, pc, m.Sum(), m.Points, m.Dropped)
}

// groupPath inserts "_<value>" before the extension of path.
func groupPath(path string, v table.Value) string {
	if path == "" {
		return ""
	}
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "_" + v.String() + ext
}

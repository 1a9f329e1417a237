// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixmat/codec"
	"github.com/katalvlaran/fixmat/view"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the fields and parameters of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows: %d\n", t.Len())
			for _, name := range t.FieldNames() {
				f, _ := t.Field(name)
				fmt.Fprintf(out, "field %s (%s)\n", name, f.Kind())
			}
			params := t.Params()
			for _, name := range t.ParamNames() {
				fmt.Fprintf(out, "param %s = %v\n", name, params[name])
			}

			return nil
		},
	}
}

func (a *app) groupsCommand() *cobra.Command {
	var by string
	var sorted bool

	cmd := &cobra.Command{
		Use:   "groups FILE",
		Short: "List the distinct values of a field and their row counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			var opts []view.GroupOption
			if sorted {
				opts = append(opts, view.WithSortedOrder())
			}
			seq, err := view.GroupBy(t, by, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for sub, v := range seq {
				fmt.Fprintf(out, "%s=%s\t%d\n", by, v, sub.Len())
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "category", "field to group by")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "list groups in ascending value order")

	return cmd
}

// parseWhere turns "field=value" into its parts.
func parseWhere(expr string) (field string, value string, err error) {
	field, value, ok := strings.Cut(expr, "=")
	if !ok || field == "" || value == "" {
		return "", "", fmt.Errorf("--where %q: want FIELD=VALUE", expr)
	}

	return field, value, nil
}

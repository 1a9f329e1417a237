// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixmat/codec"
	"github.com/katalvlaran/fixmat/store"
)

// storeFlags adds --db and, when name is non-nil, a required --name.
func (a *app) storeFlags(cmd *cobra.Command, name *string) {
	cmd.Flags().String("db", "", "SQLite database path (default: store.path, fixmat.db)")
	if name != nil {
		cmd.Flags().StringVar(name, "name", "", "table name in the database")
		_ = cmd.MarkFlagRequired("name")
	}
}

// openStore opens --db when given, else the configured store.path. The flag
// is read directly because several commands define it and a viper key holds
// only one flag binding.
func (a *app) openStore(cmd *cobra.Command) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = a.v.GetString(keyStorePath)
	}

	return store.Open(cmd.Context(), path)
}

func (a *app) exportCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Save a table file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			s, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err = s.Save(cmd.Context(), name, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d rows)\n", name, t.Len())

			return nil
		},
	}
	a.storeFlags(cmd, &name)

	return cmd
}

func (a *app) importCommand() *cobra.Command {
	var name, out string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a table from the database to a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			t, err := s.Load(cmd.Context(), name)
			if err != nil {
				return err
			}
			if err = codec.Save(out, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", out, t.Len())

			return nil
		},
	}
	a.storeFlags(cmd, &name)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *app) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tables stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			infos, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", info.Name, info.Rows, info.SavedAt.Format(time.RFC3339))
			}

			return nil
		},
	}
	a.storeFlags(cmd, nil)

	return cmd
}

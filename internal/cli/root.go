// SPDX-License-Identifier: MIT

// Package cli implements the fixmat command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fixmat"
)

// Version of the fixmat tool.
const Version = "0.3.0"

// Configuration keys. Each can be set in the config file, through a FIXMAT_
// environment variable (dots become underscores), or by the matching flag.
const (
	keyScale     = "density.scale"
	keyDegrees   = "density.degrees"
	keyTruncate  = "density.truncate"
	keyNormalize = "density.normalize"
	keyWorkers   = "density.workers"
	keyStorePath = "store.path"
)

// app carries the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// NewRootCommand builds the fixmat command tree with its own configuration
// instance, so several trees (tests) do not share state.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "fixmat",
		Short: "Inspect fixation tables and compute fixation density maps",
		Long: `fixmat works with fixation tables stored as JSON or YAML:
  fixmat info data.json
  fixmat groups data.json --by filenumber
  fixmat density data.json --where filenumber=3 --out map.csv
  fixmat export data.json --db fixmat.db --name session-1
  `,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.initLogger(cmd.ErrOrStderr())
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.fixmat/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	_ = a.v.BindEnv("config", "FIXMATCONFIG")

	root.AddCommand(
		a.infoCommand(),
		a.groupsCommand(),
		a.densityCommand(),
		a.exportCommand(),
		a.importCommand(),
		a.listCommand(),
		versionCommand(),
	)

	return root
}

// Execute runs the command tree on os.Args and exits non-zero on error.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// initLogger installs a text handler: debug with --verbose, warnings only
// otherwise.
func (a *app) initLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	fixmat.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// initConfig reads the config file and FIXMAT_* environment variables.
// A missing default config file is not an error; an explicit one is.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("FIXMAT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault(keyScale, 1.0)
	a.v.SetDefault(keyDegrees, 1.0)
	a.v.SetDefault(keyTruncate, 4.0)
	a.v.SetDefault(keyNormalize, "raw")
	a.v.SetDefault(keyWorkers, 0)
	a.v.SetDefault(keyStorePath, "fixmat.db")

	if a.cfgFile == "" {
		a.cfgFile = a.v.GetString("config")
	}
	explicit := a.cfgFile != ""
	if explicit {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("can not find home directory: %w", err)
		}
		a.v.AddConfigPath(filepath.Join(home, ".fixmat"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	err := a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		fixmat.Logger().Debug("using config file", "path", a.v.ConfigFileUsed())
	case !explicit && errors.As(err, &notFound):
		fixmat.Logger().Debug("no config file", "error", err)
	default:
		return fmt.Errorf("config can not be read: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densecalc/bridge"
	"github.com/katalvlaran/densecalc/config"
	"github.com/katalvlaran/densecalc/logging"
	"github.com/katalvlaran/densecalc/marshal"
)

// app carries what every subcommand needs once flags and env are resolved.
type app struct {
	bridge    *bridge.Bridge
	output    marshal.Format
	precision int
}

type rootFlags struct {
	output    string
	precision int
	logLevel  string
	logFormat string
}

// newRootCmd assembles the command tree. Defaults come from cfg; flags win.
func newRootCmd(cfg config.Config) *cobra.Command {
	flags := &rootFlags{}
	state := &app{}

	root := &cobra.Command{
		Use:   "densecalc",
		Short: "Dense matrix arithmetic: add, subtract, multiply, invert",
		Long: `densecalc performs dense matrix arithmetic on double-precision values.

Operands are inline literals ("1,2;3,4": rows split by ';', cells by ',')
or @path references to YAML/JSON documents:

  rows: 2
  cols: 2
  data:
    - [1, 2]
    - [3, 4]

Inversion supports 2x2 matrices only. Failures print their category
(shape_mismatch, not_square, singular, unsupported, invalid_input).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.output, "output", "o", cfg.Output, "result format: text, yaml or json")
	root.PersistentFlags().IntVarP(&flags.precision, "precision", "p", cfg.Precision, "fraction digits for text output")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", cfg.LogLevel, "diagnostic log level")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", cfg.LogFormat, "diagnostic log format: text or json")

	for _, spec := range binarySpecs {
		root.AddCommand(newBinaryCmd(state, spec))
	}
	root.AddCommand(newInverseCmd(state), newVersionCmd())

	return root
}

// setup validates flags and builds the logger and bridge.
func (a *app) setup(cmd *cobra.Command, f *rootFlags) error {
	f.logLevel = strings.ToLower(strings.TrimSpace(f.logLevel))
	f.logFormat = strings.ToLower(strings.TrimSpace(f.logFormat))
	out, err := marshal.ParseFormat(f.output)
	if err != nil {
		return err
	}
	probe := config.Config{LogLevel: f.logLevel, LogFormat: f.logFormat, Output: string(out), Precision: f.precision}
	if err = probe.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
	if err != nil {
		return err
	}

	a.bridge = bridge.New(bridge.WithLogger(logger))
	a.output = out
	a.precision = f.precision

	return nil
}

// Execute runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

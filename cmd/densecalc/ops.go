package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densecalc/bridge"
	"github.com/katalvlaran/densecalc/marshal"
	"github.com/katalvlaran/densecalc/matrix"
)

// binarySpec describes one two-operand subcommand.
type binarySpec struct {
	use     string
	aliases []string
	short   string
	call    func(b *bridge.Bridge, a []float64, da marshal.Dims, c []float64, dc marshal.Dims) bridge.Result
}

var binarySpecs = []binarySpec{
	{use: "add", aliases: []string{"plus"}, short: "Element-wise sum A + B", call: (*bridge.Bridge).Add},
	{use: "sub", aliases: []string{"subtract", "minus"}, short: "Element-wise difference A - B", call: (*bridge.Bridge).Subtract},
	{use: "mul", aliases: []string{"multiply", "times"}, short: "Matrix product A × B", call: (*bridge.Bridge).Multiply},
	{use: "div", aliases: []string{"divide"}, short: "A × B⁻¹ for a 2x2 B", call: (*bridge.Bridge).Divide},
}

// operationError reports a failed bridge call with its category.
type operationError struct {
	op   string
	kind bridge.Kind
	err  error
}

func (e *operationError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.op, e.kind, e.err)
}

func (e *operationError) Unwrap() error { return e.err }

func newBinaryCmd(state *app, spec binarySpec) *cobra.Command {
	var lhs, rhs string
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadOperand(lhs)
			if err != nil {
				return fmt.Errorf("operand A: %w", err)
			}
			b, err := loadOperand(rhs)
			if err != nil {
				return fmt.Errorf("operand B: %w", err)
			}
			res := spec.call(state.bridge, a.Flat(), marshal.DimsOf(a), b.Flat(), marshal.DimsOf(b))

			return state.write(cmd, spec.use, res)
		},
	}
	cmd.Flags().StringVarP(&lhs, "a", "a", "", "left operand: inline literal or @file")
	cmd.Flags().StringVarP(&rhs, "b", "b", "", "right operand: inline literal or @file")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func newInverseCmd(state *app) *cobra.Command {
	var operand string
	cmd := &cobra.Command{
		Use:     "inv",
		Aliases: []string{"inverse"},
		Short:   "Inverse of a 2x2 matrix",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadOperand(operand)
			if err != nil {
				return fmt.Errorf("operand M: %w", err)
			}
			res := state.bridge.Inverse(m.Flat(), marshal.DimsOf(m))

			return state.write(cmd, "inv", res)
		},
	}
	cmd.Flags().StringVarP(&operand, "m", "m", "", "matrix to invert: inline literal or @file")
	_ = cmd.MarkFlagRequired("m")

	return cmd
}

// write renders a successful result or converts a failure into an operationError.
func (a *app) write(cmd *cobra.Command, op string, res bridge.Result) error {
	if !res.OK() {
		return &operationError{op: op, kind: res.Kind, err: res.Err}
	}
	out, err := res.Matrix()
	if err != nil {
		return err
	}

	return marshal.WriteDocument(cmd.OutOrStdout(), out, a.output, a.precision)
}

// loadOperand parses an inline literal, or reads a document when s starts with '@'.
func loadOperand(s string) (*matrix.Dense, error) {
	path, isFile := strings.CutPrefix(strings.TrimSpace(s), "@")
	if !isFile {
		return marshal.ParseInline(s)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return marshal.ReadDocument(f, marshal.FormatFromPath(path))
}

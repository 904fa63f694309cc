package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densecalc/bridge"
	"github.com/katalvlaran/densecalc/config"
	"github.com/katalvlaran/densecalc/marshal"
)

// run executes the command tree with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(config.Default())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCLI_BinaryOperations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "--a=1,2;3,4", "--b=5,6;7,8"}, "6.00 8.00\n10.00 12.00\n"},
		{[]string{"sub", "--a=5,6;7,8", "--b=1,2;3,4", "-p", "0"}, "4 4\n4 4\n"},
		{[]string{"multiply", "--a=1,2;3,4", "--b=5,6;7,8", "-p", "1"}, "19.0 22.0\n43.0 50.0\n"},
		{[]string{"div", "--a=1,2;3,4", "--b=2,0;0,2", "-p", "1"}, "0.5 1.0\n1.5 2.0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestCLI_InverseYAMLOutput(t *testing.T) {
	out, _, err := run(t, "inv", "--m=4,7;2,6", "-o", "yaml")
	require.NoError(t, err)

	m, err := marshal.ReadDocument(strings.NewReader(out), marshal.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, marshal.Dims{Rows: 2, Cols: 2}, marshal.DimsOf(m))
	require.InDelta(t, 0.6, m.Flat()[0], 1e-12)
	require.InDelta(t, -0.7, m.Flat()[1], 1e-12)
}

func TestCLI_FileOperand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": 1, "cols": 2, "data": [[1, 2]]}`), 0o600))

	out, _, err := run(t, "mul", "--a=@"+path, "--b=3;4", "-o", "json")
	require.NoError(t, err)

	m, err := marshal.ReadDocument(strings.NewReader(out), marshal.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, []float64{11}, m.Flat())

	_, _, err = run(t, "mul", "--a=@"+filepath.Join(dir, "missing.yaml"), "--b=1")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCLI_FailureCarriesKindAndLogs(t *testing.T) {
	_, stderr, err := run(t, "inv", "--m=1,2;2,4")
	require.Error(t, err)

	var opErr *operationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, bridge.KindSingular, opErr.kind)
	require.Contains(t, err.Error(), "inv failed (singular)")
	require.Contains(t, stderr, "matrix operation failed")
	require.Contains(t, stderr, "kind=singular")

	_, _, err = run(t, "add", "--a=1,2", "--b=1;2")
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, bridge.KindShapeMismatch, opErr.kind)

	_, _, err = run(t, "inv", "--m=1,0,0;0,1,0;0,0,1")
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, bridge.KindUnsupported, opErr.kind)
}

func TestCLI_InputErrors(t *testing.T) {
	_, _, err := run(t, "add", "--a=1,x", "--b=1,2")
	require.ErrorIs(t, err, marshal.ErrSyntax)

	_, _, err = run(t, "add", "--a=1,2")
	require.Error(t, err) // required flag b

	_, _, err = run(t, "add", "--a=1", "--b=1", "-o", "xml")
	require.ErrorIs(t, err, marshal.ErrUnknownFormat)

	_, _, err = run(t, "add", "--a=1", "--b=1", "-p", "40")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestCLI_LogFlagsAreCaseInsensitive(t *testing.T) {
	out, _, err := run(t, "add", "--a=1", "--b=2", "--log-level", "WARN", "--log-format", " JSON ")
	require.NoError(t, err)
	require.Equal(t, "3.00\n", out)

	_, stderr, err := run(t, "inv", "--m=0,0;0,0", "--log-level", "Error", "--log-format", "Json")
	require.Error(t, err)
	require.Contains(t, stderr, `"kind":"singular"`)
}

func TestCLI_JSONOutputWithNaN(t *testing.T) {
	out, _, err := run(t, "add", "--a=NaN,1", "--b=1,1", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"NaN"`)

	m, err := marshal.ReadDocument(strings.NewReader(out), marshal.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, 2.0, m.Flat()[1])
}

func TestCLI_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "densecalc dev (commit unknown, go"), out)
}

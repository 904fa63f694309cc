// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densecalc/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"DENSECALC_LOG_LEVEL":  " DEBUG ",
		"DENSECALC_LOG_FORMAT": "json",
		"DENSECALC_OUTPUT":     "YAML",
		"DENSECALC_PRECISION":  "6",
		"LOG_LEVEL":            "error", // unprefixed keys are ignored
	})
	require.NoError(t, err)
	require.Equal(t, config.Config{LogLevel: "debug", LogFormat: "json", Output: "yaml", Precision: 6}, cfg)
}

func TestLoadFrom_Invalid(t *testing.T) {
	for name, environ := range map[string]map[string]string{
		"level":          {"DENSECALC_LOG_LEVEL": "trace"},
		"format":         {"DENSECALC_LOG_FORMAT": "logfmt"},
		"output":         {"DENSECALC_OUTPUT": "csv"},
		"negative prec":  {"DENSECALC_PRECISION": "-1"},
		"excessive prec": {"DENSECALC_PRECISION": "18"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(environ)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.LoadFrom(map[string]string{"DENSECALC_PRECISION": "two"})
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("DENSECALC_OUTPUT", "json")
	t.Setenv("DENSECALC_PRECISION", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Output)
	require.Equal(t, 0, cfg.Precision)
}

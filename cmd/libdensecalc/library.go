// libdensecalc is the C ABI over package bridge, built with
//
//	go build -buildmode=c-shared -o libdensecalc.so ./cmd/libdensecalc
//
// Every operation returns an int kind code (0 on success, see bridge.Kind)
// and, on success, stores a C-allocated row-major result in *out together
// with its shape. The caller releases the buffer with densecalc_free. On
// failure *out is NULL and the failure is also logged to stderr.
package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/densecalc/bridge"
	"github.com/katalvlaran/densecalc/config"
	"github.com/katalvlaran/densecalc/logging"
)

// newLibrary builds the process-wide bridge logging to w. When cfgErr is
// non-nil the defaults are used and the error is logged once.
func newLibrary(w io.Writer, cfg config.Config, cfgErr error) *bridge.Bridge {
	if cfgErr != nil {
		cfg = config.Default()
	}
	logger, err := logging.New(w, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger = slog.New(slog.NewTextHandler(w, nil))
	}
	if cfgErr != nil {
		logger.Warn("ignoring invalid environment, using defaults", slog.Any("error", cfgErr))
	}

	return bridge.New(bridge.WithLogger(logger))
}

func main() {}

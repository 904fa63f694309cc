// SPDX-License-Identifier: MIT

package bridge

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/densecalc/logging"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "bridge: WithLogger: logger must not be nil"
	panicNilIDFunc = "bridge: WithCallIDs: generator must not be nil"
)

// Option configures a Bridge. Constructors panic only on nonsensical values
// (programmer error), never on runtime input.
type Option func(*Bridge)

// WithLogger routes diagnostics to l. Failures log at error level, successes
// at debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(b *Bridge) { b.log = l }
}

// WithMetrics records every call on m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(b *Bridge) { b.metrics = m }
}

// WithCallIDs replaces the per-call correlation id generator.
func WithCallIDs(next func() string) Option {
	if next == nil {
		panic(panicNilIDFunc)
	}

	return func(b *Bridge) { b.newID = next }
}

// defaultBridge returns the zero-configuration state: discard logs, no
// metrics, random UUIDs.
func defaultBridge() *Bridge {
	return &Bridge{
		log:   logging.Discard(),
		newID: uuid.NewString,
	}
}

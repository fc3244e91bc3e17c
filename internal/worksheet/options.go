// SPDX-License-Identifier: MIT

// Package worksheet: functional configuration for the Runner.
//
// Design goals:
//   - No global state; every Runner resolves its own Options.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on worksheet content.
package worksheet

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by the "equal" step.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid = "worksheet: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "worksheet: WithLogger: logger must not be nil"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective Runner configuration.
type Options struct {
	logger *slog.Logger // discard handler unless WithLogger is given
	eps    float64      // >= 0; DefaultEpsilon
}

// WithLogger routes step logging to logger. Steps log at debug level.
// Panics when logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithEpsilon sets the tolerance used when comparing values in "equal" steps.
// Zero requests exact comparison. Panics on NaN, ±Inf or negative eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		eps:    DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT
// Package iterative: functional options for Solve / NewSolver.
//
// Purpose:
//   - Keep the Solve signature close to the mathematical contract
//     (A, b, x0, tolerance, maxIterations, method) and move every secondary
//     knob (relaxation, norm, recording, logger) into options.
//   - Defaults: relaxation 1.0, Euclidean norm, pre-update recording, discard logger.

package iterative

import (
	"io"
	"log/slog"
)

// DefaultRelaxation is the SOR factor used when WithRelaxation is not given.
// With w = 1 SOR reproduces Gauss-Seidel exactly.
const DefaultRelaxation = 1.0

// Options holds the resolved solver configuration.
type Options struct {
	// Relaxation is SOR's w. Ignored by Jacobi and GaussSeidel.
	// Values outside (0, 2) are accepted; convergence is then not guaranteed.
	Relaxation float64

	// Norm measures the step between successive iterates.
	Norm Norm

	// Recording selects the iterate stored in each Record.
	Recording Recording

	// Logger receives per-iteration Debug events and a final Info event.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithRelaxation sets the SOR relaxation factor w.
func WithRelaxation(w float64) Option {
	return func(o *Options) { o.Relaxation = w }
}

// WithNorm selects the convergence norm.
func WithNorm(n Norm) Option {
	return func(o *Options) { o.Norm = n }
}

// WithRecording selects the history recording convention.
func WithRecording(r Recording) Option {
	return func(o *Options) { o.Recording = r }
}

// WithLogger injects a structured logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Relaxation: DefaultRelaxation,
		Norm:       Euclidean,
		Recording:  RecordPreUpdate,
		Logger:     nopLogger(),
	}
}

// gatherOptions applies user options on top of the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validate rejects enum values outside their closed sets.
func (o Options) validate() error {
	if !o.Norm.Valid() {
		return ErrInvalidNorm
	}
	if !o.Recording.Valid() {
		return ErrInvalidRecording
	}

	return nil
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SPDX-License-Identifier: MIT

package baa

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/chancap/channel"
)

// Executor runs the BAA stages over index ranges of the symbol sets on a
// bounded pool of goroutines and reduces the partial results:
//
//   - log-denominators: split by transmitted ranges (merged by log-sum-exp)
//     or by pair-aligned received ranges (concatenated), see Split;
//   - log-alphas and rates: split by transmitted ranges (concatenated / summed).
//
// Every worker reads the same immutable inputs and writes only its own
// output range, so no locking is involved. Results equal the sequential
// functions of this package up to floating-point reassociation.
//
// Cancellation is checked before each range starts; a range that is already
// running completes.
type Executor[C any] struct {
	p    channel.Provider[C]
	opts Options
}

// NewExecutor builds an Executor over provider p.
// Errors: ErrNilProvider.
func NewExecutor[C any](p channel.Provider[C], opts ...Option) (*Executor[C], error) {
	if p == nil {
		return nil, opErrorf("NewExecutor", ErrNilProvider)
	}

	return &Executor[C]{p: p, opts: gatherOptions(opts...)}, nil
}

// Options returns the effective configuration.
func (e *Executor[C]) Options() Options { return e.opts }

// LogDenominators is the partitioned form of the package-level LogDenominators.
//
// Errors: ctx.Err(), ErrEmptyInput (no transmitted symbols), ErrDimensionMismatch,
// ErrOddLength.
func (e *Executor[C]) LogDenominators(ctx context.Context, transmitted, received []C, q []float64) ([]float64, error) {
	const op = "Executor.LogDenominators"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(transmitted) == 0 {
		return nil, opErrorf(op, ErrEmptyInput)
	}
	if len(q) != len(transmitted) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}
	if len(received)%2 != 0 {
		return nil, opErrorf(op, ErrOddLength)
	}

	if e.opts.Split == SplitReceived {
		ranges, err := Partition(len(received), e.opts.Workers, 2)
		if err != nil {
			return nil, opErrorf(op, err)
		}
		e.logPlan(ctx, "log-denominators", e.opts.Split, ranges)
		out := make([]float64, len(received))
		err = e.forEach(ctx, ranges, func(_ int, r Range) error {
			copy(out[r.Lo:r.Hi], logDenominators(e.p, transmitted, received[r.Lo:r.Hi], q))
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	ranges, err := Partition(len(transmitted), e.opts.Workers, 1)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	e.logPlan(ctx, "log-denominators", e.opts.Split, ranges)
	parts := make([][]float64, len(ranges))
	err = e.forEach(ctx, ranges, func(k int, r Range) error {
		parts[k] = logDenominators(e.p, transmitted[r.Lo:r.Hi], received, q[r.Lo:r.Hi])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return CombineLogDenominators(parts...)
}

// LogAlphas is the partitioned form of the package-level LogAlphas.
//
// Errors: ctx.Err(), ErrDimensionMismatch.
func (e *Executor[C]) LogAlphas(ctx context.Context, transmitted, received []C, q, logDen []float64) ([]float64, error) {
	const op = "Executor.LogAlphas"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(q) != len(transmitted) || len(logDen) != len(received) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}

	ranges, err := Partition(len(transmitted), e.opts.Workers, 1)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	e.logPlan(ctx, "log-alphas", SplitTransmitted, ranges)
	out := make([]float64, len(transmitted))
	err = e.forEach(ctx, ranges, func(_ int, r Range) error {
		copy(out[r.Lo:r.Hi], logAlphas(e.p, transmitted[r.Lo:r.Hi], received, q[r.Lo:r.Hi], logDen))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Step is the partitioned form of the package-level Step.
//
// Errors: ctx.Err(), ErrEmptyInput, ErrDimensionMismatch, ErrOddLength,
// ErrZeroMass, ErrNonFinite.
func (e *Executor[C]) Step(ctx context.Context, transmitted, received []C, q []float64) ([]float64, error) {
	const op = "Executor.Step"
	logDen, err := e.LogDenominators(ctx, transmitted, received, q)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	logAlpha, err := e.LogAlphas(ctx, transmitted, received, q, logDen)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	next, err := Normalize(logAlpha)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	e.opts.Logger.DebugContext(ctx, "baa step done",
		"n_transmitted", len(transmitted),
		"n_received", len(received),
		"workers", e.opts.Workers,
	)

	return next, nil
}

// Rate computes the pair-averaged log-denominators for q and then the rate
// as a sum of RateEfficient partials over transmitted ranges, in nats.
//
// Errors: as LogDenominators and RateEfficient.
func (e *Executor[C]) Rate(ctx context.Context, transmitted, received []C, q []float64) (float64, error) {
	logDen, err := e.LogDenominators(ctx, transmitted, received, q)
	if err != nil {
		return 0, opErrorf("Executor.Rate", err)
	}

	return e.RateEfficient(ctx, transmitted, received, logDen, q)
}

// RateEfficient is the partitioned form of the package-level RateEfficient:
// partial rates over transmitted ranges are summed.
//
// Errors: ctx.Err(), ErrDimensionMismatch.
func (e *Executor[C]) RateEfficient(ctx context.Context, transmitted, received []C, logDen, q []float64) (float64, error) {
	const op = "Executor.RateEfficient"
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(q) != len(transmitted) || len(logDen) != len(received) {
		return 0, opErrorf(op, ErrDimensionMismatch)
	}

	ranges, err := Partition(len(transmitted), e.opts.Workers, 1)
	if err != nil {
		return 0, opErrorf(op, err)
	}
	e.logPlan(ctx, "rate", SplitTransmitted, ranges)
	partial := make([]float64, len(ranges))
	err = e.forEach(ctx, ranges, func(k int, r Range) error {
		partial[k] = rateEfficient(e.p, transmitted[r.Lo:r.Hi], received, logDen, q[r.Lo:r.Hi])
		return nil
	})
	if err != nil {
		return 0, err
	}

	return floats.Sum(partial), nil
}

// forEach runs fn for every range, at most Workers at a time, and returns the
// first error (including cancellation of ctx).
func (e *Executor[C]) forEach(ctx context.Context, ranges []Range, fn func(k int, r Range) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for k, r := range ranges {
		k, r := k, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(k, r)
		})
	}

	return g.Wait()
}

func (e *Executor[C]) logPlan(ctx context.Context, stage string, split Split, ranges []Range) {
	e.opts.Logger.DebugContext(ctx, "partition planned",
		"stage", stage,
		"split", split.String(),
		"ranges", len(ranges),
	)
}

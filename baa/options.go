// SPDX-License-Identifier: MIT
// Package baa: functional configuration for Executor.
//
//   - Option / Options with documented defaults (constants).
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - The numeric thresholds are not configurable; see thresholds.go.

package baa

import (
	"log/slog"
	"runtime"
)

// Split selects how Executor partitions the log-denominator stage.
type Split int

const (
	// SplitTransmitted partitions the transmitted set; every worker sees all
	// received symbols and returns partial log marginals, which are merged
	// with CombineLogDenominators.
	SplitTransmitted Split = iota

	// SplitReceived partitions the received set into pair-aligned ranges;
	// every worker sees all transmitted symbols and the slices are concatenated.
	SplitReceived
)

// String returns the split name.
func (s Split) String() string {
	switch s {
	case SplitTransmitted:
		return "transmitted"
	case SplitReceived:
		return "received"
	default:
		return "unknown"
	}
}

// DefaultSplit mirrors the distributed driver: partition the transmitted set.
const DefaultSplit = SplitTransmitted

const (
	panicWorkersInvalid = "baa: WithWorkers: workers must be >= 1"
	panicSplitInvalid   = "baa: WithSplit: unknown split"
	panicLoggerNil      = "baa: WithLogger: logger must be non-nil"
)

// Option mutates Executor options.
type Option func(*Options)

// Options holds Executor configuration. Build it through NewExecutor(...Option).
type Options struct {
	// Workers is the number of ranges each stage is split into and the
	// maximum number of goroutines running at once.
	Workers int

	// Split chooses the partition of the log-denominator stage.
	Split Split

	// Logger receives debug-level partition plans.
	Logger *slog.Logger
}

// DefaultOptions returns GOMAXPROCS workers, DefaultSplit and the default
// slog logger tagged with component=baa-executor.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Split:   DefaultSplit,
		Logger:  slog.Default().With("component", "baa-executor"),
	}
}

// WithWorkers sets the number of workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.Workers = n }
}

// WithSplit sets the log-denominator partition. Panics on an unknown Split.
func WithSplit(s Split) Option {
	if s != SplitTransmitted && s != SplitReceived {
		panic(panicSplitInvalid)
	}
	return func(o *Options) { o.Split = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

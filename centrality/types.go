// Package centrality: options and sentinel errors shared by Degree and Closeness.
package centrality

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for centrality computations.
var (
	// ErrInvalidSampleSize is returned when Closeness receives k < 0.
	ErrInvalidSampleSize = errors.New("centrality: sample size must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures a centrality computation.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Workers is the number of concurrent workers; ≤ 0 means GOMAXPROCS.
	Workers int

	// Rand drives closeness sampling. Nil means a fresh time-seeded source.
	Rand *rand.Rand

	// Logger receives debug summaries. Never nil after resolution.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers, unseeded sampling and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithWorkers sets the worker count; n ≤ 0 restores the default.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed makes closeness sampling reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the sampling source directly. The source is only used
// from the calling goroutine.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithLogger routes debug summaries to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// rng returns the configured source or a fresh time-seeded one.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

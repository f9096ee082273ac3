// SPDX-License-Identifier: MIT

package clustering

import "go.uber.org/zap"

// Option configures Coefficients and Triangles.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers sets the worker count; n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger routes debug summaries to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolve(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

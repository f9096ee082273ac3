// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps a vertex index to its label.
	idFn IDFn
	// rng drives stochastic constructors; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig starts from DefaultIDFn and no RNG, then applies opts in
// order (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

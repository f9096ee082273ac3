// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w, e.g.
// "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a topology
// (nil constructor, exhausted attachment attempts, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates Named received an unregistered topology name.
var ErrUnknownTopology = errors.New("builder: unknown topology")

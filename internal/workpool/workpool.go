// Package workpool splits CPU-bound work over a fixed number of goroutines
// using partition-then-merge: every worker owns one contiguous index range
// and returns its own partial result, so no shared state is written while
// workers run. The caller merges the partials single-threaded.
package workpool

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Size resolves a requested worker count: values ≤ 0 mean GOMAXPROCS.
func Size(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return requested
}

// Chunks partitions [0, n) into at most workers contiguous, non-empty
// ranges whose lengths differ by at most one. n ≤ 0 yields no ranges.
func Chunks(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	workers = Size(workers)
	if workers > n {
		workers = n
	}

	out := make([]Range, 0, workers)
	base, extra := n/workers, n%workers
	lo := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, Range{Lo: lo, Hi: lo + size})
		lo += size
	}

	return out
}

// Map runs fn once per range of Chunks(n, workers) concurrently and returns
// the partial results in range order. The first error wins; remaining
// workers still run to completion since fn has no suspension points.
func Map[T any](n, workers int, fn func(Range) (T, error)) ([]T, error) {
	chunks := Chunks(n, workers)
	out := make([]T, len(chunks))
	if len(chunks) == 0 {
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(len(chunks))
	for i, r := range chunks {
		i, r := i, r
		g.Go(func() error {
			part, err := fn(r)
			if err != nil {
				return fmt.Errorf("workpool: range [%d,%d): %w", r.Lo, r.Hi, err)
			}
			out[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

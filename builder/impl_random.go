// SPDX-License-Identifier: MIT
//
// impl_random.go - stochastic constructors.
//
// RandomSparse(n, p):
//   - G(n,p) over idFn(0..n-1). Edge trials are skipped geometrically
//     (Batagelj & Brandes 2005), so the cost is O(n + |E|) rather than O(n²).
//   - p == 0 and p == 1 are deterministic and need no RNG.
//
// PreferentialAttachment(n, m):
//   - Seeds a clique on the first m+1 vertices, then attaches each further
//     vertex to m distinct existing vertices chosen with probability ∝ degree
//     (a flat endpoint list doubles as the degree-weighted urn).
//   - Requires an RNG. Cost O(n·m) expected.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/copurchase/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0

	methodPreferential = "PreferentialAttachment"
	minAttach          = 1
	// attachAttemptsPerEdge bounds rejection sampling for distinct targets.
	attachAttemptsPerEdge = 64
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addNodes(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}
		switch p {
		case probMin:
			return nil
		case probMax:
			return Complete(n)(g, cfg)
		}

		// Walk the lower triangle (v, w), w < v, jumping over skipped pairs.
		logQ := math.Log(1 - p)
		v, w := 1, -1
		for v < n {
			w += 1 + int(math.Floor(math.Log(1-cfg.rng.Float64())/logQ))
			for w >= v && v < n {
				w -= v
				v++
			}
			if v < n {
				if err = connect(g, methodRandomSparse, ids[w], ids[v]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// PreferentialAttachment returns a Constructor for a Barabási–Albert graph
// with n vertices where every vertex after the seed clique brings m edges.
func PreferentialAttachment(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minAttach {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodPreferential, m, minAttach, ErrTooFewVertices)
		}
		if n < m+1 {
			return fmt.Errorf("%s: n=%d < m+1=%d: %w", methodPreferential, n, m+1, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPreferential, ErrNeedRandSource)
		}

		ids, err := addNodes(g, methodPreferential, n, cfg.idFn)
		if err != nil {
			return err
		}

		// urn holds every edge endpoint once; sampling it is degree-proportional.
		urn := make([]int, 0, 2*m*n)
		for i := 0; i <= m; i++ {
			for j := i + 1; j <= m; j++ {
				if err = connect(g, methodPreferential, ids[i], ids[j]); err != nil {
					return err
				}
				urn = append(urn, i, j)
			}
		}
		chosen := make(map[int]struct{}, m)
		targets := make([]int, 0, m)
		for v := m + 1; v < n; v++ {
			clear(chosen)
			targets = targets[:0]
			for attempts := 0; len(targets) < m; attempts++ {
				if attempts >= attachAttemptsPerEdge*m {
					return fmt.Errorf("%s: vertex %d found %d/%d targets: %w",
						methodPreferential, v, len(targets), m, ErrConstructFailed)
				}
				t := urn[cfg.rng.Intn(len(urn))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			for _, t := range targets {
				if err = connect(g, methodPreferential, ids[v], ids[t]); err != nil {
					return err
				}
				urn = append(urn, v, t)
			}
		}

		return nil
	}
}

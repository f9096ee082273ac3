// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Vertices idFn(0..n-1) are added in index order; edges (i-1)–i are emitted
// for ascending i, and Cycle closes the ring with (n-1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

const (
	methodPath    = "Path"
	minPathNodes  = 2
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and Grid(rows, cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
	methodGrid       = "Grid"
	minGridDim       = 1
	gridIDFmt        = "%d,%d" // fixed "r,c" coordinate labels
)

// Complete returns a Constructor for K_n. Pairs {i,j}, i<j, are emitted in
// lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighborhood lattice with
// labels "r,c" in row-major order. The IDFn is not consulted.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				label := fmt.Sprintf(gridIDFmt, r, c)
				id, err := g.AddNode(label)
				if err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, label, err)
				}
				cell[r*cols+c] = id
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell[r*cols+c]
				if c+1 < cols {
					if err := connect(g, methodGrid, u, cell[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, methodGrid, u, cell[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

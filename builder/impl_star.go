// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Hub label is the fixed CenterVertexID and is inserted first, so on a
//     fresh graph the hub is NodeID 0.
//   - Star: leaves idFn(1..n-1), spokes emitted in ascending leaf order.
//   - Wheel: rim idFn(0..n-1) closed into a cycle, then hub spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

// CenterVertexID labels the hub of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	minStarNodes  = 2
	methodWheel   = "Wheel"
	minWheelNodes = 3
)

// Star returns a Constructor for a star with n vertices: hub plus n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := g.AddNode(CenterVertexID)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			label := cfg.idFn(i)
			leaf, err := g.AddNode(label)
			if err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodStar, label, err)
			}
			if err = connect(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: an n-vertex rim cycle plus a hub
// joined to every rim vertex (n+1 vertices, 2n edges).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, err := g.AddNode(CenterVertexID)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodWheel, CenterVertexID, err)
		}
		rim, err := addNodes(g, methodWheel, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, methodWheel, rim[i], rim[(i+1)%n]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = connect(g, methodWheel, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}

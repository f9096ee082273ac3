// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

// addNodes inserts idFn(0..n-1) and returns their NodeIDs in index order.
// Labels that already exist resolve to their existing NodeID.
func addNodes(g *core.Graph, method string, n int, idFn IDFn) ([]core.NodeID, error) {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		label := idFn(i)
		id, err := g.AddNode(label)
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, label, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds u–v with method context on failure.
func connect(g *core.Graph, method string, u, v core.NodeID) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, g.Label(u), g.Label(v), err)
	}

	return nil
}

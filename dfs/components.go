package dfs

import "github.com/katalvlaran/copurchase/core"

// Components is a connected-component labeling of a view.
// Components are numbered in ascending order of their lowest NodeID.
type Components struct {
	// ID[v] is the component index of node v.
	ID []int
	// Sizes[c] is the node count of component c.
	Sizes []int
}

// ConnectedComponents labels every node of g. A nil view yields an empty
// labeling. Time O(V+E), memory O(V).
func ConnectedComponents(g core.View) *Components {
	c := &Components{}
	if g == nil {
		return c
	}
	n := g.NodeCount()
	c.ID = make([]int, n)
	for i := range c.ID {
		c.ID[i] = -1
	}

	stack := make([]core.NodeID, 0, 64)
	for root := 0; root < n; root++ {
		if c.ID[root] >= 0 {
			continue
		}
		label := len(c.Sizes)
		size := 0
		c.ID[root] = label
		stack = append(stack[:0], core.NodeID(root))
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, v := range g.Neighbors(u) {
				if c.ID[v] < 0 {
					c.ID[v] = label
					stack = append(stack, v)
				}
			}
		}
		c.Sizes = append(c.Sizes, size)
	}

	return c
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.Sizes) }

// Largest returns the index and size of the biggest component, lowest
// index on ties. Both are -1 and 0 for an empty view.
func (c *Components) Largest() (index, size int) {
	index = -1
	for i, s := range c.Sizes {
		if s > size {
			index, size = i, s
		}
	}

	return index, size
}

// Singletons counts components with exactly one node.
func (c *Components) Singletons() int {
	count := 0
	for _, s := range c.Sizes {
		if s == 1 {
			count++
		}
	}

	return count
}

// Members returns the nodes of component i in ascending order, or nil when
// i is out of range.
func (c *Components) Members(i int) []core.NodeID {
	if i < 0 || i >= len(c.Sizes) {
		return nil
	}
	out := make([]core.NodeID, 0, c.Sizes[i])
	for v, label := range c.ID {
		if label == i {
			out = append(out, core.NodeID(v))
		}
	}

	return out
}

package dfs

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

// frame is one node on the explicit DFS stack.
type frame struct {
	id    core.NodeID
	depth int
	nbrs  []core.NodeID // nil once the depth limit is reached
	next  int           // index of the next neighbor to inspect
}

// walker encapsulates state during one DFS call.
type walker struct {
	graph core.View
	opts  Options
	seen  []bool
	stack []frame
	res   *Result
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it covers every component, restarting from the lowest undiscovered id.
// Neighbors are explored in the order g.Neighbors returns them.
//
// On a hook error or cancellation the partial Result is returned with the
// error.
func DFS(g core.View, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.NodeCount()
	if !o.FullTraversal && (start < 0 || int(start) >= n) {
		return nil, ErrStartNodeNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		seen:  make([]bool, n),
		stack: make([]frame, 0, 64),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
		},
	}

	if !o.FullTraversal {
		return w.res, w.tree(start)
	}
	for id := 0; id < n; id++ {
		if w.seen[id] {
			continue
		}
		if err := w.tree(core.NodeID(id)); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// discover marks id, runs the pre-order hook and pushes its frame.
func (w *walker) discover(id core.NodeID, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.seen[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	var nbrs []core.NodeID
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbrs = w.graph.Neighbors(id)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// tree explores the component of root until the stack drains.
func (w *walker) tree(root core.NodeID) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			if w.seen[nbr] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nbr] = top.id
			if err := w.discover(nbr, top.depth+1); err != nil {
				return err
			}
			continue
		}

		id := top.id
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

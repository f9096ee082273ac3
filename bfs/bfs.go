// Package bfs provides breadth-first search over a core.View,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/copurchase/core"
)

// unseen marks a node not yet discovered in Walker.dist.
const unseen = -1

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// search encapsulates mutable BFS state for a single BFS call.
type search struct {
	graph   core.View
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g core.View, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	if start < 0 || int(start) >= n {
		return nil, ErrStartNodeNotFound
	}

	s := &search{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
		},
	}
	s.enqueue(start, 0, start, false)

	return s.res, s.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (s *search) enqueue(id core.NodeID, d int, parent core.NodeID, hasParent bool) {
	s.visited[id] = true
	s.res.Depth[id] = d
	if hasParent {
		s.res.Parent[id] = parent
	}
	s.queue = append(s.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (s *search) loop() error {
	for head := 0; head < len(s.queue); head++ {
		item := s.queue[head]
		s.res.Order = append(s.res.Order, item.id)
		if err := s.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if s.opts.MaxDepth > 0 && next > s.opts.MaxDepth {
			continue
		}
		for _, nbr := range s.graph.Neighbors(item.id) {
			if s.visited[nbr] || !s.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			s.enqueue(nbr, next, item.id, true)
		}
	}

	return nil
}

// Walker runs repeated BFS sweeps over one view, reusing its buffers.
// It is not safe for concurrent use; give each worker its own Walker.
type Walker struct {
	graph core.View
	dist  []int32
	queue []core.NodeID
}

// NewWalker allocates a Walker sized for g. Complexity: O(V).
func NewWalker(g core.View) *Walker {
	n := g.NodeCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = unseen
	}

	return &Walker{graph: g, dist: dist, queue: make([]core.NodeID, 0, 64)}
}

// Reach runs a BFS from start and returns the number of nodes reached
// (start included) and the sum of their hop distances from start.
// Nodes outside start's component contribute nothing.
//
// Complexity: O(V_c + E_c) for the component c of start.
func (w *Walker) Reach(start core.NodeID) (reached int, sum int64, err error) {
	if start < 0 || int(start) >= len(w.dist) {
		return 0, 0, ErrStartNodeNotFound
	}

	w.queue = append(w.queue[:0], start)
	w.dist[start] = 0
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head]
		d := w.dist[cur]
		sum += int64(d)
		for _, nbr := range w.graph.Neighbors(cur) {
			if w.dist[nbr] != unseen {
				continue
			}
			w.dist[nbr] = d + 1
			w.queue = append(w.queue, nbr)
		}
	}
	reached = len(w.queue)

	// reset only what this sweep touched
	for _, id := range w.queue {
		w.dist[id] = unseen
	}

	return reached, sum, nil
}

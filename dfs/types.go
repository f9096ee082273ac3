package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/copurchase/core"
)

var (
	// ErrGraphNil is returned when a nil core.View is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start id is out of range.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.NodeID, depth int) error

	// OnExit, if non-nil, runs after all descendants of a node have been
	// explored (post-order), before the node is appended to Result.Order.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits traversal to that depth.
	// 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is asked before descending into a
	// neighbor. Returning false skips it and bumps SkippedNeighbors.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	// FullTraversal restarts from every undiscovered node in ascending id
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest mode; the start argument is ignored.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each discovered node to its tree depth from its root.
	Depth map[core.NodeID]int

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[core.NodeID]core.NodeID

	// Roots lists the tree roots in the order their trees were explored.
	Roots []core.NodeID

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

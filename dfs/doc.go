// Package dfs implements depth-first search and connected-component
// labeling over a core.View.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking. It runs on an explicit stack, so million-node chains do
//     not grow the goroutine stack. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering with a skipped-neighbor diagnostic
//   - Forest mode covering every component
//   - ConnectedComponents labels every node with its component index and
//     records component sizes. Closeness scores are component-local, so the
//     component structure explains why a well-connected product can still
//     score low.
//
// Complexity:
//
//   - DFS:                 Time O(V+E), Memory O(V)
//   - ConnectedComponents: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            view is nil
//   - ErrStartNodeNotFound   start id out of range
//   - context.Canceled       DFS canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs

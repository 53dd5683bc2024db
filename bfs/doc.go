// Package bfs provides breadth-first reachability over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hop distance from start
//   - Pred:  predecessor vector aligned to the graph's dense indices
//   - Engine wraps BFS in the prepare / compute / reset protocol consumed by
//     island detectors, making it the default path engine for walk, auto and
//     transit connectivity checks.
//
// Determinism
//
//	core.Graph keeps outgoing arcs in insertion order and BFS enqueues heads
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start (or engine destination) node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotPrepared          if Engine.ComputePath runs before Prepare.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx errors.
package bfs

// Package dfs implements depth-first reachability on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) explores as far as possible along each branch
//     before backtracking and returns a DFSResult:
//   - Order: post-order finish sequence
//   - Depth: tree depth of every reached node
//   - Pred:  predecessor vector aligned to dense indices
//   - Engine wraps DFS in the prepare / compute / reset protocol consumed
//     by island detectors (netcheck --engine dfs).
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook; an error aborts traversal.
//   - WithOnExit(fn)          post-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)     stop descending below limit (>= 0).
//   - WithFilterArc(fn)       skip arcs; counted in SkippedArcs.
//   - WithFullTraversal()     continue from every unvisited node (forest).
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the explicit stack and result.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if the start (or engine destination) is missing.
//   - ErrNotPrepared         if Engine.ComputePath runs before Prepare.
//   - context errors and wrapped hook errors.
package dfs

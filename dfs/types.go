// Package dfs defines types and options for depth-first reachability,
// including cancellation, pre-/post-order hooks, depth limiting, arc
// filtering, full-graph (forest) traversal and basic diagnostics.
package dfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start (or engine destination)
	// node does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrNotPrepared is returned when an Engine is queried before Prepare.
	ErrNotPrepared = errors.New("dfs: engine not prepared")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int64, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Order.
	OnExit func(id int64) error

	// MaxDepth, if non-negative, limits the traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterArc, if non-nil, is called for each arc curr→next before
	// descending. Return false to skip the arc.
	FilterArc func(curr, next int64) bool

	// FullTraversal restarts from every unvisited node in dense order once
	// the start node's tree is finished.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int64) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterArc skips arcs curr→next when fn returns false. Skipped arcs
// are counted in DFSResult.SkippedArcs.
func WithFilterArc(fn func(curr, next int64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterArc = fn
	}
}

// WithFullTraversal enables forest traversal over every node of the graph.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int64

	// Depth maps each reached node to its tree depth from the root of its tree.
	Depth map[int64]int

	// Pred is the predecessor vector aligned to dense indices; roots and
	// unreached nodes hold core.NoPredecessor.
	Pred []int

	// SkippedArcs counts arcs rejected by FilterArc, across all trees.
	SkippedArcs int
}

// Reached reports whether id was reached by the traversal.
func (r *DFSResult) Reached(id int64) bool {
	_, ok := r.Depth[id]
	return ok
}

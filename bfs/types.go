// Package bfs provides tunable options and error definitions
// for breadth-first reachability over a core.Graph.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotPrepared is returned when an Engine is queried before Prepare.
	ErrNotPrepared = errors.New("bfs: engine not prepared")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth from the start.
	OnEnqueue func(id int64, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterArc can skip arcs by returning false.
	FilterArc func(curr, next int64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all arcs allowed)
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int64, int) {},
		OnVisit:   func(int64, int) error { return nil },
		MaxDepth:  0,
		FilterArc: func(_, _ int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs curr→next when fn returns false.
func WithFilterArc(fn func(curr, next int64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: node IDs in visit sequence.
//   - Depth: map from node ID to its distance (in arcs) from the start.
//   - Pred: predecessor vector aligned to dense indices; core.NoPredecessor
//     for unreached nodes and for the start itself.
type BFSResult struct {
	Order []int64
	Depth map[int64]int
	Pred  []int

	g *core.Graph
}

// Reached reports whether id was reached from the start.
func (r *BFSResult) Reached(id int64) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the node path from the start to dest.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	if !r.Reached(dest) {
		return nil, errors.Newf("bfs: no path to %d", dest)
	}
	i, _ := r.g.Index(dest)
	path := []int64{}
	for ; i != core.NoPredecessor; i = r.Pred[i] {
		path = append(path, r.g.NodeAt(i))
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

package dijkstra

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// Engine adapts Dijkstra to the prepare / compute / reset protocol used by
// island detectors and the turn-aware full path search. ComputePath always
// builds the complete tree from the source; the destination is validated only.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	g    *core.Graph
	opts []Option
	last *Result
}

// NewEngine returns an Engine applying opts (minus Source and WithContext,
// which ComputePath supplies) to every computation.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: opts}
}

// Prepare binds the engine to g.
func (e *Engine) Prepare(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	e.g = g
	e.last = nil

	return nil
}

// ComputePath computes the shortest-path tree rooted at src.
func (e *Engine) ComputePath(ctx context.Context, src, dst int64) error {
	if e.g == nil {
		return ErrNotPrepared
	}
	if !e.g.HasNode(dst) {
		return errors.Wrapf(ErrNodeNotFound, "destination %d", dst)
	}
	opts := make([]Option, 0, len(e.opts)+2)
	opts = append(opts, e.opts...)
	opts = append(opts, Source(src), WithContext(ctx))
	res, err := Dijkstra(e.g, opts...)
	if err != nil {
		return err
	}
	e.last = res

	return nil
}

// Predecessors returns the predecessor vector of the last computation.
func (e *Engine) Predecessors() []int {
	if e.last == nil {
		return nil
	}
	return e.last.Pred
}

// Result exposes the last computed tree, or nil.
func (e *Engine) Result() *Result { return e.last }

// Reset drops the last result; the prepared graph is kept.
func (e *Engine) Reset() { e.last = nil }

package dfs

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// Engine adapts DFS to the prepare / compute / reset protocol used by
// island detectors. Its reachability is identical to the bfs engine; only
// the predecessor tree differs.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	g    *core.Graph
	opts []Option
	pred []int
}

// NewEngine returns an Engine that applies opts to every traversal.
// WithContext and WithFullTraversal are overridden per computation.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: opts}
}

// Prepare binds the engine to g.
func (e *Engine) Prepare(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	e.g = g
	e.pred = nil

	return nil
}

// ComputePath runs a single-source DFS from src.
func (e *Engine) ComputePath(ctx context.Context, src, dst int64) error {
	if e.g == nil {
		return ErrNotPrepared
	}
	if !e.g.HasNode(dst) {
		return errors.Wrapf(ErrStartNodeNotFound, "destination %d", dst)
	}
	opts := append(append([]Option{}, e.opts...), WithContext(ctx), func(o *DFSOptions) { o.FullTraversal = false })
	res, err := DFS(e.g, src, opts...)
	if err != nil {
		return err
	}
	e.pred = res.Pred

	return nil
}

// Predecessors returns the vector of the last ComputePath.
func (e *Engine) Predecessors() []int { return e.pred }

// Reset drops the last result.
func (e *Engine) Reset() { e.pred = nil }

package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// Engine adapts BFS to the prepare / compute / reset protocol used by
// island detectors. Each ComputePath builds the full reachability tree
// from the source; the destination only has to exist.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	g    *core.Graph
	opts []Option
	pred []int
}

// NewEngine returns an Engine that applies opts to every traversal.
// WithContext is ignored: the context passed to ComputePath wins.
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

// ComputePath runs BFS from src. The predecessor vector is left exactly as
// the traversal produced it: the source entry stays core.NoPredecessor.
func (e *Engine) ComputePath(ctx context.Context, src, dst int64) error {
	if e.g == nil {
		return ErrNotPrepared
	}
	if !e.g.HasNode(dst) {
		return errors.Wrapf(ErrStartNodeNotFound, "destination %d", dst)
	}
	opts := append(append([]Option{}, e.opts...), WithContext(ctx))
	res, err := BFS(e.g, src, opts...)
	if err != nil {
		return err
	}
	e.pred = res.Pred

	return nil
}

// Predecessors returns the vector of the last ComputePath, aligned to dense
// indices. Nil before the first computation or after Reset.
func (e *Engine) Predecessors() []int { return e.pred }

// Reset drops the last result; the prepared graph is kept.
func (e *Engine) Reset() { e.pred = nil }

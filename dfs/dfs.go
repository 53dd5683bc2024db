// Package dfs implements depth-first reachability (single-source and forest)
// on core.Graph with an explicit stack, so long chains never grow the
// goroutine stack.
package dfs

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// frame is one node on the explicit DFS stack; next is the position of
// the next outgoing arc to examine.
type frame struct {
	idx   int
	depth int
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited []bool
	stack   []frame
	res     *DFSResult
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// every remaining node is used as a further root, in dense order.
// Returns the partial result together with any context or hook error.
func DFS(g *core.Graph, start int64, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s, ok := g.Index(start)
	if !ok {
		return nil, errors.Wrapf(ErrStartNodeNotFound, "node %d", start)
	}

	n := g.NodeCount()
	pred := make([]int, n)
	for i := range pred {
		pred[i] = core.NoPredecessor
	}
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res: &DFSResult{
			Order: make([]int64, 0, n),
			Depth: make(map[int64]int, n),
			Pred:  pred,
		},
	}

	if err := w.traverse(s); err != nil {
		return w.res, err
	}
	if o.FullTraversal {
		for i := 0; i < n; i++ {
			if w.visited[i] {
				continue
			}
			if err := w.traverse(i); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// discover marks idx, records depth and predecessor, runs OnVisit and
// pushes a frame.
func (w *dfsWalker) discover(idx, depth, parent int) error {
	w.visited[idx] = true
	w.res.Pred[idx] = parent
	id := w.graph.NodeAt(idx)
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook for %d", id)
		}
	}
	w.stack = append(w.stack, frame{idx: idx, depth: depth})

	return nil
}

// traverse explores the tree rooted at root until the stack is empty.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root, 0, core.NoPredecessor); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		out := w.graph.Out(top.idx)
		canDescend := w.opts.MaxDepth < 0 || top.depth < w.opts.MaxDepth
		if canDescend && top.next < len(out) {
			a := out[top.next]
			top.next++
			if w.opts.FilterArc != nil && !w.opts.FilterArc(w.graph.NodeAt(top.idx), w.graph.NodeAt(a.To)) {
				w.res.SkippedArcs++
				continue
			}
			if w.visited[a.To] {
				continue
			}
			// discover may grow the stack; top is not used afterwards.
			if err := w.discover(a.To, top.depth+1, top.idx); err != nil {
				return err
			}
			continue
		}

		id := w.graph.NodeAt(top.idx)
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return errors.Wrapf(err, "dfs: OnExit hook for %d", id)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

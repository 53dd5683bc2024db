// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, a predecessor vector and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting and arc filtering. Arc costs are ignored.
package bfs

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// queueItem pairs a dense node index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s, ok := g.Index(start)
	if !ok {
		return nil, errors.Wrapf(ErrStartNodeNotFound, "node %d", start)
	}

	w := newWalker(g, o)
	w.enqueue(s, 0, core.NoPredecessor)

	return w.res, w.loop()
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.NodeCount()
	pred := make([]int, n)
	for i := range pred {
		pred[i] = core.NoPredecessor
	}

	return &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order: make([]int64, 0, n),
			Depth: make(map[int64]int, n),
			Pred:  pred,
			g:     g,
		},
	}
}

// enqueue marks idx visited at depth d, records its predecessor,
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.res.Pred[idx] = parent
	id := w.graph.NodeAt(idx)
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		id := w.graph.NodeAt(item.idx)
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit error at %d", id)
		}
		w.expand(item, id)
	}

	return nil
}

// expand enqueues every unseen head of item's outgoing arcs that passes
// the filter and the depth limit.
func (w *walker) expand(item queueItem, id int64) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Out(item.idx) {
		if w.visited[a.To] {
			continue
		}
		if !w.opts.FilterArc(id, w.graph.NodeAt(a.To)) {
			continue
		}
		w.enqueue(a.To, next, item.idx)
	}
}

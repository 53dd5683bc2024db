// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Two labelling schemes are supported:
//
//   - node-based (default): one label per node, the classic algorithm.
//   - arc-based (WithTurnRestrictions): one label per arc, so that the state
//     of a search carries the link it arrived on. This is what turn
//     restrictions need: whether an arc may be taken depends on the previous
//     link, not only on the node.
//
// Both use a lazy decrease-key min-heap.
//
// Complexity:
//
//   - Node-based: Time O((V + E) log V), Space O(V + E).
//   - Arc-based:  Time O(E·d log E) where d is the mean out-degree, Space O(E).
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/core"
)

// Result is the shortest-path tree computed from one source.
//
// Dist[i] is the distance to dense index i (+Inf if unreached) and Pred[i]
// its predecessor index. The source keeps Pred == core.NoPredecessor.
type Result struct {
	Source int64
	Dist   []float64
	Pred   []int

	g *core.Graph
}

// Reached reports whether id was reached.
func (r *Result) Reached(id int64) bool {
	i, ok := r.g.Index(id)
	return ok && !math.IsInf(r.Dist[i], 1)
}

// DistanceTo returns the shortest distance to id and whether it was reached.
func (r *Result) DistanceTo(id int64) (float64, bool) {
	i, ok := r.g.Index(id)
	if !ok || math.IsInf(r.Dist[i], 1) {
		return math.Inf(1), false
	}

	return r.Dist[i], true
}

// PathTo rebuilds the node sequence from the source to id.
func (r *Result) PathTo(id int64) ([]int64, error) {
	if !r.Reached(id) {
		return nil, errors.Newf("dijkstra: no path to %d", id)
	}
	i, _ := r.g.Index(id)
	var path []int64
	for ; i != core.NoPredecessor; i = r.Pred[i] {
		path = append(path, r.g.NodeAt(i))
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be set (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrNodeNotFound).
//
// Arc costs are validated by core.Builder, so no negative-weight scan is needed.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	s, ok := g.Index(cfg.Source)
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "source %d", cfg.Source)
	}

	r := newRunner(g, cfg)
	var err error
	if cfg.TurnAware {
		err = r.runArcs(s)
	} else {
		err = r.runNodes(s)
	}
	if err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Pred: r.pred, g: g}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph
	cfg  Options
	dist []float64 // per node
	pred []int     // per node
	pq   nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:    g,
		cfg:  cfg,
		dist: make([]float64, n),
		pred: make([]int, n),
		pq:   make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.pred[i] = core.NoPredecessor
	}

	return r
}

// cancelled performs a non-blocking context check.
func (r *runner) cancelled() error {
	select {
	case <-r.cfg.Ctx.Done():
		return r.cfg.Ctx.Err()
	default:
		return nil
	}
}

// passable reports whether an arc may be relaxed to a candidate distance.
func (r *runner) passable(a core.Arc, cand float64) bool {
	return a.Cost < r.cfg.InfEdgeThreshold && cand <= r.cfg.MaxDistance
}

// runNodes is the node-labelled main loop.
func (r *runner) runNodes(s int) error {
	done := make([]bool, len(r.dist))
	r.dist[s] = 0
	heap.Push(&r.pq, &nodeItem{idx: s, dist: 0})

	for r.pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if done[u] {
			continue // stale entry
		}
		done[u] = true

		for _, a := range r.g.Out(u) {
			cand := r.dist[u] + a.Cost
			if !r.passable(a, cand) || cand >= r.dist[a.To] {
				continue
			}
			r.dist[a.To] = cand
			r.pred[a.To] = u
			heap.Push(&r.pq, &nodeItem{idx: a.To, dist: cand})
		}
	}

	return nil
}

// runArcs is the arc-labelled main loop. A label is the cost of arriving at
// the head of arc k having traversed k last. Node distances are the minimum
// over settled labels of their incoming arcs.
func (r *runner) runArcs(s int) error {
	m := r.g.ArcCount()
	arcDist := make([]float64, m)
	done := make([]bool, m)
	for k := range arcDist {
		arcDist[k] = math.Inf(1)
	}
	r.dist[s] = 0

	start, end := r.g.OutRange(s)
	for k := start; k < end; k++ {
		a := r.g.Arc(k)
		if !r.passable(a, a.Cost) {
			continue
		}
		arcDist[k] = a.Cost
		heap.Push(&r.pq, &nodeItem{idx: k, dist: a.Cost})
	}

	for r.pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		k := item.idx
		if done[k] {
			continue
		}
		done[k] = true
		in := r.g.Arc(k)
		if arcDist[k] < r.dist[in.To] {
			r.dist[in.To] = arcDist[k]
			if in.To != s {
				r.pred[in.To] = in.From
			}
		}

		first, last := r.g.OutRange(in.To)
		for j := first; j < last; j++ {
			out := r.g.Arc(j)
			if r.g.TurnBanned(in.Link, out.Link) {
				continue
			}
			if r.cfg.NoUTurns && in.Link != core.NoLink && in.Link == out.Link {
				continue
			}
			cand := arcDist[k] + out.Cost
			if !r.passable(out, cand) || cand >= arcDist[j] {
				continue
			}
			arcDist[j] = cand
			heap.Push(&r.pq, &nodeItem{idx: j, dist: cand})
		}
	}

	return nil
}

// nodeItem is a heap entry: a node index (node mode) or an arc index (arc mode).
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, ties by idx.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

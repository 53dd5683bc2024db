// File: builder.go
// Role: Incremental construction of an immutable Graph.
// Determinism:
//   - Node order is first-seen order (AddNode or first AddEdge endpoint).
//   - Outgoing arcs keep insertion order, so engines expand neighbours reproducibly.

package core

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Builder accumulates nodes, edges and banned turns and seals them into a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	allowLoops bool
	sealed     bool

	nodes   []int64
	index   map[int64]int
	pending []Arc
	seen    map[int64]edgeKey
	banned  map[Turn]struct{}
}

// edgeKey remembers the endpoints of an edge that owns a link ID.
type edgeKey struct{ from, to int64 }

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.index == nil {
		b.index = make(map[int64]int)
	}
	b.seen = make(map[int64]edgeKey)
	b.banned = make(map[Turn]struct{})

	return b
}

// AddNode registers id if absent. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (b *Builder) AddNode(id int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	b.addNode(id)

	return nil
}

func (b *Builder) addNode(id int64) int {
	if i, ok := b.index[id]; ok {
		return i
	}
	i := len(b.nodes)
	b.nodes = append(b.nodes, id)
	b.index[id] = i

	return i
}

// AddEdge adds a directed arc from→to with the given cost, auto-adding both
// endpoints. WithBidirectional mirrors the arc; WithLink tags it.
//
// Errors: ErrBuilderSealed, ErrBadCost, ErrLoopNotAllowed, ErrDuplicateLink.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to int64, cost float64, opts ...EdgeOption) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return errors.Wrapf(ErrBadCost, "edge %d->%d cost=%v", from, to, cost)
	}
	if from == to && !b.allowLoops {
		return errors.Wrapf(ErrLoopNotAllowed, "node %d", from)
	}
	var spec edgeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.link != NoLink {
		if prev, dup := b.seen[spec.link]; dup && prev != (edgeKey{from, to}) {
			return errors.Wrapf(ErrDuplicateLink, "link %d", spec.link)
		}
		b.seen[spec.link] = edgeKey{from, to}
	}

	u, v := b.addNode(from), b.addNode(to)
	b.pending = append(b.pending, Arc{From: u, To: v, Cost: cost, Link: spec.link})
	if spec.bidirectional && u != v {
		b.pending = append(b.pending, Arc{From: v, To: u, Cost: cost, Link: spec.link})
	}

	return nil
}

// BanTurn forbids entering a node on link from and leaving it on link to.
// Only turn-aware engines consult banned turns.
func (b *Builder) BanTurn(from, to int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	b.banned[Turn{From: from, To: to}] = struct{}{}

	return nil
}

// Build seals the Builder and returns the Graph. The Builder cannot be reused.
//
// Implementation:
//   - Stage 1: count outgoing arcs per tail node.
//   - Stage 2: prefix-sum into firstOut.
//   - Stage 3: scatter arcs into their CSR slots, preserving insertion order.
//
// Complexity: O(V + E) time and space.
func (b *Builder) Build() (*Graph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	n := len(b.nodes)
	firstOut := make([]int, n+1)
	for _, a := range b.pending {
		firstOut[a.From+1]++
	}
	for i := 0; i < n; i++ {
		firstOut[i+1] += firstOut[i]
	}
	arcs := make([]Arc, len(b.pending))
	next := make([]int, n)
	copy(next, firstOut[:n])
	for _, a := range b.pending {
		arcs[next[a.From]] = a
		next[a.From]++
	}

	return &Graph{
		nodes:    b.nodes,
		index:    b.index,
		firstOut: firstOut,
		arcs:     arcs,
		banned:   b.banned,
		links:    len(b.seen),
	}, nil
}

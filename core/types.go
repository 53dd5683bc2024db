// Package core defines the immutable network Graph consumed by path engines
// and island detectors.
//
// A Graph is a directed view over one mode of a transportation network
// (walk, auto or transit). Nodes are identified by int64 network IDs and
// mapped onto a dense 0-based index space; arcs carry a cost and the ID of
// the link they were built from so that turn-aware engines can evaluate
// turn restrictions between consecutive links.
//
// Graphs are assembled with a Builder and are read-only afterwards, so a
// single Graph may be shared by any number of concurrent readers.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrNodeNotFound      - requested node does not exist.
//	ErrBadCost           - negative, NaN or infinite arc cost.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrDuplicateLink     - two edges declared with the same link ID.
//	ErrBuilderSealed     - builder reused after Build.
package core

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadCost indicates an arc cost that is negative, NaN or infinite.
	ErrBadCost = errors.New("core: bad arc cost")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateLink indicates a link ID was used by two distinct edges.
	ErrDuplicateLink = errors.New("core: duplicate link id")

	// ErrBuilderSealed indicates the Builder was used after Build returned.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// NoPredecessor marks an unreached entry in a predecessor vector.
// Engines leave the source's own entry at NoPredecessor as well.
const NoPredecessor = -1

// NoLink is the link ID of arcs that were added without WithLink.
const NoLink int64 = 0

// Arc is one outgoing, directed connection between two dense node indices.
type Arc struct {
	// From is the dense index of the tail node.
	From int

	// To is the dense index of the head node.
	To int

	// Cost is the traversal cost (distance or time); always finite and >= 0.
	Cost float64

	// Link is the network link the arc was built from, or NoLink.
	Link int64
}

// Turn is an ordered pair of links: entering a node on From and leaving it on To.
type Turn struct {
	From int64
	To   int64
}

// GraphOption configures a Builder before any node or edge is added.
type GraphOption func(b *Builder)

// WithLoops permits self-loops (arcs from a node to itself).
func WithLoops() GraphOption {
	return func(b *Builder) { b.allowLoops = true }
}

// WithCapacity pre-sizes internal storage for the expected node and edge counts.
func WithCapacity(nodes, edges int) GraphOption {
	return func(b *Builder) {
		if nodes > 0 {
			b.nodes = make([]int64, 0, nodes)
			b.index = make(map[int64]int, nodes)
		}
		if edges > 0 {
			b.pending = make([]Arc, 0, edges)
		}
	}
}

// EdgeOption configures a single edge passed to Builder.AddEdge.
type EdgeOption func(e *edgeSpec)

// edgeSpec collects per-edge options before arcs are materialised.
type edgeSpec struct {
	link          int64
	bidirectional bool
}

// WithLink tags the edge with its network link ID. Both arcs of a
// bidirectional edge share the same link ID.
func WithLink(id int64) EdgeOption {
	return func(e *edgeSpec) { e.link = id }
}

// WithBidirectional mirrors the edge so it can be traversed both ways.
func WithBidirectional() EdgeOption {
	return func(e *edgeSpec) { e.bidirectional = true }
}

// Graph is an immutable, CSR-encoded directed network graph.
//
// nodes[i] is the network ID at dense index i; index is its inverse.
// Outgoing arcs of node i are arcs[firstOut[i]:firstOut[i+1]], in insertion order.
type Graph struct {
	nodes    []int64
	index    map[int64]int
	firstOut []int
	arcs     []Arc
	banned   map[Turn]struct{}
	links    int
}

// Stats is a read-only summary of a Graph, suitable for logs.
type Stats struct {
	Nodes       int
	Arcs        int
	Links       int
	BannedTurns int
	Isolated    int
}

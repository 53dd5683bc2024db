// File: methods.go
// Role: Read-only queries over a sealed Graph.
// Concurrency:
//   - A Graph never mutates after Build; every method is safe for concurrent use.
//   - Slices returned by Out and Arcs alias internal storage and must not be modified.

package core

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of directed arcs. Complexity: O(1).
func (g *Graph) ArcCount() int { return len(g.arcs) }

// AllNodes returns a copy of the node IDs in dense-index order.
// Complexity: O(V).
func (g *Graph) AllNodes() []int64 {
	out := make([]int64, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasNode reports whether id is a node of g. Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.index[id]
	return ok
}

// Index maps a node ID to its dense index.
func (g *Graph) Index(id int64) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeAt maps a dense index back to its node ID. It panics if i is out of range.
func (g *Graph) NodeAt(i int) int64 { return g.nodes[i] }

// Out returns the outgoing arcs of dense index i in insertion order.
func (g *Graph) Out(i int) []Arc { return g.arcs[g.firstOut[i]:g.firstOut[i+1]] }

// OutRange returns the half-open arc index range [start,end) of node i's
// outgoing arcs, for engines that label arcs rather than nodes.
func (g *Graph) OutRange(i int) (start, end int) { return g.firstOut[i], g.firstOut[i+1] }

// Arc returns the arc stored at arc index k.
func (g *Graph) Arc(k int) Arc { return g.arcs[k] }

// Arcs returns every arc grouped by tail node.
func (g *Graph) Arcs() []Arc { return g.arcs }

// TurnBanned reports whether leaving link to after arriving on link from is forbidden.
// Arcs without a link never participate in turn restrictions.
func (g *Graph) TurnBanned(from, to int64) bool {
	if from == NoLink || to == NoLink || len(g.banned) == 0 {
		return false
	}
	_, ok := g.banned[Turn{From: from, To: to}]

	return ok
}

// HasTurnRestrictions reports whether any turn was banned at build time.
func (g *Graph) HasTurnRestrictions() bool { return len(g.banned) > 0 }

// Stats produces a summary of the graph. Isolated counts nodes with neither
// incoming nor outgoing arcs (self-loops do not count as connections).
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	touched := make([]bool, len(g.nodes))
	for _, a := range g.arcs {
		if a.From == a.To {
			continue
		}
		touched[a.From] = true
		touched[a.To] = true
	}
	isolated := 0
	for _, t := range touched {
		if !t {
			isolated++
		}
	}

	return Stats{
		Nodes:       len(g.nodes),
		Arcs:        len(g.arcs),
		Links:       g.links,
		BannedTurns: len(g.banned),
		Isolated:    isolated,
	}
}

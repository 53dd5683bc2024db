package network

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Correspondence translates graph node IDs into external network node IDs
// for reporting. The zero value and a nil *Correspondence are the identity.
type Correspondence struct {
	toNet map[int64]int64
}

// NewCorrespondence pairs graphNodes[i] with netNodes[i].
// A later pair for the same graph node overrides an earlier one.
func NewCorrespondence(graphNodes, netNodes []int64) (*Correspondence, error) {
	if len(graphNodes) != len(netNodes) {
		return nil, errors.Wrapf(ErrCorrespondenceLength, "%d graph nodes, %d net nodes", len(graphNodes), len(netNodes))
	}
	c := &Correspondence{toNet: make(map[int64]int64, len(graphNodes))}
	for i, g := range graphNodes {
		c.toNet[g] = netNodes[i]
	}

	return c, nil
}

// Len returns the number of pairs.
func (c *Correspondence) Len() int {
	if c == nil {
		return 0
	}
	return len(c.toNet)
}

// Lookup returns the net node of one graph node.
func (c *Correspondence) Lookup(node int64) (int64, bool) {
	if c == nil || c.toNet == nil {
		return node, true
	}
	n, ok := c.toNet[node]

	return n, ok
}

// Translate maps nodes to net nodes, keeping order. Graph nodes without a
// pair are dropped, as a table filter on graph_node would drop them.
func (c *Correspondence) Translate(nodes []int64) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		if net, ok := c.Lookup(n); ok {
			out = append(out, net)
		}
	}

	return out
}

// Pairs returns both columns ordered by graph node.
func (c *Correspondence) Pairs() (graphNodes, netNodes []int64) {
	if c == nil {
		return nil, nil
	}
	graphNodes = make([]int64, 0, len(c.toNet))
	for g := range c.toNet {
		graphNodes = append(graphNodes, g)
	}
	slices.Sort(graphNodes)
	netNodes = make([]int64, len(graphNodes))
	for i, g := range graphNodes {
		netNodes[i] = c.toNet[g]
	}

	return graphNodes, netNodes
}

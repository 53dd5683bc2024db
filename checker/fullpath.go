package checker

import (
	"context"
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/network"
)

// fullPathSearch computes a turn-aware path tree from every node and records
// the nodes each one fails to reach. Turn bans make reachability depend on
// the incoming link, so islands cannot be derived from plain adjacency.
//
// Every probe targets the previous probe's source; the first targets itself.
func (c *Checker) fullPathSearch(ctx context.Context, n *network.ModeNetwork) error {
	if n == nil || n.Graph == nil || n.Graph.NodeCount() == 0 {
		return nil
	}
	if c.turnEngine == nil {
		return errors.Wrapf(ErrNoEngine, "%s network turn search", n.Mode)
	}
	engine := c.turnEngine()
	if engine == nil {
		return errors.Wrapf(ErrNoEngine, "%s network turn search", n.Mode)
	}
	g := n.Graph
	if err := engine.Prepare(g); err != nil {
		return errors.Wrapf(err, "%s network", n.Mode)
	}

	disc := Disconnections{}
	untranslated := 0
	nodes := g.AllNodes()
	tnode := nodes[0]
	for s, fnode := range nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := engine.ComputePath(ctx, fnode, tnode); err != nil {
			return errors.Wrapf(err, "%s network: path from %d", n.Mode, fnode)
		}
		var unreached []int64
		for i, p := range engine.Predecessors() {
			if i != s && p == core.NoPredecessor {
				unreached = append(unreached, g.NodeAt(i))
			}
		}
		if len(unreached) > 0 {
			if net := n.Correspondence.Translate(unreached); len(net) > 0 {
				disc[fnode] = mapset.NewThreadUnsafeSet(net...)
			} else {
				untranslated++
				c.logger.Debug("unreachable nodes have no correspondence",
					"mode", n.Mode, "from", fnode, "nodes", len(unreached))
			}
		}
		engine.Reset()
		tnode = fnode
	}
	c.Disconnections = disc

	if len(disc) == 0 && untranslated == 0 {
		c.logger.Info("network fully connected", "mode", n.Mode, "nodes", len(nodes), "check", "turns")
		return nil
	}
	c.logger.Warn("network is disconnected under turn restrictions",
		"mode", n.Mode, "sources", len(disc), "untranslated", untranslated, "nodes", len(nodes))
	for _, from := range disc.Sources() {
		unreached := disc[from].ToSlice()
		slices.Sort(unreached)
		c.logger.Debug("unreachable nodes", "mode", n.Mode, "from", from, "nodes", unreached)
		c.Errors = append(c.Errors, Finding{
			Mode:    n.Mode,
			Kind:    KindUnreachable,
			From:    from,
			Nodes:   unreached,
			Message: fmt.Sprintf("%s network: %d nodes unreachable from %d", n.Mode, len(unreached), from),
		})
	}

	return nil
}

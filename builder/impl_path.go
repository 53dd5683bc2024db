package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/network"
)

const (
	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor for a corridor of n nodes and n-1 links.
// A one-node path is an isolated node.
func Path(n int) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewNodes, "Path: n=%d < %d", n, minPathNodes)
		}
		e := newEmitter(s, cfg)
		prev := e.node()
		for i := 1; i < n; i++ {
			next := e.node()
			e.link(prev, next)
			prev = next
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring of n nodes; with WithDirection(AB)
// it is a one-way loop that is still strongly connected.
func Cycle(n int) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewNodes, "Cycle: n=%d < %d", n, minCycleNodes)
		}
		e := newEmitter(s, cfg)
		first := e.node()
		prev := first
		for i := 1; i < n; i++ {
			next := e.node()
			e.link(prev, next)
			prev = next
		}
		e.link(prev, first)

		return nil
	}
}

// Star returns a Constructor for a hub with n-1 spokes, hub first.
func Star(n int) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if n < minStarNodes {
			return errors.Wrapf(ErrTooFewNodes, "Star: n=%d < %d", n, minStarNodes)
		}
		e := newEmitter(s, cfg)
		hub := e.node()
		for i := 1; i < n; i++ {
			e.link(hub, e.node())
		}

		return nil
	}
}

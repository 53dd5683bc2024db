package network

import (
	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/netcheck/core"
)

// ModeNetwork is everything a connectivity check needs for one mode.
type ModeNetwork struct {
	Mode           Mode
	Graph          *core.Graph
	Correspondence *Correspondence

	// Stops is the transit stop subset; empty for walk and auto.
	Stops mapset.Set[int64]
}

// Candidates returns the nodes whose connectivity matters for the mode:
// every graph node, or for transit only the graph nodes that are stops.
// Order is graph order.
func (n *ModeNetwork) Candidates() []int64 {
	if n == nil || n.Graph == nil {
		return nil
	}
	all := n.Graph.AllNodes()
	if n.Mode != ModeTransit {
		return all
	}
	out := all[:0]
	for _, id := range all {
		if n.Stops != nil && n.Stops.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}

// BuildOption configures Supply.Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	filter *LinkFilter
}

// WithLinkFilter keeps only links the filter matches.
func WithLinkFilter(f *LinkFilter) BuildOption {
	return func(c *buildConfig) { c.filter = f }
}

// Validate checks cross references: unique IDs, link endpoints, stops and
// turn links must be declared, directions must be valid.
func (s *Supply) Validate() error {
	nodes := mapset.NewThreadUnsafeSetWithSize[int64](len(s.Nodes))
	for _, n := range s.Nodes {
		if !nodes.Add(n.ID) {
			return errors.Wrapf(ErrDuplicateID, "node %d", n.ID)
		}
	}
	links := mapset.NewThreadUnsafeSetWithSize[int64](len(s.Links))
	for _, l := range s.Links {
		if l.ID == core.NoLink {
			return errors.Wrapf(ErrReservedLinkID, "link %d-%d", l.A, l.B)
		}
		if !links.Add(l.ID) {
			return errors.Wrapf(ErrDuplicateID, "link %d", l.ID)
		}
		if l.Direction < BA || l.Direction > AB {
			return errors.Wrapf(ErrBadDirection, "link %d: %d", l.ID, l.Direction)
		}
		if !nodes.Contains(l.A, l.B) {
			return errors.Wrapf(ErrUnknownNode, "link %d: %d-%d", l.ID, l.A, l.B)
		}
	}
	for _, stop := range s.TransitStops {
		if !nodes.Contains(stop) {
			return errors.Wrapf(ErrUnknownNode, "transit stop %d", stop)
		}
	}
	for _, t := range s.Turns {
		if !links.Contains(t.FromLink, t.ToLink) {
			return errors.Wrapf(ErrUnknownLink, "turn %d->%d", t.FromLink, t.ToLink)
		}
	}

	return nil
}

// Build assembles the graph of one mode.
//
// Nodes tagged with the mode (or untagged, for walk and auto) come first in
// declaration order; transit stops always belong to the transit graph.
// Links tagged with the mode and accepted by the filter become arcs costed
// by Length. Walk links are two-way whatever their Direction. Turn bans are
// attached to the auto graph only.
func (s *Supply) Build(mode Mode, opts ...BuildOption) (*ModeNetwork, error) {
	if int(mode) >= len(modeNames) {
		return nil, errors.Wrapf(ErrUnknownMode, "%d", mode)
	}
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stops := mapset.NewThreadUnsafeSet[int64]()
	if mode == ModeTransit {
		stops.Append(s.TransitStops...)
	}

	b := core.NewBuilder(core.WithLoops(), core.WithCapacity(len(s.Nodes), len(s.Links)))
	for _, n := range s.Nodes {
		if tagged(n.Modes, mode) || stops.Contains(n.ID) {
			if err := b.AddNode(n.ID); err != nil {
				return nil, err
			}
		}
	}
	for _, l := range s.Links {
		if !tagged(l.Modes, mode) {
			continue
		}
		if cfg.filter != nil {
			ok, err := cfg.filter.Match(l)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		if err := addLink(b, l, mode); err != nil {
			return nil, err
		}
	}
	if mode == ModeAuto {
		for _, t := range s.Turns {
			if err := b.BanTurn(t.FromLink, t.ToLink); err != nil {
				return nil, err
			}
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &ModeNetwork{
		Mode:           mode,
		Graph:          g,
		Correspondence: s.Correspondence[mode],
		Stops:          stops,
	}, nil
}

func addLink(b *core.Builder, l Link, mode Mode) error {
	opts := []core.EdgeOption{core.WithLink(l.ID)}
	from, to := l.A, l.B
	switch {
	case mode == ModeWalk || l.Direction == Both:
		opts = append(opts, core.WithBidirectional())
	case l.Direction == BA:
		from, to = l.B, l.A
	}
	if err := b.AddEdge(from, to, l.Length, opts...); err != nil {
		return errors.Wrapf(err, "link %d", l.ID)
	}

	return nil
}

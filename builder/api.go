package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/network"
)

// Constructor appends one component to a supply. Every constructor
// allocates node and link IDs above the ones already present, so the
// components of one BuildSupply call never share a node.
type Constructor func(s *network.Supply, cfg builderConfig) error

// BuildSupply creates an empty Supply, resolves the options and applies the
// constructors in order. The result is validated before it is returned.
//
// Same options, seed and constructor order give identical supplies.
func BuildSupply(bopts []BuilderOption, cons ...Constructor) (*network.Supply, error) {
	s := &network.Supply{}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(s, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildSupply")
		}
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "BuildSupply"), ErrConstructFailed)
	}

	return s, nil
}

// emitter hands out fresh IDs for one constructor call.
type emitter struct {
	s        *network.Supply
	cfg      builderConfig
	nextNode int64
	nextLink int64
}

func newEmitter(s *network.Supply, cfg builderConfig) *emitter {
	e := &emitter{s: s, cfg: cfg, nextNode: 1, nextLink: 1}
	for _, n := range s.Nodes {
		e.nextNode = max(e.nextNode, n.ID+1)
	}
	for _, l := range s.Links {
		e.nextLink = max(e.nextLink, l.ID+1)
	}

	return e
}

// node appends a node and returns its ID.
func (e *emitter) node() int64 {
	id := e.nextNode
	e.nextNode++
	e.s.Nodes = append(e.s.Nodes, network.Node{ID: id, Modes: e.cfg.modes})
	if e.cfg.stops {
		e.s.TransitStops = append(e.s.TransitStops, id)
	}

	return id
}

// link appends a link a→b and returns its ID.
func (e *emitter) link(a, b int64) int64 {
	id := e.nextLink
	e.nextLink++
	e.s.Links = append(e.s.Links, network.Link{
		ID:        id,
		A:         a,
		B:         b,
		Direction: e.cfg.direction,
		Length:    e.cfg.lengthFn(e.cfg.rng),
		Type:      e.cfg.linkType,
		Modes:     e.cfg.modes,
	})

	return id
}

// Configure applies extra options to a single constructor on top of the
// ones given to BuildSupply.
func Configure(con Constructor, opts ...BuilderOption) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if con == nil {
			return errors.Wrap(ErrConstructFailed, "Configure: nil constructor")
		}
		for _, opt := range opts {
			opt(&cfg)
		}
		return con(s, cfg)
	}
}

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– Source:               ID of the starting node (required, must be present in the graph).
//	– WithMaxDistance:      cap on distances to explore; nodes beyond it stay unreached.
//	– WithInfEdgeThreshold: arcs with cost >= threshold are treated as impassable.
//	– WithTurnRestrictions: label arcs instead of nodes and honour banned turns.
//	– WithoutUTurns:        in turn-aware mode, forbid leaving on the link just arrived on.
//	– WithContext:          cancellation.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was not given.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source node does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source (or engine destination) is not in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat all arcs (including zero-cost arcs) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNotPrepared is returned when an Engine is queried before Prepare.
	ErrNotPrepared = errors.New("dijkstra: engine not prepared")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx              context.Context
	Source           int64
	MaxDistance      float64 // default +Inf (no cap)
	InfEdgeThreshold float64 // default +Inf (no impassable arcs)
	TurnAware        bool
	NoUTurns         bool

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Required.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithContext sets a context checked once per settled label.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed it are left unreached.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = errors.Wrapf(ErrBadMaxDistance, "got %v", max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which arcs are
// considered non-traversable.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = errors.Wrapf(ErrBadInfThreshold, "got %v", threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithTurnRestrictions switches to link-based labelling: a node is reached
// through a specific incoming arc, and an outgoing arc may only be taken if
// the graph does not ban the turn between the two links.
func WithTurnRestrictions() Option {
	return func(o *Options) { o.TurnAware = true }
}

// WithoutUTurns forbids, in turn-aware mode, leaving a node on the same link
// it was entered on. It implies WithTurnRestrictions.
func WithoutUTurns() Option {
	return func(o *Options) {
		o.TurnAware = true
		o.NoUTurns = true
	}
}

// DefaultOptions returns Options with no source, no caps and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

package checker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/dijkstra"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
)

// Checker runs connectivity checks over the networks it was given and keeps
// the results of the last run of every mode.
//
// Each Check method clears its own results first, so calling it again never
// mixes two runs. Findings accumulate in Errors until Clear.
// A Checker is not safe for concurrent use.
type Checker struct {
	WalkIslands    islands.Islands
	AutoIslands    islands.Islands
	TransitIslands islands.Islands
	Disconnections Disconnections
	Skim           *dijkstra.SkimResult
	Errors         []Finding

	networks    map[network.Mode]*network.ModeNetwork
	modes       []network.Mode
	logger      *slog.Logger
	engine      EngineFactory
	turnEngine  EngineFactory
	strict      bool
	turns       bool
	highMemory  bool
	skimWorkers int
}

// New returns a Checker configured by opts.
func New(opts ...Option) *Checker {
	c := &Checker{
		networks:   make(map[network.Mode]*network.ModeNetwork),
		modes:      network.Modes(),
		logger:     slog.Default(),
		engine:     defaultEngine,
		turnEngine: defaultTurnEngine,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run checks every configured mode in order. A finding never stops the run;
// an error does.
func (c *Checker) Run(ctx context.Context) error {
	for _, m := range c.modes {
		var err error
		switch m {
		case network.ModeWalk:
			err = c.CheckWalk(ctx)
		case network.ModeAuto:
			err = c.CheckAuto(ctx)
		case network.ModeTransit:
			err = c.CheckTransit(ctx)
		default:
			err = errors.Wrapf(network.ErrUnknownMode, "%d", m)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckWalk partitions every node of the walk network into islands.
func (c *Checker) CheckWalk(ctx context.Context) error {
	c.WalkIslands = nil
	is, err := c.checkIslands(ctx, c.networks[network.ModeWalk])
	c.WalkIslands = is

	return err
}

// CheckAuto checks the auto network: island detection by default, the full
// path search with WithTurnRestrictions, the skim with WithHighMemory.
func (c *Checker) CheckAuto(ctx context.Context) error {
	c.AutoIslands = nil
	c.Disconnections = nil
	c.Skim = nil
	n := c.networks[network.ModeAuto]

	switch {
	case c.highMemory:
		return c.checkSkim(ctx, n)
	case c.turns:
		return c.fullPathSearch(ctx, n)
	}
	is, err := c.checkIslands(ctx, c.networks[network.ModeAuto])
	c.AutoIslands = is

	return err
}

// CheckTransit partitions the transit stops into islands.
func (c *Checker) CheckTransit(ctx context.Context) error {
	c.TransitIslands = nil
	is, err := c.checkIslands(ctx, c.networks[network.ModeTransit])
	c.TransitIslands = is

	return err
}

// HasCriticalErrors reports whether any finding was recorded.
func (c *Checker) HasCriticalErrors() bool { return len(c.Errors) > 0 }

// Err folds the findings into one error marked ErrDisconnected, or nil.
func (c *Checker) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(c.Errors))
	for i, f := range c.Errors {
		msgs[i] = f.String()
	}
	err := errors.Newf("%d connectivity finding(s): %s", len(c.Errors), strings.Join(msgs, "; "))

	return errors.Mark(err, ErrDisconnected)
}

// Clear drops every result and finding.
func (c *Checker) Clear() {
	c.WalkIslands, c.AutoIslands, c.TransitIslands = nil, nil, nil
	c.Disconnections = nil
	c.Skim = nil
	c.Errors = nil
}

func (c *Checker) detector() (islands.Detector, error) {
	if c.strict {
		return islands.NewSCCDetector(), nil
	}
	if c.engine == nil {
		return nil, ErrNoEngine
	}
	e := c.engine()
	if e == nil {
		return nil, ErrNoEngine
	}

	return islands.NewProbeDetector(e, islands.WithLogger(c.logger)), nil
}

// checkIslands detects and classifies the islands of n. A missing network
// yields nil islands, an empty candidate set empty ones; neither is logged.
func (c *Checker) checkIslands(ctx context.Context, n *network.ModeNetwork) (islands.Islands, error) {
	if n == nil || n.Graph == nil {
		return nil, nil
	}
	det, err := c.detector()
	if err != nil {
		return nil, errors.Wrapf(err, "%s network", n.Mode)
	}
	candidates := n.Candidates()
	if len(candidates) == 0 {
		return islands.Islands{}, nil
	}
	is, err := det.Detect(ctx, n.Graph, candidates)
	if err != nil {
		return nil, errors.Wrapf(err, "%s network", n.Mode)
	}
	c.classify(n, is)

	return is, nil
}

func (c *Checker) classify(n *network.ModeNetwork, is islands.Islands) {
	s := islands.Summarize(is)
	if s.Count == 1 {
		c.logger.Info("network fully connected", "mode", n.Mode, "nodes", s.Total)
		return
	}
	outside := n.Correspondence.Translate(is.Outside())
	c.logger.Warn("network has islands",
		"mode", n.Mode, "islands", s.Count, "disconnected", s.Disconnected, "isolated", s.Isolated)
	c.logger.Debug("disconnected nodes", "mode", n.Mode, "nodes", outside)
	c.Errors = append(c.Errors, Finding{
		Mode:    n.Mode,
		Kind:    KindIslands,
		Nodes:   outside,
		Message: fmt.Sprintf("%s network has %d islands, %d nodes outside the largest", n.Mode, s.Count, s.Disconnected),
	})
}

// checkSkim sums all-pairs distances in parallel; an infinite total means
// some pair is unreachable.
func (c *Checker) checkSkim(ctx context.Context, n *network.ModeNetwork) error {
	if n == nil || n.Graph == nil || n.Graph.NodeCount() == 0 {
		return nil
	}
	opts := []dijkstra.SkimOption{dijkstra.WithWorkers(c.skimWorkers)}
	if c.turns {
		opts = append(opts, dijkstra.WithSkimOptions(dijkstra.WithTurnRestrictions()))
	}
	res, err := dijkstra.Skim(ctx, n.Graph, opts...)
	if err != nil {
		return errors.Wrapf(err, "%s network skim", n.Mode)
	}
	c.Skim = res
	if res.Connected() {
		c.logger.Info("network fully connected", "mode", n.Mode, "nodes", res.Origins, "check", "skim")
		return nil
	}
	c.logger.Warn("network is disconnected", "mode", n.Mode, "unreachable_pairs", res.Unreachable, "check", "skim")
	c.Errors = append(c.Errors, Finding{
		Mode:    n.Mode,
		Kind:    KindSkim,
		Message: fmt.Sprintf("%s network skim has %d unreachable pairs", n.Mode, res.Unreachable),
	})

	return nil
}

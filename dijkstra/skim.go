package dijkstra

import (
	"context"
	"math"
	"runtime"

	"github.com/katalvlaran/netcheck/core"
	"golang.org/x/sync/errgroup"
)

// SkimResult aggregates a one-to-all computation run from every node.
//
// Total is the sum of all origin→destination distances; it is +Inf as soon
// as a single pair is unreachable, which is all the high-memory connectivity
// check looks at. Unreachable counts those pairs.
type SkimResult struct {
	Origins     int
	Pairs       int
	Unreachable int
	Total       float64
}

// Connected reports whether every ordered pair was reachable.
func (s *SkimResult) Connected() bool {
	return !math.IsInf(s.Total, 0) && !math.IsNaN(s.Total)
}

// skimConfig holds Skim options.
type skimConfig struct {
	workers int
	opts    []Option
}

// SkimOption configures Skim.
type SkimOption func(*skimConfig)

// WithWorkers bounds the number of origins computed concurrently.
// Values < 1 fall back to GOMAXPROCS.
func WithWorkers(n int) SkimOption {
	return func(c *skimConfig) { c.workers = n }
}

// WithSkimOptions forwards Dijkstra options (e.g. WithTurnRestrictions) to every origin.
func WithSkimOptions(opts ...Option) SkimOption {
	return func(c *skimConfig) { c.opts = append(c.opts, opts...) }
}

// Skim runs Dijkstra from every node of g in parallel and sums the distances.
// Per-origin sums are reduced in node order, so Total is deterministic.
//
// Complexity: V Dijkstra runs; Memory O(workers·(V+E)).
func Skim(ctx context.Context, g *core.Graph, opts ...SkimOption) (*SkimResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := skimConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	n := g.NodeCount()
	sums := make([]float64, n)
	misses := make([]int, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			o := make([]Option, 0, len(cfg.opts)+2)
			o = append(o, cfg.opts...)
			o = append(o, Source(g.NodeAt(i)), WithContext(ctx))
			res, err := Dijkstra(g, o...)
			if err != nil {
				return err
			}
			for j, d := range res.Dist {
				if j == i {
					continue
				}
				if math.IsInf(d, 1) {
					misses[i]++
				}
				sums[i] += d
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := &SkimResult{Origins: n, Pairs: n * (n - 1)}
	for i := range sums {
		out.Total += sums[i]
		out.Unreachable += misses[i]
	}

	return out, nil
}

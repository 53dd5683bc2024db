package islands

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/netcheck/core"
)

// ProbeDetector clusters candidates with repeated single-source probes.
//
// Each round takes the first remaining candidate as source and the second as
// destination, asks the engine for the reachability tree of the source, and
// turns every remaining candidate reached by it into one island. A single
// leftover candidate becomes a singleton island.
//
// On directed graphs "the source reaches X" is not symmetric, so the
// partition depends on the order of candidates. That is intended: islands
// are a diagnostic, not strongly connected components (see SCCDetector).
type ProbeDetector struct {
	engine PathEngine
	logger *slog.Logger
}

// ProbeOption configures a ProbeDetector.
type ProbeOption func(*ProbeDetector)

// WithLogger sets the logger used for per-probe debug lines.
func WithLogger(l *slog.Logger) ProbeOption {
	return func(d *ProbeDetector) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewProbeDetector returns a detector backed by engine.
func NewProbeDetector(engine PathEngine, opts ...ProbeOption) *ProbeDetector {
	d := &ProbeDetector{engine: engine, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Detect partitions candidates into islands.
//
// Candidates are deduplicated first. A candidate missing from g reaches
// nothing, so it ends up alone when it becomes a probe source.
// An empty candidate set yields empty Islands and no engine call.
//
// Complexity: O(k·(V+E)) engine work for k islands, plus O(k·V) bookkeeping.
func (d *ProbeDetector) Detect(ctx context.Context, g *core.Graph, candidates []int64) (Islands, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if d.engine == nil {
		return nil, ErrNoEngine
	}
	work := dedupe(candidates)
	out := Islands{}
	if len(work) == 0 {
		return out, nil
	}
	if err := d.engine.Prepare(g); err != nil {
		return nil, errors.Wrap(err, "islands: prepare engine")
	}

	remaining := mapset.NewThreadUnsafeSet(work...)
	for len(work) >= 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		island, err := d.probe(ctx, g, work[0], work[1], remaining)
		if err != nil {
			return nil, err
		}
		remaining.RemoveAll(island...)
		work = keep(work, remaining)
		out = append(out, island)
		d.logger.Debug("island found", "index", len(out)-1, "size", len(island), "remaining", len(work))
	}
	if len(work) == 1 {
		out = append(out, []int64{work[0]})
	}

	return out, nil
}

// probe returns the remaining candidates reached from src, in graph order.
func (d *ProbeDetector) probe(ctx context.Context, g *core.Graph, src, dst int64, remaining mapset.Set[int64]) ([]int64, error) {
	s, ok := g.Index(src)
	if !ok {
		return []int64{src}, nil
	}
	if !g.HasNode(dst) {
		// the engine insists on a valid destination; any probe target will do
		dst = src
	}
	d.engine.Reset()
	if err := d.engine.ComputePath(ctx, src, dst); err != nil {
		return nil, errors.Wrapf(err, "islands: probe from %d", src)
	}
	pred := d.engine.Predecessors()

	var island []int64
	for i := 0; i < g.NodeCount(); i++ {
		if i != s && (i >= len(pred) || pred[i] == core.NoPredecessor) {
			continue
		}
		if id := g.NodeAt(i); remaining.Contains(id) {
			island = append(island, id)
		}
	}

	return island, nil
}

// keep filters work down to members of remaining, preserving order.
func keep(work []int64, remaining mapset.Set[int64]) []int64 {
	out := work[:0]
	for _, id := range work {
		if remaining.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}

// Package islands partitions a candidate node set of a core.Graph into
// reachability clusters ("islands").
package islands

import (
	"context"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/netcheck/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when Detect receives a nil graph.
	ErrNilGraph = errors.New("islands: graph is nil")

	// ErrNoEngine is returned when a ProbeDetector has no path engine.
	ErrNoEngine = errors.New("islands: no path engine configured")
)

// PathEngine is the single-source reachability primitive.
//
// After ComputePath(ctx, src, dst), Predecessors returns a vector aligned to
// the graph's dense indices where core.NoPredecessor marks unreached nodes.
// The source's own entry may be left at core.NoPredecessor; callers treat
// the source as reached regardless.
type PathEngine interface {
	Prepare(g *core.Graph) error
	ComputePath(ctx context.Context, src, dst int64) error
	Predecessors() []int
	Reset()
}

// Detector partitions candidates into islands.
type Detector interface {
	Detect(ctx context.Context, g *core.Graph, candidates []int64) (Islands, error)
}

// Islands maps an island index (slice position, discovery order) to its
// member node IDs in graph order.
type Islands [][]int64

// Len returns the number of islands.
func (is Islands) Len() int { return len(is) }

// Total returns the number of nodes over all islands.
func (is Islands) Total() int {
	n := 0
	for _, island := range is {
		n += len(island)
	}

	return n
}

// Largest returns the index and size of the largest island; the first one
// wins ties. It returns (-1, 0) when there are no islands.
func (is Islands) Largest() (idx, size int) {
	idx = -1
	for i, island := range is {
		if len(island) > size {
			idx, size = i, len(island)
		}
	}

	return idx, size
}

// Connected reports whether exactly one island exists.
func (is Islands) Connected() bool { return len(is) == 1 }

// Outside returns the members of every island except the largest one, in
// island order.
func (is Islands) Outside() []int64 {
	largest, _ := is.Largest()
	var out []int64
	for i, island := range is {
		if i != largest {
			out = append(out, island...)
		}
	}

	return out
}

// Summary condenses Islands for logging and reporting.
type Summary struct {
	Count        int // number of islands
	Total        int // number of candidate nodes
	Largest      int // size of the largest island
	Isolated     int // singleton islands
	Disconnected int // nodes outside the largest island
}

// Summarize computes a Summary.
func Summarize(is Islands) Summary {
	_, largest := is.Largest()
	s := Summary{Count: len(is), Total: is.Total(), Largest: largest}
	for _, island := range is {
		if len(island) == 1 {
			s.Isolated++
		}
	}
	s.Disconnected = s.Total - s.Largest

	return s
}

// dedupe copies ids dropping repeats, keeping first occurrences.
func dedupe(ids []int64) []int64 {
	seen := mapset.NewThreadUnsafeSetWithSize[int64](len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen.Add(id) {
			out = append(out, id)
		}
	}

	return out
}

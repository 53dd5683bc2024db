package checker

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/netcheck/bfs"
	"github.com/katalvlaran/netcheck/dijkstra"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
)

// Sentinel errors.
var (
	// ErrNoEngine is returned before a mode is checked when no path engine
	// is available for it.
	ErrNoEngine = errors.New("checker: no path engine available")

	// ErrDisconnected marks the error returned by Checker.Err.
	ErrDisconnected = errors.New("checker: network is disconnected")
)

// FindingKind tells how a Finding was produced.
type FindingKind uint8

const (
	// KindIslands comes from island detection; Nodes lie outside the largest island.
	KindIslands FindingKind = iota
	// KindUnreachable comes from the turn-aware full path search; Nodes cannot be reached from From.
	KindUnreachable
	// KindSkim comes from the high-memory skim; no node list is available.
	KindSkim
)

func (k FindingKind) String() string {
	switch k {
	case KindIslands:
		return "islands"
	case KindUnreachable:
		return "unreachable"
	case KindSkim:
		return "skim"
	}
	return "unknown"
}

// Finding is one recorded disconnection. Nodes are external (translated) IDs.
type Finding struct {
	Mode    network.Mode
	Kind    FindingKind
	From    int64
	Nodes   []int64
	Message string
}

func (f Finding) String() string {
	if len(f.Nodes) == 0 {
		return f.Message
	}
	return fmt.Sprintf("%s: %v", f.Message, f.Nodes)
}

// Disconnections maps a probe source to the translated nodes it cannot reach.
type Disconnections map[int64]mapset.Set[int64]

// Sources returns the keys in ascending order.
func (d Disconnections) Sources() []int64 {
	out := make([]int64, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// EngineFactory returns a fresh path engine for one check.
type EngineFactory func() islands.PathEngine

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger for summary and detail lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNetwork registers the network of one mode. A later call for the same
// mode replaces the earlier one.
func WithNetwork(n *network.ModeNetwork) Option {
	return func(c *Checker) {
		if n != nil {
			c.networks[n.Mode] = n
		}
	}
}

// WithEngine sets the engine used by island detection. A nil factory makes
// every island check fail with ErrNoEngine.
func WithEngine(f EngineFactory) Option {
	return func(c *Checker) { c.engine = f }
}

// WithTurnEngine sets the engine used by the turn-aware full path search.
func WithTurnEngine(f EngineFactory) Option {
	return func(c *Checker) { c.turnEngine = f }
}

// WithStrictIslands groups nodes by strongly connected component instead
// of the probe partition.
func WithStrictIslands() Option {
	return func(c *Checker) { c.strict = true }
}

// WithTurnRestrictions makes CheckAuto run the full path search.
func WithTurnRestrictions() Option {
	return func(c *Checker) { c.turns = true }
}

// WithHighMemory makes CheckAuto run a parallel skim instead. It reports
// whether the network is connected, not which nodes are cut off.
func WithHighMemory() Option {
	return func(c *Checker) { c.highMemory = true }
}

// WithSkimWorkers bounds the skim's parallelism (default GOMAXPROCS).
func WithSkimWorkers(n int) Option {
	return func(c *Checker) { c.skimWorkers = n }
}

// WithModes limits Run to the given modes, in the given order.
func WithModes(modes ...network.Mode) Option {
	return func(c *Checker) { c.modes = slices.Clone(modes) }
}

func defaultEngine() islands.PathEngine { return bfs.NewEngine() }

func defaultTurnEngine() islands.PathEngine {
	return dijkstra.NewEngine(dijkstra.WithTurnRestrictions())
}

package builder

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/netcheck/network"
)

// BuilderOption customizes constructors before any node is emitted.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// WithSeed seeds a private RNG; use it for reproducible RandomSparse fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithLengthFn overrides the link length generator. Panics on nil.
// The function receives the configured RNG, which may be nil.
func WithLengthFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithLengthFn(nil)")
	}
	return func(c *builderConfig) { c.lengthFn = fn }
}

// WithDirection sets the direction of every generated link.
func WithDirection(d network.Direction) BuilderOption {
	return func(c *builderConfig) { c.direction = d }
}

// WithModes tags generated nodes and links with the given mode names.
func WithModes(modes ...string) BuilderOption {
	return func(c *builderConfig) { c.modes = slices.Clone(modes) }
}

// WithLinkType sets Link.Type of generated links.
func WithLinkType(t string) BuilderOption {
	return func(c *builderConfig) { c.linkType = t }
}

// WithTransitStops marks every generated node as a transit stop.
func WithTransitStops() BuilderOption {
	return func(c *builderConfig) { c.stops = true }
}

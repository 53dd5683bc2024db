package builder

import (
	"math/rand"

	"github.com/katalvlaran/netcheck/network"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value so constructors cannot leak changes into each other.
type builderConfig struct {
	// rng drives stochastic constructors; nil means none were requested.
	rng *rand.Rand
	// lengthFn yields the length of every generated link.
	lengthFn func(*rand.Rand) float64
	// direction applies to every generated link.
	direction network.Direction
	// modes tags generated nodes and links; nil means walk and auto.
	modes []string
	// linkType is copied into Link.Type.
	linkType string
	// stops marks every generated node as a transit stop.
	stops bool
}

const defaultLength = 1.0

// newBuilderConfig applies opts over deterministic defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lengthFn:  func(*rand.Rand) float64 { return defaultLength },
		direction: network.Both,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

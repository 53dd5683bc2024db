package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/network"
)

const minRandomSparseNodes = 1

// RandomSparse returns a Constructor sampling a link between every unordered
// node pair {i<j} with probability p. p of 0 or 1 needs no RNG; anything
// in between requires WithSeed or WithRand.
//
// Pairs are visited i ascending, then j ascending, so a fixed seed always
// yields the same links.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return errors.Wrapf(ErrTooFewNodes, "RandomSparse: n=%d < %d", n, minRandomSparseNodes)
		}
		if p < 0 || p > 1 {
			return errors.Wrapf(ErrInvalidProbability, "RandomSparse: p=%.6f", p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return errors.Wrap(ErrNeedRandSource, "RandomSparse")
		}
		e := newEmitter(s, cfg)
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = e.node()
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					e.link(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

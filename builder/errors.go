package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid supply after construction.
var ErrConstructFailed = errors.New("builder: construction failed")

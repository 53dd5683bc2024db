// Package builder generates synthetic supply models for tests, benchmarks
// and demos of the connectivity checker.
//
// BuildSupply applies Constructors in order. Each constructor allocates node
// and link IDs above those already present, so composing constructors yields
// a supply whose components are disjoint islands:
//
//	s, err := builder.BuildSupply(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Grid(10, 10),     // main network
//		builder.Path(3),          // detached corridor
//		builder.Path(1),          // isolated node
//	)
//
// Options (WithDirection, WithModes, WithLinkType, WithTransitStops,
// WithLengthFn, WithSeed, WithRand) apply to every constructor of the call.
//
// Errors: ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Option constructors panic on nil arguments.
package builder

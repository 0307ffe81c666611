// Package builder generates deterministic test and benchmark graphs over
// core.Graph.
//
// A Constructor adds edges among the first n nodes of a graph; BuildGraph
// allocates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(100,
//		[]core.GraphOption{core.WithBacking(core.BackingMatrix)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
//		builder.Grid(10, 10))
//
// Stochastic constructors (RandomSparse) need an RNG from WithSeed or
// WithRand. The same seed, options and constructor order always produce the
// same graph, on either backing.
//
// Option constructors panic on meaningless input (nil functions, negative
// weights). Constructors themselves never panic; they return errors
// wrapping the sentinels in errors.go.
package builder

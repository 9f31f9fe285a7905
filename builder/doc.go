// Package builder assembles core.Graph fixtures in the functional-options
// style: a Constructor mutates a graph using a resolved builderConfig, and
// BuildGraph runs constructors in order on a fresh graph.
//
// The package offers:
//
//   - Constructors:
//     – RandomSparse(n, percent): nodes 1..n, every ordered pair (i, j), i ≠ j,
//     tried once in (i asc, j asc) order; a pair whose reverse edge already
//     exists is skipped; otherwise the edge is kept when a draw in [0,100) is
//     below percent. Kept edges take a weight from the configured WeightFn.
//     – SampleNetwork(): the six-node demonstration network.
//   - Convenience wrappers: NewRandomSparse and Sample.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand:   RNG for stochastic constructors.
//     – WithWeightFn:          edge weight policy.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   uniform integer in [1,10].
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: same seed, options and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the method name; they
//     never panic.
package builder

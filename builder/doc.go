// Package builder assembles deterministic digraph fixtures.
//
// A Constructor is a closure that mutates a *digraph.Graph[string, int64]
// using a resolved configuration. Build is the single orchestrator: it
// creates a fresh graph, resolves functional options into an immutable
// config, and applies the constructors in order, wrapping the first error
// with "Build: " context.
//
// Design contract:
//   - Determinism: the same options and constructor order always produce
//     identical graphs (node IDs via IDFn, weights via WeightFn).
//   - Safety: constructors never panic; they return sentinel errors
//     (ErrTooFewNodes, ErrNilConstructor) checked via errors.Is.
//   - Weight policy: with a WeightFn every emitted edge is weighted by
//     fn(i, j) over the endpoint indices; without one edges are unweighted.
//
// Topologies: Path(n), Cycle(n), Complete(n), Star(n). Edge emission order
// is documented per factory and stable, which keeps golden renders and
// cursor-walk tests reproducible.
package builder

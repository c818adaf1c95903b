// Package builder assembles deterministic fixture graphs on top of
// core.Graph: the shapes used by tests, property checks and `pathtrace demo`.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:      creates a core.Graph and applies Constructors in order.
//     – BuildSnapshot:   same, returning the immutable core.Snapshot.
//   - Topology constructors:
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(r, c),
//     RandomSparse(n, p).
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithIDScheme, WithWeightFn, WithLabels.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – SymbolIDFn:      single letters ("A","B",…).
//     – ExcelColumnIDFn: Excel-style columns ("A","Z","AA",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn, IntWeightFn.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical node order, edge order,
//     edge IDs and weights, hence identical snapshot fingerprints.
//   - Edge IDs are "e0","e1",… in emission order unless a core.WithIDGenerator
//     option is passed to BuildGraph.
//   - Weights are never negative: the weight helpers refuse negative ranges.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder

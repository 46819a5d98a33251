// Package builder produces deterministic graph fixtures for the trace
// engines, tests and demos.
//
// A fixture is assembled by BuildGraph from one or more Constructors. Each
// constructor appends its own component: vertex IDs continue from the
// previous one and its layout square sits to the right of the previous one,
// so BuildGraph(nil, Path(3), Path(2)) is a two-component graph.
//
// Key components:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//   - Options (BuilderOption):
//     – WithSeed / WithRand:        RNG for RandomSparse and weight draws.
//     – WithWeightFn:               per-edge weights (ConstantWeightFn,
//     UniformWeightFn, SequenceWeightFn).
//     – WithLabelScheme:            vertex labels (ExcelColumnLabelFn by
//     default, DecimalLabelFn, PrefixLabelFn).
//     – WithPartitionPrefix:        bipartite side labels.
//   - Layout: every vertex carries X/Y coordinates (circle for rings,
//     lattice for grids, columns for bipartite graphs).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with context.
//   - Default weights are DefaultEdgeWeight (1), which passes
//     core.Validate under both weight policies.
package builder

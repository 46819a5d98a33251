// Package prim_kruskal provides two step-tracing algorithms for computing the
// Minimum Spanning Tree (MST) of an undirected, positively weighted
// *core.Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that spans V with minimum total weight. On a disconnected
//     graph Kruskal yields a minimum spanning forest, and Prim spans only the
//     component of its root.
//
//   - Why trace it?
//     Every decision (which edges were considered, which was chosen, which
//     closed a cycle) is recorded as a step, so a viewer can walk the run
//     forward and backward without re-executing it.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, root int, opts ...Option) (*PrimResult, error)
//
//   - Strategy: keep inTree = {root}. Each round scans every edge in input
//     order, lists those with exactly one endpoint in the tree (search),
//     picks the cheapest with ties going to the first found (select-min) and
//     moves its outside endpoint into the tree (add-to-tree).
//
//   - When no edge leaves the tree while vertices remain outside, a
//     disconnected step is emitted. This is a valid terminal state, not an
//     error.
//
//   - Kruskal(g *core.Graph, opts ...Option) (*KruskalResult, error)
//
//   - Strategy: stable-sort all edges by weight (sort), then for each edge
//     (evaluate) union its endpoints when their roots differ (accept) or
//     discard it as a cycle (reject). All edges are scanned.
//
//   - Every step embeds a copy of the union-find parent/rank arrays
//     (disjoint.Set, full path compression, union by rank).
//
// Step Kinds
//
//	Prim:    init, search, select-min, add-to-tree, disconnected, final
//	Kruskal: init, sort, evaluate, accept | reject, final
//
// Both engines guarantee |tree edges| == |vertices reached| − |components|.
//
// Error Conditions
//
//   - ErrNilGraph        : graph is nil.
//   - ErrInvalidRootNode : Prim's root is not in the graph (wraps core.ErrVertexNotFound).
//   - ErrUnknownMethod   : Compute received an unknown method name.
//   - ErrOptionConflict  : Prim/Kruskal received WithMethod for the other
//     engine, or a WithRoot that is not Prim's root.
//
// Structural validity (no self-loops, positive weights, known endpoints) is
// checked by core.Validate(g, core.PositiveWeights) before the engines run.
//
// Determinism
//
//   - Edge iteration follows input order everywhere.
//   - Kruskal's sort is stable, so equal weights keep input order.
//   - Two runs on the same input produce identical traces.
//
// Replay
//
//	ReplayPrim / ReplayKruskal fold a trace prefix into the accepted edges
//	and running total using only the recorded steps.
package prim_kruskal

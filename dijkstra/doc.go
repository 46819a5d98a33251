// Package dijkstra provides a step-tracing implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Trace computes the minimum-cost distance from one source vertex to every
//     vertex, and records each decision as a Step in an immutable trace.
//   - The final step (Done) carries the distance and predecessor tables; the
//     Result also exposes them keyed by vertex ID.
//
// Step kinds, in emission order:
//
//	init           – queue seeded: source at 0, everything else at ∞.
//	extract-min    – closest queued vertex removed (remaining queue attached).
//	evaluate-edge  – one outgoing arc inspected.
//	relax          – the arc improved the destination's distance.
//	no-relax       – it did not.
//	finish-node    – the extracted vertex's distance is final.
//	unreachable    – the queue holds only ∞ vertices; the run ends early.
//	done           – final tables.
//
// For every extracted vertex the sequence is
// extract-min (evaluate-edge (relax|no-relax))* finish-node.
//
// Directedness:
//
//	By default every edge is traversable both ways, matching the undirected
//	MST engines. WithDirected() restricts traversal to From→To. Whichever
//	mode is chosen applies to the entire run.
//
// Determinism:
//
//   - Equal distances are extracted in vertex input order.
//   - Arcs are evaluated in destination-label order (stable on edge order).
//   - Two runs on the same input produce identical traces.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          the graph pointer is nil.
//   - ErrSourceNotSet:      Source(...) was not supplied.
//   - ErrInvalidSourceNode: the source is not a vertex of the graph.
//
// The graph itself is assumed to have passed
// core.Validate(g, core.NonNegativeWeights); structural defects are the
// caller's responsibility.
//
// API reference:
//
//	func Trace(g *core.Graph, opts ...Option) (*Result, error)
//	func Replay(g *core.Graph, tr *trace.Trace[Step], i int) (State, error)
//
// Thread safety:
//
//   - Each call owns its working state; concurrent calls need no locking.
//   - A returned trace is read-only and may be shared between goroutines.
package dijkstra

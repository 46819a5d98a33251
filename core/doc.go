// Package core provides the immutable graph model consumed by the trace
// engines in dijkstra and prim_kruskal.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices carry an integer ID, a display label and layout coordinates.
//   - Edges carry two vertex IDs and an int64 weight.
//   - Input order is preserved; it is the tie-breaker every engine uses.
//   - NewGraph copies its inputs; no method mutates a Graph afterwards.
//
// Why immutable?
//
//   - Engines allocate their own working state, so render annotations such
//     as "in tree" or "highlighted" never leak back into the caller's model.
//   - A Graph can be handed to several engines, or read from several
//     goroutines, without synchronization.
//
// Validation:
//
//	Validate(g, policy) is the boundary check run before any engine:
//	  – ErrNilGraph, ErrEmptyGraph
//	  – ErrNegativeVertexID, ErrDuplicateVertex
//	  – ErrUnknownVertex, ErrSelfLoop
//	  – ErrNonPositiveWeight (PositiveWeights, used by Prim/Kruskal)
//	  – ErrNegativeWeight    (NonNegativeWeights, used by Dijkstra)
//	  – ErrWeightOverflow    (sum of weights above MaxTotalWeight)
//	ValidateRoot(g, id) reports ErrVertexNotFound for a missing start vertex.
//
// Adjacency:
//
//	Adjacency(directed) returns per-vertex arc lists sorted by destination
//	label (stable on edge input order). Undirected mode mirrors every edge.
//
// Example:
//
//	g := core.NewGraph(
//	    []core.Vertex{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}},
//	    []core.Edge{{From: 0, To: 1, Weight: 4}},
//	)
//	if err := core.Validate(g, core.PositiveWeights); err != nil {
//	    log.Fatal(err)
//	}
package core

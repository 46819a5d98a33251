package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/disjoint"
	"github.com/katalvlaran/algoviz/trace"
)

// KruskalResult is the outcome of one Kruskal run.
//
// Edges are in acceptance order. Components maps every vertex ID to a dense
// component id (0 for the component of the first vertex, then in order of
// first appearance). len(Edges) == |V| − number of components.
type KruskalResult struct {
	Trace      *trace.Trace[KruskalStep]
	Edges      []core.Edge
	Total      int64
	Components map[int]int
}

// Kruskal computes a minimum spanning forest and records every decision.
// It uses disjoint.Set with full path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph       : graph is nil.
//   - ErrOptionConflict : WithMethod(MethodPrim) or any WithRoot.
//
// Only WithCheckpointInterval changes the run. The graph is otherwise
// assumed to have passed core.Validate(g, core.PositiveWeights), whose
// weight-sum bound keeps Total from overflowing.
//
// Steps:
//  1. init: one set per vertex.
//  2. sort: edge indices by ascending weight (sort.SliceStable, so ties keep
//     input order).
//  3. For every edge in sorted order: evaluate, then accept when the roots
//     of its endpoints differ (union) or reject when they coincide.
//  4. final: forest, total and component ids.
//
// Every step embeds the union-find arrays as they are after the step.
// All edges are scanned, even once |V|-1 have been accepted.
//
// Complexity: O(E log E + E·α(V)) for the search, plus O(V) per step for the
// union-find copies. Memory: O(E·V) for the trace.
func Kruskal(graph *core.Graph, opts ...Option) (*KruskalResult, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(MethodKruskal, 0, opts)
	if err != nil {
		return nil, err
	}

	// 2. Run.
	k := &kruskalRunner{
		g:   graph,
		pos: make(map[int]int, graph.VertexCount()),
		dsu: disjoint.New(graph.VertexCount()),
		rec: trace.NewRecorder[KruskalStep](graph.VertexCount(), graph.EdgeCount(), cfg.CheckpointInterval),
	}
	for i, v := range graph.Vertices() {
		k.pos[v.ID] = i
	}
	k.init()
	order := k.sortEdges()
	for i, ei := range order {
		k.evaluate(i, ei)
	}
	comps := k.final()

	// 3. Export.
	res := &KruskalResult{
		Trace:      k.rec.Freeze(),
		Edges:      make([]core.Edge, len(k.tree)),
		Total:      k.total,
		Components: make(map[int]int, len(comps)),
	}
	for i, ei := range k.tree {
		res.Edges[i] = graph.Edge(ei)
	}
	for p, c := range comps {
		res.Components[graph.VertexAt(p).ID] = c
	}

	return res, nil
}

// kruskalRunner holds the mutable state of one Kruskal execution.
type kruskalRunner struct {
	g     *core.Graph
	pos   map[int]int // vertex ID → position
	dsu   *disjoint.Set
	tree  []int // accepted edge indices
	total int64
	rec   *trace.Recorder[KruskalStep]
}

// snapshot copies the union-find arrays.
func (k *kruskalRunner) snapshot() UnionFind {
	return UnionFind{Parent: k.dsu.Parents(), Rank: k.dsu.Ranks()}
}

func (k *kruskalRunner) init() {
	k.rec.Append(KruskalInit{
		kruskalHeader: kruskalHeader{header{
			msg: fmt.Sprintf("Every vertex starts in its own set (%d sets)", k.dsu.Len()),
		}},
		UnionFind: k.snapshot(),
	})
}

func (k *kruskalRunner) sortEdges() []int {
	edges := k.g.Edges()
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight < edges[order[b]].Weight
	})

	k.rec.Append(Sort{
		kruskalHeader: kruskalHeader{header{
			msg: fmt.Sprintf("Sort %d edges by ascending weight", len(order)),
		}},
		Order:     append([]int(nil), order...),
		UnionFind: k.snapshot(),
	})

	return order
}

// evaluate emits evaluate for the i-th sorted edge ei, then accept or reject.
func (k *kruskalRunner) evaluate(i, ei int) {
	e := k.g.Edge(ei)
	name := k.g.EdgeLabel(ei)
	k.rec.Append(Evaluate{
		kruskalHeader: kruskalHeader{header{
			msg:   fmt.Sprintf("Evaluate %s (weight %d)", name, e.Weight),
			delta: trace.Delta{Edges: []trace.EdgeChange{{Edge: ei, Mark: trace.EdgeEvaluating}}},
		}},
		Index:     i,
		Edge:      ei,
		From:      e.From,
		To:        e.To,
		Weight:    e.Weight,
		UnionFind: k.snapshot(),
	})

	a, b := k.pos[e.From], k.pos[e.To]
	ra, rb := k.dsu.Find(a), k.dsu.Find(b)
	if ra == rb {
		k.rec.Append(Reject{
			kruskalHeader: kruskalHeader{header{
				msg:   fmt.Sprintf("Reject %s: both ends already in the set of %s", name, k.label(ra)),
				delta: trace.Delta{Edges: []trace.EdgeChange{{Edge: ei, Mark: trace.EdgeRejected}}},
			}},
			Edge:      ei,
			Root:      k.g.VertexAt(ra).ID,
			UnionFind: k.snapshot(),
		})
		return
	}

	k.dsu.Union(a, b)
	k.tree = append(k.tree, ei)
	k.total += e.Weight

	d := trace.Delta{Edges: []trace.EdgeChange{{Edge: ei, Mark: trace.EdgeInTree}}}
	for _, p := range [2]int{a, b} {
		if k.rec.VertexMark(p) != trace.VertexVisited {
			d.Vertices = append(d.Vertices, trace.VertexChange{Vertex: p, Mark: trace.VertexVisited})
		}
	}
	k.rec.Append(Accept{
		kruskalHeader: kruskalHeader{header{
			msg: fmt.Sprintf("Accept %s: join the sets of %s and %s; total %d",
				name, k.label(ra), k.label(rb), k.total),
			delta: d,
		}},
		Edge:      ei,
		RootFrom:  k.g.VertexAt(ra).ID,
		RootTo:    k.g.VertexAt(rb).ID,
		Weight:    e.Weight,
		Total:     k.total,
		Accepted:  len(k.tree),
		UnionFind: k.snapshot(),
	})
}

// final emits the terminal step and returns the component id per position.
func (k *kruskalRunner) final() []int {
	comps := k.dsu.Components()
	k.rec.Append(KruskalFinal{
		kruskalHeader: kruskalHeader{header{
			msg: fmt.Sprintf("Forest complete: %d edges, total weight %d, %d components",
				len(k.tree), k.total, k.dsu.Count()),
		}},
		Edges:      append([]int(nil), k.tree...),
		Total:      k.total,
		Components: append([]int(nil), comps...),
		UnionFind:  k.snapshot(),
	})

	return comps
}

func (k *kruskalRunner) label(pos int) string { return k.g.Label(k.g.VertexAt(pos).ID) }

package dijkstra

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// Result is the outcome of one engine run.
//
// Dist maps every vertex ID to its shortest distance (Infinity when
// unreachable). Prev maps every vertex ID to its predecessor on one
// shortest path (NoPredecessor for the source and unreachable vertices).
type Result struct {
	Trace  *trace.Trace[Step]
	Source int
	Dist   map[int]int64
	Prev   map[int]int
}

// PathTo reconstructs the vertex IDs of the shortest path Source → target.
// It returns false if target is unknown or unreachable.
func (r *Result) PathTo(target int) ([]int, bool) {
	d, ok := r.Dist[target]
	if !ok || d == Infinity {
		return nil, false
	}
	var rev []int
	for v := target; v != NoPredecessor; v = r.Prev[v] {
		rev = append(rev, v)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out, true
}

// Trace runs Dijkstra on g from the vertex selected by Source(...) and
// returns the full step trace together with the final tables.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be supplied (ErrSourceNotSet).
//  3. g must contain Source (ErrInvalidSourceNode).
//
// The graph is otherwise assumed to have passed
// core.Validate(g, core.NonNegativeWeights). No step is produced when an
// error is returned.
//
// Complexity:
//
//   - Time:  O((V + E) log V + V² log V) including queue snapshots.
//   - Space: O(V + E) plus the trace.
func Trace(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any step exists.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.sourceSet {
		return nil, ErrSourceNotSet
	}
	src, ok := g.IndexOf(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d: %w", ErrInvalidSourceNode, cfg.Source, core.ErrVertexNotFound)
	}

	// 3) Run.
	r := newRunner(g, cfg, src)
	r.init()
	r.process()
	r.done()

	// 4) Export tables keyed by vertex ID.
	res := &Result{
		Trace:  r.rec.Freeze(),
		Source: cfg.Source,
		Dist:   make(map[int]int64, len(r.ids)),
		Prev:   make(map[int]int, len(r.ids)),
	}
	for p, id := range r.ids {
		res.Dist[id] = r.dist[p]
		res.Prev[id] = r.prevID(p)
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	adj      [][]core.Arc // outgoing arcs per vertex position
	ids      []int        // vertex position → ID
	src      int          // source position
	dist     []int64      // best known distance per position
	prev     []int        // predecessor position, -1 if none
	prevEdge []int        // edge index providing dist, -1 if none
	items    []*nodeItem  // queue handle per position
	pq       nodePQ
	rec      *trace.Recorder[Step]
}

func newRunner(g *core.Graph, cfg Options, src int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:        g,
		adj:      g.Adjacency(cfg.Directed),
		ids:      make([]int, n),
		src:      src,
		dist:     make([]int64, n),
		prev:     make([]int, n),
		prevEdge: make([]int, n),
		items:    make([]*nodeItem, n),
		pq:       make(nodePQ, 0, n),
		rec:      trace.NewRecorder[Step](n, g.EdgeCount(), cfg.CheckpointInterval),
	}
	for p, v := range g.Vertices() {
		r.ids[p] = v.ID
	}

	return r
}

// init seeds distances and the queue, then emits the init step.
func (r *runner) init() {
	for p := range r.dist {
		r.dist[p] = Infinity
		r.prev[p] = -1
		r.prevEdge[p] = -1
	}
	r.dist[r.src] = 0

	for p := range r.dist {
		r.items[p] = &nodeItem{pos: p, dist: r.dist[p]}
		heap.Push(&r.pq, r.items[p])
	}

	r.rec.Append(Init{
		header: header{
			msg: fmt.Sprintf("Start at %s: distance 0, every other vertex ∞", r.label(r.src)),
			delta: trace.Delta{Vertices: []trace.VertexChange{
				{Vertex: r.src, Mark: trace.VertexFrontier},
			}},
		},
		Source: r.ids[r.src],
		Queue:  r.pq.snapshot(r.ids),
	})
}

// process is the main loop: extract the closest vertex, relax its arcs,
// finalize it. It stops when the queue is empty or holds only vertices at
// Infinity.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the minimum.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.pos

		// 2) Everything left is unreachable.
		if item.dist == Infinity {
			r.unreachable(u)
			return
		}

		// 3) Emit extract-min with the remaining queue.
		r.rec.Append(ExtractMin{
			header: header{
				msg: fmt.Sprintf("Extract %s with distance %s", r.label(u), fmtDist(item.dist)),
				delta: trace.Delta{Vertices: []trace.VertexChange{
					{Vertex: u, Mark: trace.VertexCurrent},
				}},
			},
			Vertex: r.ids[u],
			Dist:   item.dist,
			Queue:  r.pq.snapshot(r.ids),
		})

		// 4) Evaluate every outgoing arc.
		for _, arc := range r.adj[u] {
			r.relax(u, arc)
		}

		// 5) Finalize u; its predecessor edge becomes a shortest-path-tree edge.
		d := trace.Delta{Vertices: []trace.VertexChange{{Vertex: u, Mark: trace.VertexVisited}}}
		if pe := r.prevEdge[u]; pe >= 0 {
			d.Edges = []trace.EdgeChange{{Edge: pe, Mark: trace.EdgeInTree}}
		}
		r.rec.Append(FinishNode{
			header: header{
				msg:   fmt.Sprintf("%s is final at distance %s", r.label(u), fmtDist(r.dist[u])),
				delta: d,
			},
			Vertex: r.ids[u],
			Dist:   r.dist[u],
		})
	}
}

// relax emits evaluate-edge for u→arc.To followed by relax or no-relax.
func (r *runner) relax(u int, arc core.Arc) {
	v := arc.To
	cand := addSat(r.dist[u], arc.Weight)
	prior := r.rec.EdgeMark(arc.Edge)

	r.rec.Append(EvaluateEdge{
		header: header{
			msg: fmt.Sprintf("Evaluate %s→%s (weight %d): %s + %d = %s vs %s",
				r.label(u), r.label(v), arc.Weight,
				fmtDist(r.dist[u]), arc.Weight, fmtDist(cand), fmtDist(r.dist[v])),
			delta: trace.Delta{Edges: []trace.EdgeChange{{Edge: arc.Edge, Mark: trace.EdgeEvaluating}}},
		},
		Edge:      arc.Edge,
		From:      r.ids[u],
		To:        r.ids[v],
		Weight:    arc.Weight,
		FromDist:  r.dist[u],
		ToDist:    r.dist[v],
		Candidate: cand,
	})

	// Not strictly better: leave v alone and restore the edge's mark.
	if cand >= r.dist[v] {
		r.rec.Append(NoRelax{
			header: header{
				msg: fmt.Sprintf("No improvement for %s: %s ≥ %s",
					r.label(v), fmtDist(cand), fmtDist(r.dist[v])),
				delta: trace.Delta{Edges: []trace.EdgeChange{{Edge: arc.Edge, Mark: prior}}},
			},
			Edge:      arc.Edge,
			Vertex:    r.ids[v],
			Dist:      r.dist[v],
			Candidate: cand,
		})
		return
	}

	old, oldPrev, oldEdge := r.dist[v], r.prevID(v), r.prevEdge[v]
	r.dist[v] = cand
	r.prev[v] = u
	r.prevEdge[v] = arc.Edge
	if it := r.items[v]; it.index >= 0 {
		r.pq.decrease(it, cand)
	}

	d := trace.Delta{
		Vertices: []trace.VertexChange{{Vertex: v, Mark: trace.VertexFrontier}},
	}
	if oldEdge >= 0 && oldEdge != arc.Edge {
		d.Edges = append(d.Edges, trace.EdgeChange{Edge: oldEdge, Mark: trace.EdgeDefault})
	}
	d.Edges = append(d.Edges, trace.EdgeChange{Edge: arc.Edge, Mark: trace.EdgeRelaxed})

	r.rec.Append(Relax{
		header: header{
			msg: fmt.Sprintf("Relax %s: %s → %s via %s",
				r.label(v), fmtDist(old), fmtDist(cand), r.label(u)),
			delta: d,
		},
		Edge:    arc.Edge,
		Vertex:  r.ids[v],
		OldDist: old,
		NewDist: cand,
		OldPrev: oldPrev,
		NewPrev: r.ids[u],
	})
}

// unreachable emits the early-termination step for first and every vertex
// still queued.
func (r *runner) unreachable(first int) {
	rest := r.pq.ordered()
	ids := make([]int, 0, len(rest)+1)
	labels := make([]string, 0, len(rest)+1)
	d := trace.Delta{}
	add := func(pos int) {
		ids = append(ids, r.ids[pos])
		labels = append(labels, r.label(pos))
		d.Vertices = append(d.Vertices, trace.VertexChange{Vertex: pos, Mark: trace.VertexUnreachable})
	}
	add(first)
	for _, it := range rest {
		add(it.pos)
	}
	// Drain so the queue reflects the terminal state.
	r.pq = r.pq[:0]

	r.rec.Append(Unreachable{
		header: header{
			msg:   fmt.Sprintf("Unreachable from %s: %s", r.label(r.src), strings.Join(labels, ", ")),
			delta: d,
		},
		Vertices: ids,
	})
}

// done emits the terminal step with copies of the final tables.
func (r *runner) done() {
	prev := make([]int, len(r.prev))
	for p := range prev {
		prev[p] = r.prevID(p)
	}
	r.rec.Append(Done{
		header: header{
			msg: fmt.Sprintf("Shortest distances from %s are final", r.label(r.src)),
		},
		Dist: append([]int64(nil), r.dist...),
		Prev: prev,
	})
}

// prevID returns the predecessor of position p as a vertex ID.
func (r *runner) prevID(p int) int {
	if r.prev[p] < 0 {
		return NoPredecessor
	}

	return r.ids[r.prev[p]]
}

func (r *runner) label(pos int) string { return r.g.Label(r.ids[pos]) }

// addSat returns a+b, saturating at Infinity. Both operands are non-negative.
func addSat(a, b int64) int64 {
	if a == Infinity || b >= Infinity-a {
		return Infinity
	}

	return a + b
}

// fmtDist renders Infinity as ∞.
func fmtDist(d int64) string {
	if d == Infinity {
		return "∞"
	}

	return fmt.Sprintf("%d", d)
}

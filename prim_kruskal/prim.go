package prim_kruskal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// PrimResult is the outcome of one Prim run.
//
// Edges are in acceptance order; Reached lists the vertex IDs of the tree
// (root first). On a disconnected graph only the root's component is
// spanned and len(Edges) == len(Reached)-1.
type PrimResult struct {
	Trace   *trace.Trace[PrimStep]
	Root    int
	Edges   []core.Edge
	Total   int64
	Reached []int
}

// Prim grows a minimum spanning tree from root and records every decision.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrInvalidRootNode : root is not a vertex of graph (wraps core.ErrVertexNotFound).
//   - ErrOptionConflict  : WithMethod(MethodKruskal), or WithRoot with another root.
//
// Only WithCheckpointInterval changes the run. The graph is otherwise
// assumed to have passed core.Validate(g, core.PositiveWeights), whose
// weight-sum bound keeps Total from overflowing. Running out of candidates is not
// an error: a disconnected step is emitted and the partial tree returned.
//
// Steps:
//  1. init: inTree = {root}.
//  2. While some vertex is outside the tree:
//     a. search: scan every edge in input order, keep those with exactly one
//     endpoint in the tree.
//     b. No candidate → disconnected, stop.
//     c. select-min: strictly cheapest candidate, so ties go to the first found.
//     d. add-to-tree: move the outside endpoint in, accumulate the weight.
//  3. final.
//
// Complexity: O(V·E) time, since each iteration rescans all edges.
// Memory: O(V + E) plus the trace.
func Prim(graph *core.Graph, root int, opts ...Option) (*PrimResult, error) {
	// 1. Validate inputs before any step exists.
	if graph == nil {
		return nil, ErrNilGraph
	}
	rootPos, ok := graph.IndexOf(root)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d: %w", ErrInvalidRootNode, root, core.ErrVertexNotFound)
	}
	cfg, err := resolve(MethodPrim, root, opts)
	if err != nil {
		return nil, err
	}

	// 2. Run.
	p := newPrimRunner(graph, rootPos, cfg.CheckpointInterval)
	p.init()
	for len(p.reached) < len(p.inTree) {
		cands := p.search()
		if len(cands) == 0 {
			p.disconnected()
			break
		}
		best := p.selectMin(cands)
		p.add(best)
	}
	p.final()

	// 3. Export.
	res := &PrimResult{
		Trace:   p.rec.Freeze(),
		Root:    root,
		Edges:   make([]core.Edge, len(p.tree)),
		Total:   p.total,
		Reached: make([]int, len(p.reached)),
	}
	for i, ei := range p.tree {
		res.Edges[i] = graph.Edge(ei)
	}
	for i, pos := range p.reached {
		res.Reached[i] = graph.VertexAt(pos).ID
	}

	return res, nil
}

// primRunner holds the mutable state of one Prim execution.
type primRunner struct {
	g       *core.Graph
	pos     map[int]int // vertex ID → position
	inTree  []bool      // per position
	reached []int       // positions in acceptance order
	tree    []int       // edge indices in acceptance order
	total   int64
	marked  []int // edges currently shown as candidates
	rec     *trace.Recorder[PrimStep]
}

func newPrimRunner(g *core.Graph, root, interval int) *primRunner {
	n := g.VertexCount()
	p := &primRunner{
		g:       g,
		pos:     make(map[int]int, n),
		inTree:  make([]bool, n),
		reached: make([]int, 0, n),
		rec:     trace.NewRecorder[PrimStep](n, g.EdgeCount(), interval),
	}
	for i, v := range g.Vertices() {
		p.pos[v.ID] = i
	}
	p.inTree[root] = true
	p.reached = append(p.reached, root)

	return p
}

func (p *primRunner) init() {
	root := p.reached[0]
	p.rec.Append(PrimInit{
		primHeader: primHeader{header{
			msg:   fmt.Sprintf("Start the tree at %s", p.label(root)),
			delta: trace.Delta{Vertices: []trace.VertexChange{{Vertex: root, Mark: trace.VertexVisited}}},
		}},
		Root: p.g.VertexAt(root).ID,
	})
}

// search collects every edge crossing the cut and emits the search step.
func (p *primRunner) search() []Candidate {
	var (
		cands []Candidate
		d     trace.Delta
	)
	for i, e := range p.g.Edges() {
		a, b := p.pos[e.From], p.pos[e.To]
		if p.inTree[a] == p.inTree[b] {
			continue
		}
		in, out := e.From, e.To
		if p.inTree[b] {
			in, out = e.To, e.From
		}
		cands = append(cands, Candidate{Edge: i, Inside: in, Outside: out, Weight: e.Weight})
	}

	// Candidates of the previous round that are now internal go back to default.
	current := make(map[int]bool, len(cands))
	for _, c := range cands {
		current[c.Edge] = true
	}
	for _, ei := range p.marked {
		if !current[ei] {
			d.Edges = append(d.Edges, trace.EdgeChange{Edge: ei, Mark: trace.EdgeDefault})
		}
	}
	p.marked = p.marked[:0]
	for _, c := range cands {
		p.marked = append(p.marked, c.Edge)
		if p.rec.EdgeMark(c.Edge) != trace.EdgeCandidate {
			d.Edges = append(d.Edges, trace.EdgeChange{Edge: c.Edge, Mark: trace.EdgeCandidate})
		}
		if op := p.pos[c.Outside]; p.rec.VertexMark(op) != trace.VertexFrontier {
			d.Vertices = append(d.Vertices, trace.VertexChange{Vertex: op, Mark: trace.VertexFrontier})
		}
	}

	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = fmt.Sprintf("%s:%d", p.g.EdgeLabel(c.Edge), c.Weight)
	}
	msg := "No edge leaves the tree"
	if len(cands) > 0 {
		msg = fmt.Sprintf("Candidates leaving the tree: %s", strings.Join(names, ", "))
	}
	p.rec.Append(Search{
		primHeader: primHeader{header{msg: msg, delta: d}},
		Candidates: append([]Candidate(nil), cands...),
	})

	return cands
}

// selectMin emits select-min for the first strictly cheapest candidate.
func (p *primRunner) selectMin(cands []Candidate) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Weight < best.Weight {
			best = c
		}
	}
	p.rec.Append(SelectMin{
		primHeader: primHeader{header{
			msg:   fmt.Sprintf("Cheapest candidate is %s (weight %d)", p.g.EdgeLabel(best.Edge), best.Weight),
			delta: trace.Delta{Edges: []trace.EdgeChange{{Edge: best.Edge, Mark: trace.EdgeSelected}}},
		}},
		Candidate: best,
	})

	return best
}

// add moves c.Outside into the tree.
func (p *primRunner) add(c Candidate) {
	v := p.pos[c.Outside]
	p.inTree[v] = true
	p.reached = append(p.reached, v)
	p.tree = append(p.tree, c.Edge)
	p.total += c.Weight
	p.dropMarked(c.Edge)

	p.rec.Append(AddToTree{
		primHeader: primHeader{header{
			msg: fmt.Sprintf("Add %s to the tree via %s; total %d",
				p.label(v), p.g.EdgeLabel(c.Edge), p.total),
			delta: trace.Delta{
				Vertices: []trace.VertexChange{{Vertex: v, Mark: trace.VertexVisited}},
				Edges:    []trace.EdgeChange{{Edge: c.Edge, Mark: trace.EdgeInTree}},
			},
		}},
		Edge:     c.Edge,
		Vertex:   c.Outside,
		Weight:   c.Weight,
		Total:    p.total,
		TreeSize: len(p.reached),
	})
}

// disconnected emits the early-termination step.
func (p *primRunner) disconnected() {
	var (
		ids    []int
		labels []string
		d      trace.Delta
	)
	for pos, in := range p.inTree {
		if in {
			continue
		}
		ids = append(ids, p.g.VertexAt(pos).ID)
		labels = append(labels, p.label(pos))
		d.Vertices = append(d.Vertices, trace.VertexChange{Vertex: pos, Mark: trace.VertexUnreachable})
	}
	p.rec.Append(Disconnected{
		primHeader: primHeader{header{
			msg:   fmt.Sprintf("Not reachable from the tree: %s", strings.Join(labels, ", ")),
			delta: d,
		}},
		Unreached: ids,
	})
}

// final clears leftover candidate marks and emits the terminal step.
func (p *primRunner) final() {
	var d trace.Delta
	for _, ei := range p.marked {
		d.Edges = append(d.Edges, trace.EdgeChange{Edge: ei, Mark: trace.EdgeDefault})
	}
	p.marked = nil

	reached := make([]int, len(p.reached))
	for i, pos := range p.reached {
		reached[i] = p.g.VertexAt(pos).ID
	}
	p.rec.Append(PrimFinal{
		primHeader: primHeader{header{
			msg:   fmt.Sprintf("Tree complete: %d edges, total weight %d", len(p.tree), p.total),
			delta: d,
		}},
		Edges:   append([]int(nil), p.tree...),
		Total:   p.total,
		Reached: reached,
	})
}

// dropMarked removes ei from the candidate set without emitting a change.
func (p *primRunner) dropMarked(ei int) {
	for i, m := range p.marked {
		if m == ei {
			p.marked = append(p.marked[:i], p.marked[i+1:]...)
			return
		}
	}
}

func (p *primRunner) label(pos int) string { return p.g.Label(p.g.VertexAt(pos).ID) }

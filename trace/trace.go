// Package trace: Recorder (append phase) and Trace (frozen phase).
//
// Lifecycle:
//
//	rec := trace.NewRecorder[S](nv, ne, interval)
//	rec.Append(step) ...   // strictly in decision order
//	tr := rec.Freeze()     // immutable from here on
//
// Frame reconstruction:
//
//	Checkpoint k stores the frame *before* step k·interval. Frame(i) clones
//	checkpoint ⌊i/interval⌋ and replays at most interval deltas, so random
//	access costs O(V + E + interval·|Δ|) while memory stays
//	O(steps·|Δ| + (steps/interval)·(V + E)).

package trace

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Recorder collects steps in emission order. It is owned by a single engine
// run and is not safe for concurrent use.
type Recorder[S Step] struct {
	interval    int
	steps       []S
	current     Frame   // marks after the last appended step
	checkpoints []Frame // checkpoints[k] = frame before step k*interval
	frozen      bool
}

// NewRecorder returns a recorder for a graph with nv vertices and ne edges.
// interval <= 0 selects DefaultCheckpointInterval.
func NewRecorder[S Step](nv, ne, interval int) *Recorder[S] {
	if interval <= 0 {
		interval = DefaultCheckpointInterval
	}

	return &Recorder[S]{
		interval: interval,
		current:  NewFrame(nv, ne),
	}
}

// Append records s and applies its delta to the running frame.
// Appending after Freeze is a programmer error and panics with ErrFrozen.
func (r *Recorder[S]) Append(s S) {
	if r.frozen {
		panic(ErrFrozen)
	}
	if len(r.steps)%r.interval == 0 {
		r.checkpoints = append(r.checkpoints, r.current.Clone())
	}
	r.steps = append(r.steps, s)
	r.current.Apply(s.Delta())
}

// Len returns the number of recorded steps.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// VertexMark returns the current mark of the vertex at position pos.
func (r *Recorder[S]) VertexMark(pos int) VertexMark { return r.current.Vertices[pos] }

// EdgeMark returns the current mark of edge i.
func (r *Recorder[S]) EdgeMark(i int) EdgeMark { return r.current.Edges[i] }

// Freeze ends the append phase and returns the immutable trace. The
// recorder must not be used afterwards.
func (r *Recorder[S]) Freeze() *Trace[S] {
	r.frozen = true

	return &Trace[S]{
		interval:    r.interval,
		steps:       r.steps,
		checkpoints: r.checkpoints,
		nv:          len(r.current.Vertices),
		ne:          len(r.current.Edges),
	}
}

// Trace is an ordered, immutable sequence of steps. All methods are safe for
// concurrent use; returned step values share payload slices with the trace
// and must be treated as read-only.
type Trace[S Step] struct {
	interval    int
	steps       []S
	checkpoints []Frame
	nv, ne      int
}

// Len returns the number of steps.
func (t *Trace[S]) Len() int { return len(t.steps) }

// At returns step i. It panics if i is out of range, like a slice index.
func (t *Trace[S]) At(i int) S { return t.steps[i] }

// Last returns the terminal step. It panics on an empty trace.
func (t *Trace[S]) Last() S { return t.steps[len(t.steps)-1] }

// Steps returns a copy of the step slice.
func (t *Trace[S]) Steps() []S { return append([]S(nil), t.steps...) }

// Kinds returns the kind of every step in order.
func (t *Trace[S]) Kinds() []Kind {
	out := make([]Kind, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Kind()
	}

	return out
}

// Count returns how many steps have kind k.
func (t *Trace[S]) Count(k Kind) int {
	n := 0
	for _, s := range t.steps {
		if s.Kind() == k {
			n++
		}
	}

	return n
}

// Frame reconstructs the marks as they are after step i has been applied.
func (t *Trace[S]) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(t.steps) {
		return Frame{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, i, len(t.steps))
	}
	k := i / t.interval
	f := t.checkpoints[k].Clone()
	for j := k * t.interval; j <= i; j++ {
		f.Apply(t.steps[j].Delta())
	}

	return f, nil
}

// SceneVertex is a value copy of a vertex with its render mark.
type SceneVertex struct {
	core.Vertex
	Mark VertexMark `json:"mark"`
}

// SceneEdge is a value copy of an edge with its index and render mark.
type SceneEdge struct {
	core.Edge
	Index int      `json:"index"`
	Mark  EdgeMark `json:"mark"`
}

// Scene is a renderable snapshot of one step: the graph's vertices and
// edges annotated with the marks in effect after that step.
type Scene struct {
	Step     int           `json:"step"`
	Kind     Kind          `json:"kind"`
	Message  string        `json:"message"`
	Vertices []SceneVertex `json:"vertices"`
	Edges    []SceneEdge   `json:"edges"`
}

// Scene builds the snapshot for step i over g. g must be the graph the trace
// was recorded from (same vertex and edge counts), else ErrGraphMismatch.
func (t *Trace[S]) Scene(g *core.Graph, i int) (Scene, error) {
	if g == nil || g.VertexCount() != t.nv || g.EdgeCount() != t.ne {
		return Scene{}, ErrGraphMismatch
	}
	f, err := t.Frame(i)
	if err != nil {
		return Scene{}, err
	}

	s := t.steps[i]
	sc := Scene{
		Step:     i,
		Kind:     s.Kind(),
		Message:  s.Message(),
		Vertices: make([]SceneVertex, t.nv),
		Edges:    make([]SceneEdge, t.ne),
	}
	for p, v := range g.Vertices() {
		sc.Vertices[p] = SceneVertex{Vertex: v, Mark: f.Vertices[p]}
	}
	for ei, e := range g.Edges() {
		sc.Edges[ei] = SceneEdge{Edge: e, Index: ei, Mark: f.Edges[ei]}
	}

	return sc, nil
}

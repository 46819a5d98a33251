package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// State is the algorithm state reconstructed from a trace prefix. Slices
// are indexed by vertex position; Prev holds vertex IDs or NoPredecessor.
type State struct {
	Dist        []int64
	Prev        []int
	Finalized   []bool
	Unreachable []bool
}

// Replay folds steps 0..i of tr into a State by applying only the mutation
// each step states: init seeds the tables, relax rewrites one entry,
// finish-node and unreachable flag vertices. It never re-runs the search,
// so replaying the whole trace reproduces the final tables exactly when the
// trace is lossless.
//
// g must be the graph tr was recorded from.
func Replay(g *core.Graph, tr *trace.Trace[Step], i int) (State, error) {
	if i < 0 || i >= tr.Len() {
		return State{}, fmt.Errorf("%w: %d not in [0,%d)", trace.ErrStepOutOfRange, i, tr.Len())
	}
	n := g.VertexCount()
	st := State{
		Dist:        make([]int64, n),
		Prev:        make([]int, n),
		Finalized:   make([]bool, n),
		Unreachable: make([]bool, n),
	}
	pos := func(id int) int {
		p, _ := g.IndexOf(id)
		return p
	}

	for j := 0; j <= i; j++ {
		switch s := tr.At(j).(type) {
		case Init:
			for p := range st.Dist {
				st.Dist[p] = Infinity
				st.Prev[p] = NoPredecessor
			}
			st.Dist[pos(s.Source)] = 0
		case Relax:
			p := pos(s.Vertex)
			st.Dist[p] = s.NewDist
			st.Prev[p] = s.NewPrev
		case FinishNode:
			st.Finalized[pos(s.Vertex)] = true
		case Unreachable:
			for _, id := range s.Vertices {
				st.Unreachable[pos(id)] = true
			}
		}
	}

	return st, nil
}

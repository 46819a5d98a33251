package dijkstra_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/trace"
)

// abc returns vertices A, B, C with IDs 0, 1, 2.
func abc() []core.Vertex {
	return []core.Vertex{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}, {ID: 2, Label: "C"}}
}

// randomGraph builds a connected-ish graph with n vertices and m extra edges.
func randomGraph(rng *rand.Rand, n, m int, maxW int64) *core.Graph {
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.Vertex{ID: i * 10, Label: fmt.Sprintf("v%02d", i)}
	}
	var es []core.Edge
	for i := 1; i < n; i++ {
		if rng.Intn(5) == 0 {
			continue // leave some vertices disconnected
		}
		j := rng.Intn(i)
		es = append(es, core.Edge{From: j * 10, To: i * 10, Weight: rng.Int63n(maxW + 1)})
	}
	for k := 0; k < m; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		es = append(es, core.Edge{From: a * 10, To: b * 10, Weight: rng.Int63n(maxW + 1)})
	}

	return core.NewGraph(vs, es)
}

// bruteForce enumerates every simple path from src and keeps the cheapest
// per destination. Only usable on small graphs.
func bruteForce(g *core.Graph, src int, directed bool) map[int]int64 {
	best := make(map[int]int64, g.VertexCount())
	for _, v := range g.Vertices() {
		best[v.ID] = dijkstra.Infinity
	}
	onPath := map[int]bool{}
	var walk func(u int, cost int64)
	walk = func(u int, cost int64) {
		if cost < best[u] {
			best[u] = cost
		}
		onPath[u] = true
		for _, e := range g.Edges() {
			next := -1
			switch {
			case e.From == u:
				next = e.To
			case !directed && e.To == u:
				next = e.From
			}
			if next >= 0 && !onPath[next] {
				walk(next, cost+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestTrace_Validation(t *testing.T) {
	g := core.NewGraph(abc(), nil)

	_, err := dijkstra.Trace(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Trace(g)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotSet)

	_, err = dijkstra.Trace(g, dijkstra.Source(99))
	assert.ErrorIs(t, err, dijkstra.ErrInvalidSourceNode)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestWithCheckpointInterval_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithCheckpointInterval(0) })
	assert.NotPanics(t, func() { dijkstra.WithCheckpointInterval(1) })
}

func TestTrace_Chain(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
	})
	require.NoError(t, core.Validate(g, core.NonNegativeWeights))

	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, map[int]int64{0: 0, 1: 5, 2: 8}, res.Dist)
	assert.Equal(t, map[int]int{0: dijkstra.NoPredecessor, 1: 0, 2: 1}, res.Prev)

	want := []trace.Kind{
		dijkstra.KindInit,
		dijkstra.KindExtractMin, dijkstra.KindEvaluateEdge, dijkstra.KindRelax, dijkstra.KindFinishNode,
		dijkstra.KindExtractMin,
		dijkstra.KindEvaluateEdge, dijkstra.KindNoRelax, // B→A
		dijkstra.KindEvaluateEdge, dijkstra.KindRelax, // B→C
		dijkstra.KindFinishNode,
		dijkstra.KindExtractMin, dijkstra.KindEvaluateEdge, dijkstra.KindNoRelax, dijkstra.KindFinishNode,
		dijkstra.KindDone,
	}
	assert.Equal(t, want, res.Trace.Kinds())

	done, ok := res.Trace.Last().(dijkstra.Done)
	require.True(t, ok)
	assert.Equal(t, []int64{0, 5, 8}, done.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, done.Prev)

	path, ok := res.PathTo(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)

	// Final frame: every vertex visited, both edges in the tree.
	f, err := res.Trace.Frame(res.Trace.Len() - 1)
	require.NoError(t, err)
	for p, m := range f.Vertices {
		assert.Equal(t, trace.VertexVisited, m, "vertex %d", p)
	}
	assert.Equal(t, []trace.EdgeMark{trace.EdgeInTree, trace.EdgeInTree}, f.Edges)
}

func TestTrace_Directed(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
	})

	res, err := dijkstra.Trace(g, dijkstra.Source(0), dijkstra.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{0: 0, 1: 5, 2: 8}, res.Dist)
	assert.Equal(t, 0, res.Trace.Count(dijkstra.KindNoRelax))
	assert.Equal(t, 12, res.Trace.Len())

	// Against the edge direction nothing is reachable.
	res, err = dijkstra.Trace(g, dijkstra.Source(2), dijkstra.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, res.Dist[0])
	assert.Equal(t, dijkstra.Infinity, res.Dist[1])
	assert.Equal(t, int64(0), res.Dist[2])
}

func TestTrace_Disconnected(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{{From: 0, To: 1, Weight: 5}})

	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
	assert.Equal(t, dijkstra.NoPredecessor, res.Prev[2])
	_, ok := res.PathTo(2)
	assert.False(t, ok)

	require.Equal(t, 1, res.Trace.Count(dijkstra.KindUnreachable))
	n := res.Trace.Len()
	u, ok := res.Trace.At(n - 2).(dijkstra.Unreachable)
	require.True(t, ok, "unreachable must directly precede done")
	assert.Equal(t, []int{2}, u.Vertices)
	assert.Equal(t, dijkstra.KindDone, res.Trace.At(n-1).Kind())

	f, err := res.Trace.Frame(n - 1)
	require.NoError(t, err)
	assert.Equal(t, trace.VertexUnreachable, f.Vertices[2])
}

func TestTrace_SingleVertex(t *testing.T) {
	g := core.NewGraph([]core.Vertex{{ID: 7, Label: "X"}}, nil)

	res, err := dijkstra.Trace(g, dijkstra.Source(7))
	require.NoError(t, err)
	assert.Equal(t, []trace.Kind{
		dijkstra.KindInit, dijkstra.KindExtractMin, dijkstra.KindFinishNode, dijkstra.KindDone,
	}, res.Trace.Kinds())
	assert.Equal(t, map[int]int64{7: 0}, res.Dist)
}

func TestTrace_ZeroWeights(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
	})

	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{0: 0, 1: 0, 2: 0}, res.Dist)
}

func TestTrace_TieBreakByInputOrder(t *testing.T) {
	// A-B:1, A-C:1, B-D:1, C-D:1. B is extracted before C, so D comes via B.
	vs := append(abc(), core.Vertex{ID: 3, Label: "D"})
	g := core.NewGraph(vs, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})

	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)
	path, ok := res.PathTo(3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3}, path)

	var extracted []int
	for _, s := range res.Trace.Steps() {
		if em, ok := s.(dijkstra.ExtractMin); ok {
			extracted = append(extracted, em.Vertex)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, extracted)
}

func TestTrace_QueueSnapshots(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
	})
	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)

	first, ok := res.Trace.At(0).(dijkstra.Init)
	require.True(t, ok)
	assert.Equal(t, []dijkstra.QueueEntry{
		{Vertex: 0, Dist: 0},
		{Vertex: 1, Dist: dijkstra.Infinity},
		{Vertex: 2, Dist: dijkstra.Infinity},
	}, first.Queue)

	em, ok := res.Trace.At(5).(dijkstra.ExtractMin)
	require.True(t, ok)
	assert.Equal(t, 1, em.Vertex)
	assert.Equal(t, []dijkstra.QueueEntry{{Vertex: 2, Dist: dijkstra.Infinity}}, em.Queue)
}

// TestTrace_RandomAgainstReference checks distances against exhaustive path
// enumeration and the structural ordering of steps on random graphs.
func TestTrace_RandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 60; iter++ {
		g := randomGraph(rng, 2+rng.Intn(6), rng.Intn(10), 9)
		directed := iter%2 == 1
		opts := []dijkstra.Option{dijkstra.Source(0)}
		if directed {
			opts = append(opts, dijkstra.WithDirected())
		}

		res, err := dijkstra.Trace(g, opts...)
		require.NoError(t, err)
		if diff := cmp.Diff(bruteForce(g, 0, directed), res.Dist); diff != "" {
			t.Fatalf("iter %d: distance mismatch (-want +got):\n%s", iter, diff)
		}

		// Predecessors reproduce the distances.
		for id, p := range res.Prev {
			if p == dijkstra.NoPredecessor {
				continue
			}
			assert.Less(t, res.Dist[p], dijkstra.Infinity)
			assert.GreaterOrEqual(t, res.Dist[id], res.Dist[p])
		}

		checkOrdering(t, res.Trace)

		// Replaying the whole trace matches the done step.
		st, err := dijkstra.Replay(g, res.Trace, res.Trace.Len()-1)
		require.NoError(t, err)
		done := res.Trace.Last().(dijkstra.Done)
		assert.Equal(t, done.Dist, st.Dist)
		assert.Equal(t, done.Prev, st.Prev)
	}
}

// checkOrdering asserts extract-min (evaluate-edge (relax|no-relax))*
// finish-node per vertex, non-decreasing final distances, and at most one
// extraction per vertex.
func checkOrdering(t *testing.T, tr *trace.Trace[dijkstra.Step]) {
	t.Helper()
	seen := map[int]bool{}
	var last int64 = -1
	inVertex := false
	for i := 0; i < tr.Len(); i++ {
		switch s := tr.At(i).(type) {
		case dijkstra.ExtractMin:
			require.False(t, inVertex, "step %d: nested extract-min", i)
			require.False(t, seen[s.Vertex], "step %d: vertex %d extracted twice", i, s.Vertex)
			require.GreaterOrEqual(t, s.Dist, last)
			for _, q := range s.Queue {
				require.False(t, seen[q.Vertex], "finished vertex %d still queued", q.Vertex)
			}
			seen[s.Vertex], last, inVertex = true, s.Dist, true
		case dijkstra.EvaluateEdge:
			require.True(t, inVertex)
			next := tr.At(i + 1).Kind()
			require.Contains(t, []trace.Kind{dijkstra.KindRelax, dijkstra.KindNoRelax}, next)
		case dijkstra.Relax:
			require.Less(t, s.NewDist, s.OldDist)
		case dijkstra.FinishNode:
			require.True(t, inVertex)
			inVertex = false
		}
	}
	require.False(t, inVertex)
}

func TestTrace_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randomGraph(rng, 15, 30, 20)

	a, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)
	b, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)

	all := cmp.Exporter(func(reflect.Type) bool { return true })
	if diff := cmp.Diff(a.Trace.Steps(), b.Trace.Steps(), all); diff != "" {
		t.Fatalf("traces differ (-a +b):\n%s", diff)
	}
}

func TestReplay_Prefix(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 3},
	})
	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)

	st, err := dijkstra.Replay(g, res.Trace, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, dijkstra.Infinity, dijkstra.Infinity}, st.Dist)
	assert.Equal(t, []bool{false, false, false}, st.Finalized)

	st, err = dijkstra.Replay(g, res.Trace, 4) // finish A
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, dijkstra.Infinity}, st.Dist)
	assert.Equal(t, []bool{true, false, false}, st.Finalized)

	_, err = dijkstra.Replay(g, res.Trace, res.Trace.Len())
	assert.True(t, errors.Is(err, trace.ErrStepOutOfRange))
}

func TestTrace_CheckpointIntervalDoesNotChangeFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGraph(rng, 10, 15, 9)

	a, err := dijkstra.Trace(g, dijkstra.Source(0), dijkstra.WithCheckpointInterval(1))
	require.NoError(t, err)
	b, err := dijkstra.Trace(g, dijkstra.Source(0), dijkstra.WithCheckpointInterval(1000))
	require.NoError(t, err)

	require.Equal(t, a.Trace.Len(), b.Trace.Len())
	for i := 0; i < a.Trace.Len(); i++ {
		fa, err := a.Trace.Frame(i)
		require.NoError(t, err)
		fb, err := b.Trace.Frame(i)
		require.NoError(t, err)
		require.Equal(t, fa, fb, "frame %d", i)
	}
}

// The largest distance a valid graph can produce stays distinct from Infinity.
func TestTrace_LargestFiniteDistance(t *testing.T) {
	g := core.NewGraph(abc(), []core.Edge{
		{From: 0, To: 1, Weight: core.MaxTotalWeight - 1},
		{From: 1, To: 2, Weight: 1},
	})
	require.NoError(t, core.Validate(g, core.NonNegativeWeights))

	res, err := dijkstra.Trace(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, core.MaxTotalWeight, res.Dist[2])
	assert.Less(t, res.Dist[2], dijkstra.Infinity)
	assert.Zero(t, res.Trace.Count(dijkstra.KindUnreachable))
	path, ok := res.PathTo(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)

	over := core.NewGraph(abc()[:2], []core.Edge{{From: 0, To: 1, Weight: dijkstra.Infinity}})
	assert.ErrorIs(t, core.Validate(over, core.NonNegativeWeights), core.ErrWeightOverflow)
}

// Negative IDs would collide with NoPredecessor, so the boundary rejects them.
func TestValidate_RejectsIDsThatCollideWithNoPredecessor(t *testing.T) {
	b := dijkstra.NoPredecessor
	g := core.NewGraph(
		[]core.Vertex{{ID: 0, Label: "A"}, {ID: b, Label: "B"}, {ID: 2, Label: "C"}},
		[]core.Edge{{From: 0, To: b, Weight: 5}, {From: b, To: 2, Weight: 3}},
	)
	assert.ErrorIs(t, core.Validate(g, core.NonNegativeWeights), core.ErrNegativeVertexID)
}

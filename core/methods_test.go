package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algoviz/core"
)

// GraphSuite exercises the read-only Graph accessors on a small fixture.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest builds A(0), B(1), C(2), D(3) with edges in a fixed input order.
func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph(
		[]core.Vertex{
			{ID: 0, Label: "A", X: 1, Y: 2},
			{ID: 1, Label: "B"},
			{ID: 2, Label: "C"},
			{ID: 3, Label: "D"},
		},
		[]core.Edge{
			{From: 0, To: 2, Weight: 5},
			{From: 0, To: 1, Weight: 4},
			{From: 1, To: 2, Weight: 3},
			{From: 0, To: 2, Weight: 7}, // parallel to edge #0
		},
	)
}

func (s *GraphSuite) TestCountsAndLookup() {
	s.Equal(4, s.g.VertexCount())
	s.Equal(4, s.g.EdgeCount())
	s.True(s.g.HasVertex(3))
	s.False(s.g.HasVertex(9))

	v, ok := s.g.Vertex(0)
	s.True(ok)
	s.Equal(core.Vertex{ID: 0, Label: "A", X: 1, Y: 2}, v)

	i, ok := s.g.IndexOf(2)
	s.True(ok)
	s.Equal(2, i)
}

func (s *GraphSuite) TestLabels() {
	s.Equal("B", s.g.Label(1))
	s.Equal("42", s.g.Label(42)) // unknown IDs fall back to the decimal ID
	s.Equal("A-C", s.g.EdgeLabel(0))
}

func (s *GraphSuite) TestCopiesDoNotAlias() {
	vs := s.g.Vertices()
	vs[0].Label = "mutated"
	es := s.g.Edges()
	es[0].Weight = 99

	s.Equal("A", s.g.Label(0))
	s.Equal(int64(5), s.g.Edge(0).Weight)
}

func (s *GraphSuite) TestAdjacencyUndirectedSortedByLabel() {
	adj := s.g.Adjacency(false)
	// A: B(edge 1), C(edge 0), C(edge 3) — label order, then input order.
	s.Equal([]core.Arc{
		{To: 1, Edge: 1, Weight: 4},
		{To: 2, Edge: 0, Weight: 5},
		{To: 2, Edge: 3, Weight: 7},
	}, adj[0])
	// C sees the mirrored arcs.
	s.Equal([]core.Arc{
		{To: 0, Edge: 0, Weight: 5},
		{To: 0, Edge: 3, Weight: 7},
		{To: 1, Edge: 2, Weight: 3},
	}, adj[2])
	s.Empty(adj[3])
}

func (s *GraphSuite) TestAdjacencyDirected() {
	adj := s.g.Adjacency(true)
	s.Len(adj[0], 3)
	s.Empty(adj[2], "C has no outgoing arcs in directed mode")
	s.Equal([]core.Arc{{To: 2, Edge: 2, Weight: 3}}, adj[1])
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestEdgeOther(t *testing.T) {
	e := core.Edge{From: 3, To: 7, Weight: 1}
	require.Equal(t, 7, e.Other(3))
	require.Equal(t, 3, e.Other(7))
}

func TestNewGraphCopiesInput(t *testing.T) {
	vs := []core.Vertex{{ID: 0, Label: "A"}}
	es := []core.Edge{}
	g := core.NewGraph(vs, es)
	vs[0].Label = "Z"
	require.Equal(t, "A", g.Label(0))
}

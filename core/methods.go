// Package core: read-only Graph accessors.
//
// Every accessor returns copies, never internal slices, so callers cannot
// mutate a graph that other goroutines or engines are reading.

package core

import (
	"sort"
	"strconv"
)

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns a copy of the vertex list in input order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Edges returns a copy of the edge list in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// VertexAt returns the vertex stored at position i (input order).
// Panics if i is out of range.
func (g *Graph) VertexAt(i int) Vertex { return g.vertices[i] }

// Edge returns the edge at index i (input order).
// Panics if i is out of range.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// HasVertex reports whether a vertex with the given ID exists. O(1).
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Vertex looks up a vertex by ID. O(1).
func (g *Graph) Vertex(id int) (Vertex, bool) {
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}

	return g.vertices[i], true
}

// IndexOf returns the position of vertex id in input order. O(1).
func (g *Graph) IndexOf(id int) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Label returns the display label of id. Vertices without a label, and
// unknown IDs, fall back to the decimal ID so messages stay readable.
func (g *Graph) Label(id int) string {
	if v, ok := g.Vertex(id); ok && v.Label != "" {
		return v.Label
	}

	return strconv.Itoa(id)
}

// EdgeLabel renders edge i as "From-To" using vertex labels.
func (g *Graph) EdgeLabel(i int) string {
	e := g.edges[i]

	return g.Label(e.From) + "-" + g.Label(e.To)
}

// Adjacency builds outgoing arc lists indexed by vertex position.
//
// When directed is false every edge contributes an arc in both directions;
// when true only From→To arcs are produced. Each list is sorted by the
// destination's label, ties broken by edge input order, so iteration order
// is deterministic for a fixed input.
//
// Edges whose endpoints are unknown are skipped; Validate rejects such graphs.
// Complexity: O(E log E).
func (g *Graph) Adjacency(directed bool) [][]Arc {
	adj := make([][]Arc, len(g.vertices))
	var (
		from, to int
		okF, okT bool
	)
	for ei, e := range g.edges {
		from, okF = g.index[e.From]
		to, okT = g.index[e.To]
		if !okF || !okT {
			continue
		}
		adj[from] = append(adj[from], Arc{To: to, Edge: ei, Weight: e.Weight})
		if !directed && from != to {
			adj[to] = append(adj[to], Arc{To: from, Edge: ei, Weight: e.Weight})
		}
	}
	// Stable sort keeps edge input order among equal labels.
	for _, arcs := range adj {
		sort.SliceStable(arcs, func(i, j int) bool {
			return g.labelAt(arcs[i].To) < g.labelAt(arcs[j].To)
		})
	}

	return adj
}

// labelAt is Label for a vertex position.
func (g *Graph) labelAt(pos int) string {
	return g.Label(g.vertices[pos].ID)
}

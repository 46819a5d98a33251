// Package core defines the central Graph, Vertex, and Edge types shared by
// every trace engine, plus the boundary validator that checks a graph
// before it is handed to an engine.
//
// A Graph is immutable once constructed: NewGraph copies its inputs and no
// method mutates the result, so a single *Graph may be shared by any number
// of concurrent readers without locking.
//
// This file declares Vertex, Edge, Arc, Graph, the weight policies and the
// sentinel errors.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrEmptyGraph        - graph has no vertices.
//	ErrDuplicateVertex   - two vertices share one ID.
//	ErrNegativeVertexID  - a vertex ID is below zero.
//	ErrUnknownVertex     - an edge references a vertex that does not exist.
//	ErrSelfLoop          - an edge connects a vertex to itself.
//	ErrNonPositiveWeight - weight <= 0 under PositiveWeights.
//	ErrNegativeWeight    - weight < 0 under NonNegativeWeights.
//	ErrWeightOverflow    - the edge weights sum to more than MaxTotalWeight.
//	ErrVertexNotFound    - a requested root/source vertex does not exist.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates that the vertex set is empty.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrDuplicateVertex indicates that two vertices share the same ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrNegativeVertexID indicates a vertex ID below zero. Negative values
	// are reserved for sentinels such as "no predecessor".
	ErrNegativeVertexID = errors.New("core: vertex id must be non-negative")

	// ErrUnknownVertex indicates an edge endpoint that is not a vertex of the graph.
	ErrUnknownVertex = errors.New("core: edge references unknown vertex")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop edge")

	// ErrNonPositiveWeight indicates a zero or negative weight where strictly
	// positive weights are required (undirected MST algorithms).
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrNegativeWeight indicates a negative weight where non-negative weights
	// are required (shortest paths).
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrWeightOverflow indicates that the sum of all edge weights exceeds
	// MaxTotalWeight, so a path length or tree total could overflow int64.
	ErrWeightOverflow = errors.New("core: total edge weight overflows int64")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex represents a node in the graph.
//
// ID is a small non-negative integer unique within its Graph. Label is the
// human-readable name shown to users. X and Y are layout coordinates; they
// are carried through every engine untouched and never interpreted.
type Vertex struct {
	ID    int     `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// Edge connects two vertices with an integer weight.
//
// Undirected algorithms treat {From, To} as unordered; directed algorithms
// follow From→To only.
type Edge struct {
	From   int   `json:"from" yaml:"from"`
	To     int   `json:"to" yaml:"to"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Other returns the endpoint of e opposite to id. If id is not an endpoint
// the result is e.From.
func (e Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Arc is one entry of an adjacency list: the position of the destination
// vertex, the index of the originating edge in Graph.Edges(), and its weight.
type Arc struct {
	To     int   // destination vertex position (not ID)
	Edge   int   // index into the graph's edge list
	Weight int64 // copy of the edge weight
}

// MaxTotalWeight bounds the sum of all edge weights of a valid graph. Every
// path length and spanning-tree total is then at most MaxTotalWeight, which
// keeps math.MaxInt64 free to mean "unreachable".
const MaxTotalWeight int64 = math.MaxInt64 - 1

// WeightPolicy selects which edge weights Validate accepts.
type WeightPolicy int

const (
	// NonNegativeWeights accepts w >= 0 (Dijkstra).
	NonNegativeWeights WeightPolicy = iota

	// PositiveWeights accepts w > 0 (Prim, Kruskal).
	PositiveWeights
)

// String returns the policy name.
func (p WeightPolicy) String() string {
	switch p {
	case NonNegativeWeights:
		return "non-negative"
	case PositiveWeights:
		return "positive"
	default:
		return "unknown"
	}
}

// Graph is the immutable in-memory graph model.
//
// vertices and edges keep caller input order; index maps a vertex ID to its
// position in vertices. The first occurrence wins when IDs repeat, which is
// only possible for graphs that Validate would reject.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	index    map[int]int // vertex ID → position in vertices
}

// NewGraph creates a Graph over copies of vertices and edges. It performs no
// validation; call Validate before handing the graph to an engine.
// Complexity: O(V + E).
func NewGraph(vertices []Vertex, edges []Edge) *Graph {
	g := &Graph{
		vertices: append([]Vertex(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
		index:    make(map[int]int, len(vertices)),
	}
	for i, v := range g.vertices {
		if _, seen := g.index[v.ID]; !seen {
			g.index[v.ID] = i
		}
	}

	return g
}

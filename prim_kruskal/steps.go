package prim_kruskal

import "github.com/katalvlaran/algoviz/trace"

// Step kinds emitted by Prim.
const (
	KindPrimInit     trace.Kind = "init"
	KindSearch       trace.Kind = "search"
	KindSelectMin    trace.Kind = "select-min"
	KindAddToTree    trace.Kind = "add-to-tree"
	KindDisconnected trace.Kind = "disconnected"
	KindPrimFinal    trace.Kind = "final"
)

// Step kinds emitted by Kruskal.
const (
	KindKruskalInit  trace.Kind = "init"
	KindSort         trace.Kind = "sort"
	KindEvaluate     trace.Kind = "evaluate"
	KindAccept       trace.Kind = "accept"
	KindReject       trace.Kind = "reject"
	KindKruskalFinal trace.Kind = "final"
)

// PrimStep is the sum type of Prim step records.
type PrimStep interface {
	trace.Step
	primStep()
}

// KruskalStep is the sum type of Kruskal step records.
type KruskalStep interface {
	trace.Step
	kruskalStep()
}

type header struct {
	msg   string
	delta trace.Delta
}

func (h header) Message() string    { return h.msg }
func (h header) Delta() trace.Delta { return h.delta }

type primHeader struct{ header }

func (primHeader) primStep() {}

type kruskalHeader struct{ header }

func (kruskalHeader) kruskalStep() {}

// Candidate is an edge crossing the cut between tree and non-tree vertices.
// Inside is the endpoint already in the tree.
type Candidate struct {
	Edge    int   `json:"edge"`
	Inside  int   `json:"inside"`
	Outside int   `json:"outside"`
	Weight  int64 `json:"weight"`
}

// PrimInit starts the tree at Root.
type PrimInit struct {
	primHeader
	Root int `json:"root"`
}

// Kind implements trace.Step.
func (PrimInit) Kind() trace.Kind { return KindPrimInit }

// Search lists every crossing candidate, in edge input order.
type Search struct {
	primHeader
	Candidates []Candidate `json:"candidates"`
}

// Kind implements trace.Step.
func (Search) Kind() trace.Kind { return KindSearch }

// SelectMin picks the cheapest candidate of the preceding search.
type SelectMin struct {
	primHeader
	Candidate
}

// Kind implements trace.Step.
func (SelectMin) Kind() trace.Kind { return KindSelectMin }

// AddToTree moves Vertex into the tree through Edge. Total and TreeSize
// (number of tree vertices) are running values after the move.
type AddToTree struct {
	primHeader
	Edge     int   `json:"edge"`
	Vertex   int   `json:"vertex"`
	Weight   int64 `json:"weight"`
	Total    int64 `json:"total"`
	TreeSize int   `json:"treeSize"`
}

// Kind implements trace.Step.
func (AddToTree) Kind() trace.Kind { return KindAddToTree }

// Disconnected reports that no candidate exists while Unreached vertices
// remain outside the tree.
type Disconnected struct {
	primHeader
	Unreached []int `json:"unreached"`
}

// Kind implements trace.Step.
func (Disconnected) Kind() trace.Kind { return KindDisconnected }

// PrimFinal carries the tree as edge indices in acceptance order, its total
// weight and the reached vertex IDs in acceptance order.
type PrimFinal struct {
	primHeader
	Edges   []int `json:"edges"`
	Total   int64 `json:"total"`
	Reached []int `json:"reached"`
}

// Kind implements trace.Step.
func (PrimFinal) Kind() trace.Kind { return KindPrimFinal }

// UnionFind is a copy of the disjoint-set arrays, indexed by vertex
// position. Parent holds positions.
type UnionFind struct {
	Parent []int `json:"parent"`
	Rank   []int `json:"rank"`
}

// KruskalInit starts with every vertex in its own set.
type KruskalInit struct {
	kruskalHeader
	UnionFind
}

// Kind implements trace.Step.
func (KruskalInit) Kind() trace.Kind { return KindKruskalInit }

// Sort lists edge indices in ascending weight order, ties in input order.
type Sort struct {
	kruskalHeader
	Order []int `json:"order"`
	UnionFind
}

// Kind implements trace.Step.
func (Sort) Kind() trace.Kind { return KindSort }

// Evaluate considers Edge, the Index-th edge of the sorted order.
type Evaluate struct {
	kruskalHeader
	Index  int   `json:"index"`
	Edge   int   `json:"edge"`
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
	UnionFind
}

// Kind implements trace.Step.
func (Evaluate) Kind() trace.Kind { return KindEvaluate }

// Accept joins the sets rooted at RootFrom and RootTo (vertex IDs, roots as
// found before the union) through Edge.
type Accept struct {
	kruskalHeader
	Edge     int   `json:"edge"`
	RootFrom int   `json:"rootFrom"`
	RootTo   int   `json:"rootTo"`
	Weight   int64 `json:"weight"`
	Total    int64 `json:"total"`
	Accepted int   `json:"accepted"`
	UnionFind
}

// Kind implements trace.Step.
func (Accept) Kind() trace.Kind { return KindAccept }

// Reject discards Edge because both endpoints share Root.
type Reject struct {
	kruskalHeader
	Edge int `json:"edge"`
	Root int `json:"root"`
	UnionFind
}

// Kind implements trace.Step.
func (Reject) Kind() trace.Kind { return KindReject }

// KruskalFinal carries the forest as edge indices in acceptance order, its
// total weight and a dense component id per vertex position.
type KruskalFinal struct {
	kruskalHeader
	Edges      []int `json:"edges"`
	Total      int64 `json:"total"`
	Components []int `json:"components"`
	UnionFind
}

// Kind implements trace.Step.
func (KruskalFinal) Kind() trace.Kind { return KindKruskalFinal }

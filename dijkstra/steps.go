package dijkstra

import "github.com/katalvlaran/algoviz/trace"

// Step kinds emitted by the engine, in the order they may appear.
const (
	KindInit         trace.Kind = "init"
	KindExtractMin   trace.Kind = "extract-min"
	KindEvaluateEdge trace.Kind = "evaluate-edge"
	KindRelax        trace.Kind = "relax"
	KindNoRelax      trace.Kind = "no-relax"
	KindFinishNode   trace.Kind = "finish-node"
	KindUnreachable  trace.Kind = "unreachable"
	KindDone         trace.Kind = "done"
)

// Step is the sum type of Dijkstra step records. The unexported method
// seals the set of variants to this package.
type Step interface {
	trace.Step
	dijkstraStep()
}

// QueueEntry is one element of the priority queue as seen by a step.
type QueueEntry struct {
	Vertex int   `json:"vertex"`
	Dist   int64 `json:"dist"`
}

// header carries the fields every variant shares.
type header struct {
	msg   string
	delta trace.Delta
}

func (h header) Message() string    { return h.msg }
func (h header) Delta() trace.Delta { return h.delta }
func (header) dijkstraStep()        {}

// Init seeds the queue: every vertex at Infinity except Source at 0.
type Init struct {
	header
	Source int          `json:"source"`
	Queue  []QueueEntry `json:"queue"`
}

// Kind implements trace.Step.
func (Init) Kind() trace.Kind { return KindInit }

// ExtractMin removes Vertex, at distance Dist, from the queue. Queue holds
// the entries left behind, in extraction order.
type ExtractMin struct {
	header
	Vertex int          `json:"vertex"`
	Dist   int64        `json:"dist"`
	Queue  []QueueEntry `json:"queue"`
}

// Kind implements trace.Step.
func (ExtractMin) Kind() trace.Kind { return KindExtractMin }

// EvaluateEdge inspects the arc From→To of edge Edge. Candidate is
// FromDist + Weight (saturating at Infinity); ToDist is the current
// distance of To.
type EvaluateEdge struct {
	header
	Edge      int   `json:"edge"`
	From      int   `json:"from"`
	To        int   `json:"to"`
	Weight    int64 `json:"weight"`
	FromDist  int64 `json:"fromDist"`
	ToDist    int64 `json:"toDist"`
	Candidate int64 `json:"candidate"`
}

// Kind implements trace.Step.
func (EvaluateEdge) Kind() trace.Kind { return KindEvaluateEdge }

// Relax lowers Vertex's distance from OldDist to NewDist and replaces its
// predecessor OldPrev with NewPrev.
type Relax struct {
	header
	Edge    int   `json:"edge"`
	Vertex  int   `json:"vertex"`
	OldDist int64 `json:"oldDist"`
	NewDist int64 `json:"newDist"`
	OldPrev int   `json:"oldPrev"`
	NewPrev int   `json:"newPrev"`
}

// Kind implements trace.Step.
func (Relax) Kind() trace.Kind { return KindRelax }

// NoRelax records that Candidate did not improve Vertex's distance Dist.
type NoRelax struct {
	header
	Edge      int   `json:"edge"`
	Vertex    int   `json:"vertex"`
	Dist      int64 `json:"dist"`
	Candidate int64 `json:"candidate"`
}

// Kind implements trace.Step.
func (NoRelax) Kind() trace.Kind { return KindNoRelax }

// FinishNode marks Vertex's distance as final.
type FinishNode struct {
	header
	Vertex int   `json:"vertex"`
	Dist   int64 `json:"dist"`
}

// Kind implements trace.Step.
func (FinishNode) Kind() trace.Kind { return KindFinishNode }

// Unreachable lists every vertex still queued when the minimum distance
// became Infinity.
type Unreachable struct {
	header
	Vertices []int `json:"vertices"`
}

// Kind implements trace.Step.
func (Unreachable) Kind() trace.Kind { return KindUnreachable }

// Done carries the final tables, indexed by vertex position (input order).
// Prev holds vertex IDs or NoPredecessor.
type Done struct {
	header
	Dist []int64 `json:"dist"`
	Prev []int   `json:"prev"`
}

// Kind implements trace.Step.
func (Done) Kind() trace.Kind { return KindDone }

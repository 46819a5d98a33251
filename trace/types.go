// Package trace defines the step-trace model shared by every engine: render
// marks for vertices and edges, per-step mark deltas, and the generic
// append-only Recorder that freezes into an immutable Trace.
//
// Rather than cloning the whole graph into every step, a trace stores one
// base frame plus a Delta per step and reconstructs any frame on demand by
// replaying deltas from the nearest checkpoint.
//
// Errors:
//
//	ErrStepOutOfRange - a step index is outside [0, Len()).
//	ErrGraphMismatch  - a Scene was requested with a graph of a different shape.
//	ErrFrozen         - Append was called after Freeze.
package trace

import (
	"errors"
	"fmt"
)

// Sentinel errors for trace access.
var (
	// ErrStepOutOfRange indicates a step index outside the trace.
	ErrStepOutOfRange = errors.New("trace: step index out of range")

	// ErrGraphMismatch indicates the graph passed to Scene does not have the
	// vertex/edge counts the trace was recorded with.
	ErrGraphMismatch = errors.New("trace: graph does not match trace shape")

	// ErrFrozen indicates an attempt to append to a frozen recorder.
	ErrFrozen = errors.New("trace: recorder is frozen")
)

// DefaultCheckpointInterval is the number of steps between stored frames.
const DefaultCheckpointInterval = 32

// Kind discriminates step variants within one engine ("extract-min", ...).
type Kind string

// VertexMark is a render hint attached to a vertex.
type VertexMark uint8

const (
	// VertexDefault is an untouched vertex.
	VertexDefault VertexMark = iota
	// VertexCurrent is the vertex the engine is working on right now.
	VertexCurrent
	// VertexFrontier is a discovered but not yet settled vertex.
	VertexFrontier
	// VertexVisited is a settled vertex (finalized distance, or in the tree).
	VertexVisited
	// VertexUnreachable is a vertex the engine proved it cannot reach.
	VertexUnreachable
)

var vertexMarkNames = [...]string{"default", "current", "frontier", "visited", "unreachable"}

// String returns the mark name.
func (m VertexMark) String() string {
	if int(m) < len(vertexMarkNames) {
		return vertexMarkNames[m]
	}

	return fmt.Sprintf("VertexMark(%d)", uint8(m))
}

// MarshalText encodes the mark by name.
func (m VertexMark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// EdgeMark is a render hint attached to an edge.
type EdgeMark uint8

const (
	// EdgeDefault is an untouched edge.
	EdgeDefault EdgeMark = iota
	// EdgeEvaluating is the edge under inspection in this step.
	EdgeEvaluating
	// EdgeCandidate is one of several edges competing for selection.
	EdgeCandidate
	// EdgeSelected is the edge chosen in this step, not yet committed.
	EdgeSelected
	// EdgeRelaxed is the edge currently providing a vertex's best distance.
	EdgeRelaxed
	// EdgeInTree is a committed tree edge.
	EdgeInTree
	// EdgeRejected is an edge discarded for closing a cycle.
	EdgeRejected
)

var edgeMarkNames = [...]string{"default", "evaluating", "candidate", "selected", "relaxed", "in-tree", "rejected"}

// String returns the mark name.
func (m EdgeMark) String() string {
	if int(m) < len(edgeMarkNames) {
		return edgeMarkNames[m]
	}

	return fmt.Sprintf("EdgeMark(%d)", uint8(m))
}

// MarshalText encodes the mark by name.
func (m EdgeMark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// VertexChange sets the mark of the vertex at position Vertex (input order).
type VertexChange struct {
	Vertex int        `json:"vertex"`
	Mark   VertexMark `json:"mark"`
}

// EdgeChange sets the mark of the edge at index Edge (input order).
type EdgeChange struct {
	Edge int      `json:"edge"`
	Mark EdgeMark `json:"mark"`
}

// Delta lists the mark changes one step introduces. Changes apply in order,
// so a later change to the same element wins.
type Delta struct {
	Vertices []VertexChange `json:"vertices,omitempty"`
	Edges    []EdgeChange   `json:"edges,omitempty"`
}

// Empty reports whether the delta changes nothing.
func (d Delta) Empty() bool { return len(d.Vertices) == 0 && len(d.Edges) == 0 }

// Step is the contract every engine's step variants satisfy.
type Step interface {
	// Kind returns the variant discriminant.
	Kind() Kind
	// Message describes the decision in human-readable form.
	Message() string
	// Delta returns the mark changes this step applies.
	Delta() Delta
}

// Frame holds the marks of every vertex and edge at one point of a trace.
type Frame struct {
	Vertices []VertexMark `json:"vertices"`
	Edges    []EdgeMark   `json:"edges"`
}

// NewFrame returns a frame with nv vertices and ne edges, all default.
func NewFrame(nv, ne int) Frame {
	return Frame{
		Vertices: make([]VertexMark, nv),
		Edges:    make([]EdgeMark, ne),
	}
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	return Frame{
		Vertices: append([]VertexMark(nil), f.Vertices...),
		Edges:    append([]EdgeMark(nil), f.Edges...),
	}
}

// Apply writes d into f in place.
func (f Frame) Apply(d Delta) {
	for _, c := range d.Vertices {
		f.Vertices[c.Vertex] = c.Mark
	}
	for _, c := range d.Edges {
		f.Edges[c.Edge] = c.Mark
	}
}

// Package dijkstra defines core types and configuration options
// for the Dijkstra shortest-path trace engine.
//
// Options:
//
//	– Source:             ID of the starting vertex (required, must exist).
//	– Directed:           follow From→To arcs only (default: undirected).
//	– CheckpointInterval: frame checkpoint spacing of the produced trace.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrSourceNotSet      if no Source option was supplied.
//	– ErrInvalidSourceNode if the source vertex does not exist (wraps core.ErrVertexNotFound).
//	– ErrBadCheckpoint     if WithCheckpointInterval receives n <= 0 (panics).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors returned by the Dijkstra engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Trace.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotSet indicates that Trace was called without Source(...).
	ErrSourceNotSet = errors.New("dijkstra: source vertex not set")

	// ErrInvalidSourceNode indicates that the source vertex is not in the graph.
	ErrInvalidSourceNode = errors.New("dijkstra: invalid source node")

	// ErrBadCheckpoint indicates a non-positive checkpoint interval.
	ErrBadCheckpoint = errors.New("dijkstra: checkpoint interval must be positive")
)

// Infinity is the distance of a vertex with no known path from the source.
// It is larger than any finite path length the engine can report.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in Prev tables.
const NoPredecessor = -1

// Options configures the Dijkstra engine.
//
// Source             – starting vertex ID (required).
// Directed           – if true, only From→To arcs are followed.
// CheckpointInterval – steps between stored trace frames (> 0).
type Options struct {
	Source             int  // The ID of the source vertex
	Directed           bool // Whether edges are one-way
	CheckpointInterval int  // Trace frame checkpoint spacing

	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be supplied on every call.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.sourceSet = true
	}
}

// WithDirected makes the engine follow each edge From→To only. Without it
// every edge is traversable in both directions.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}

// WithCheckpointInterval sets how many steps separate stored frames in the
// resulting trace. Must be positive; n <= 0 panics with ErrBadCheckpoint.
func WithCheckpointInterval(n int) Option {
	if n <= 0 {
		// Panic to signal invalid configuration early, as other option constructors do.
		panic(ErrBadCheckpoint.Error())
	}

	return func(o *Options) {
		o.CheckpointInterval = n
	}
}

// DefaultOptions returns the defaults: no source, undirected traversal,
// trace.DefaultCheckpointInterval.
func DefaultOptions() Options {
	return Options{
		Directed:           false,
		CheckpointInterval: trace.DefaultCheckpointInterval,
	}
}

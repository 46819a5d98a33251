// Package prim_kruskal defines configuration options, results and sentinel
// errors for the MST trace engines. It supports selecting between Kruskal
// and Prim via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/trace"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an engine.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrInvalidRootNode indicates that Prim's root vertex is not in the graph.
// It always wraps core.ErrVertexNotFound.
var ErrInvalidRootNode = errors.New("prim_kruskal: invalid root node")

// ErrUnknownMethod indicates that Compute received a method name other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrOptionConflict indicates that Prim or Kruskal received an Option that
// selects another engine (WithMethod) or another root (WithRoot).
var ErrOptionConflict = errors.New("prim_kruskal: option does not apply to this engine")

// ErrBadCheckpoint indicates a non-positive checkpoint interval.
var ErrBadCheckpoint = errors.New("prim_kruskal: checkpoint interval must be positive")

// MethodPrim selects Prim's algorithm (grow one tree from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use. Use DefaultOptions() to get a default setup
// (Kruskal).
//
// Fields:
//
//	Method             string – one of MethodPrim or MethodKruskal.
//	Root               int    – start vertex ID for Prim; ignored by Kruskal.
//	CheckpointInterval int    – steps between stored trace frames.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// CheckpointInterval is forwarded to trace.NewRecorder.
	CheckpointInterval int

	rootSet bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal. Passed to Prim or Kruskal
// directly it must name that engine, else ErrOptionConflict.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm. Prim accepts it only when it equals its root argument;
// Kruskal rejects it with ErrOptionConflict.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.rootSet = true
	}
}

// WithCheckpointInterval sets how many steps separate stored frames in the
// resulting trace. n <= 0 panics with ErrBadCheckpoint.
func WithCheckpointInterval(n int) Option {
	if n <= 0 {
		panic(ErrBadCheckpoint.Error())
	}

	return func(opts *MSTOptions) {
		opts.CheckpointInterval = n
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method             = MethodKruskal
//	– Root               = 0 (ignored by Kruskal)
//	– CheckpointInterval = trace.DefaultCheckpointInterval
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:             MethodKruskal,
		Root:               0,
		CheckpointInterval: trace.DefaultCheckpointInterval,
	}
}

// Summary is the method-independent outcome of an MST run.
type Summary struct {
	Edges []core.Edge `json:"edges"`
	Total int64       `json:"total"`
}

// Compute selects and runs the MST algorithm based on opts.Method and
// returns only the final tree.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– otherwise:     ErrUnknownMethod.
//
// Use Prim or Kruskal directly when the step trace is needed.
func Compute(graph *core.Graph, opts MSTOptions) (Summary, error) {
	cp := func(o *MSTOptions) { o.CheckpointInterval = opts.CheckpointInterval }

	switch opts.Method {
	case MethodKruskal:
		res, err := Kruskal(graph, cp)
		if err != nil {
			return Summary{}, err
		}
		return Summary{Edges: res.Edges, Total: res.Total}, nil
	case MethodPrim:
		res, err := Prim(graph, opts.Root, cp)
		if err != nil {
			return Summary{}, err
		}
		return Summary{Edges: res.Edges, Total: res.Total}, nil
	default:
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// resolve applies opts for a direct call to the engine named method and
// rejects options meant for the other engine. root is Prim's root argument.
func resolve(method string, root int, opts []Option) (MSTOptions, error) {
	cfg := MSTOptions{CheckpointInterval: trace.DefaultCheckpointInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Method != "" && cfg.Method != method {
		return cfg, fmt.Errorf("%w: %s called with method %q", ErrOptionConflict, method, cfg.Method)
	}
	if cfg.rootSet && (method != MethodPrim || cfg.Root != root) {
		return cfg, fmt.Errorf("%w: %s called with WithRoot(%d)", ErrOptionConflict, method, cfg.Root)
	}
	cfg.Method, cfg.Root = method, root

	return cfg, nil
}

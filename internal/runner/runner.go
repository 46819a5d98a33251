// Package runner validates a graph, runs exactly one trace engine on it and
// turns the trace into a JSON-ready report.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/trace"
)

// Algorithm names accepted in Request.Algorithm.
const (
	AlgoDijkstra = "dijkstra"
	AlgoPrim     = prim_kruskal.MethodPrim
	AlgoKruskal  = prim_kruskal.MethodKruskal
)

// ErrUnknownAlgorithm is returned for an unsupported Request.Algorithm.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

// Request selects the engine and its inputs.
type Request struct {
	Algorithm string
	Graph     *core.Graph
	// Source is the Dijkstra start vertex.
	Source int
	// Root is the Prim start vertex.
	Root     int
	Directed bool
	// CheckpointInterval is passed to the engine when positive.
	CheckpointInterval int
}

// StepView is one trace step in a shape that marshals cleanly.
type StepView struct {
	Index   int         `json:"index"`
	Kind    trace.Kind  `json:"kind"`
	Message string      `json:"message"`
	Delta   trace.Delta `json:"delta"`
	Payload trace.Step  `json:"payload"`
}

// Outcome is the engine result without the trace.
type Outcome struct {
	Edges       []core.Edge   `json:"edges,omitempty"`
	Total       int64         `json:"total"`
	Dist        map[int]int64 `json:"dist,omitempty"`
	Prev        map[int]int   `json:"prev,omitempty"`
	Unreachable []int         `json:"unreachable,omitempty"`
	Reached     []int         `json:"reached,omitempty"`
	Components  map[int]int   `json:"components,omitempty"`
}

// Report is the envelope of one run. RunID differs between runs; every other
// field depends only on the request.
type Report struct {
	RunID     string        `json:"run_id"`
	Algorithm string        `json:"algorithm"`
	Vertices  []core.Vertex `json:"vertices"`
	Edges     []core.Edge   `json:"edges"`
	Steps     []StepView    `json:"steps"`
	Outcome   Outcome       `json:"outcome"`
}

// Runner executes requests. The zero value is not usable; call New.
type Runner struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

// New returns a Runner logging to log (slog.Default() when nil) and
// recording into m (nothing recorded when nil).
func New(log *slog.Logger, m *metrics.Metrics) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log, metrics: m}
}

// Run validates req.Graph with the weight policy of the chosen algorithm and
// runs the engine synchronously. Engines cannot be interrupted, so ctx is
// only checked before the run starts.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	log := r.log.With("run_id", runID, "algorithm", req.Algorithm)
	start := time.Now()

	rep, kinds, err := r.run(req)
	took := time.Since(start)
	if err != nil {
		log.Warn("run rejected", "err", err)
		r.observe(req.Algorithm, metrics.OutcomeInvalid, took, nil)
		return nil, err
	}
	rep.RunID = runID
	log.Info("run finished",
		"vertices", req.Graph.VertexCount(),
		"edges", req.Graph.EdgeCount(),
		"steps", len(rep.Steps),
		"total", rep.Outcome.Total,
		"took", took,
	)
	r.observe(req.Algorithm, metrics.OutcomeOK, took, kinds)

	return rep, nil
}

func (r *Runner) observe(algo, outcome string, took time.Duration, kinds map[string]int) {
	if r.metrics == nil {
		return
	}
	switch algo {
	case AlgoDijkstra, AlgoPrim, AlgoKruskal:
	default:
		algo = "unknown"
	}
	r.metrics.ObserveRun(algo, outcome, took, kinds)
}

func (r *Runner) run(req Request) (*Report, map[string]int, error) {
	policy, err := policyFor(req.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	if err := core.Validate(req.Graph, policy); err != nil {
		return nil, nil, fmt.Errorf("runner: %s: %w", req.Algorithm, err)
	}

	rep := &Report{
		Algorithm: req.Algorithm,
		Vertices:  req.Graph.Vertices(),
		Edges:     req.Graph.Edges(),
	}
	var kinds map[string]int
	switch req.Algorithm {
	case AlgoDijkstra:
		opts := []dijkstra.Option{dijkstra.Source(req.Source)}
		if req.Directed {
			opts = append(opts, dijkstra.WithDirected())
		}
		if req.CheckpointInterval > 0 {
			opts = append(opts, dijkstra.WithCheckpointInterval(req.CheckpointInterval))
		}
		res, err := dijkstra.Trace(req.Graph, opts...)
		if err != nil {
			return nil, nil, err
		}
		rep.Steps, kinds = views(res.Trace)
		rep.Outcome = Outcome{Dist: res.Dist, Prev: res.Prev}
		for _, v := range rep.Vertices {
			if res.Dist[v.ID] == dijkstra.Infinity {
				rep.Outcome.Unreachable = append(rep.Outcome.Unreachable, v.ID)
			}
		}

	case AlgoPrim:
		res, err := prim_kruskal.Prim(req.Graph, req.Root, mstOptions(req)...)
		if err != nil {
			return nil, nil, err
		}
		rep.Steps, kinds = views(res.Trace)
		rep.Outcome = Outcome{Edges: res.Edges, Total: res.Total, Reached: res.Reached}

	case AlgoKruskal:
		res, err := prim_kruskal.Kruskal(req.Graph, mstOptions(req)...)
		if err != nil {
			return nil, nil, err
		}
		rep.Steps, kinds = views(res.Trace)
		rep.Outcome = Outcome{Edges: res.Edges, Total: res.Total, Components: res.Components}
	}

	return rep, kinds, nil
}

// policyFor returns the weight policy an algorithm validates with.
func policyFor(algo string) (core.WeightPolicy, error) {
	switch algo {
	case AlgoDijkstra:
		return core.NonNegativeWeights, nil
	case AlgoPrim, AlgoKruskal:
		return core.PositiveWeights, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

func mstOptions(req Request) []prim_kruskal.Option {
	if req.CheckpointInterval > 0 {
		return []prim_kruskal.Option{prim_kruskal.WithCheckpointInterval(req.CheckpointInterval)}
	}
	return nil
}

// views flattens a trace into StepViews and counts its step kinds.
func views[S trace.Step](tr *trace.Trace[S]) ([]StepView, map[string]int) {
	out := make([]StepView, tr.Len())
	kinds := make(map[string]int)
	for i, s := range tr.Steps() {
		out[i] = StepView{Index: i, Kind: s.Kind(), Message: s.Message(), Delta: s.Delta(), Payload: s}
		kinds[string(s.Kind())]++
	}

	return out, kinds
}

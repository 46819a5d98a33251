package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/internal/runner"
)

type RunnerSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	metrics *metrics.Metrics
	r       *runner.Runner
	g       *core.Graph // A-B-C path (weights 4, 3) plus isolated D
}

func (s *RunnerSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.r = runner.New(slog.New(slog.NewJSONHandler(s.logs, nil)), s.metrics)

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithWeightFn(builder.SequenceWeightFn(4, 3))},
		builder.Path(3), builder.Path(1),
	)
	s.Require().NoError(err)
	s.g = g
}

func (s *RunnerSuite) TestDijkstra() {
	rep, err := s.r.Run(context.Background(), runner.Request{Algorithm: runner.AlgoDijkstra, Graph: s.g, Source: 0})
	s.Require().NoError(err)

	_, err = uuid.Parse(rep.RunID)
	s.NoError(err)
	s.Equal(runner.AlgoDijkstra, rep.Algorithm)
	s.Equal(map[int]int64{0: 0, 1: 4, 2: 7, 3: dijkstra.Infinity}, rep.Outcome.Dist)
	s.Equal([]int{3}, rep.Outcome.Unreachable)
	s.Equal(dijkstra.KindInit, rep.Steps[0].Kind)
	s.Equal(dijkstra.KindDone, rep.Steps[len(rep.Steps)-1].Kind)
	for i, v := range rep.Steps {
		s.Equal(i, v.Index)
		s.Equal(v.Kind, v.Payload.Kind())
	}

	s.Contains(s.logs.String(), rep.RunID)
	s.Contains(s.logs.String(), `"msg":"run finished"`)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues(runner.AlgoDijkstra, metrics.OutcomeOK)))
	s.Equal(float64(len(rep.Steps)), testutil.ToFloat64(s.metrics.Steps.WithLabelValues(runner.AlgoDijkstra)))
}

func (s *RunnerSuite) TestPrimAndKruskal() {
	prim, err := s.r.Run(context.Background(), runner.Request{Algorithm: runner.AlgoPrim, Graph: s.g, Root: 1})
	s.Require().NoError(err)
	kruskal, err := s.r.Run(context.Background(), runner.Request{Algorithm: runner.AlgoKruskal, Graph: s.g})
	s.Require().NoError(err)

	s.Equal(int64(7), prim.Outcome.Total)
	s.Equal(int64(7), kruskal.Outcome.Total)
	s.ElementsMatch([]int{1, 0, 2}, prim.Outcome.Reached)
	s.Equal(map[int]int{0: 0, 1: 0, 2: 0, 3: 1}, kruskal.Outcome.Components)
	s.NotEqual(prim.RunID, kruskal.RunID)
}

func (s *RunnerSuite) TestValidationFailures() {
	ctx := context.Background()

	_, err := s.r.Run(ctx, runner.Request{Algorithm: "bellman-ford", Graph: s.g})
	s.ErrorIs(err, runner.ErrUnknownAlgorithm)

	_, err = s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoKruskal})
	s.ErrorIs(err, core.ErrNilGraph)

	negative := core.NewGraph([]core.Vertex{{ID: 0}, {ID: -1}}, []core.Edge{{From: 0, To: -1, Weight: 2}})
	_, err = s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoKruskal, Graph: negative})
	s.ErrorIs(err, core.ErrNegativeVertexID)

	zero := core.NewGraph(s.g.Vertices(), []core.Edge{{From: 0, To: 1, Weight: 0}})
	_, err = s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoPrim, Graph: zero})
	s.ErrorIs(err, core.ErrNonPositiveWeight)
	_, err = s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoDijkstra, Graph: zero, Source: 0})
	s.NoError(err, "zero weights are fine for shortest paths")

	_, err = s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoDijkstra, Graph: s.g, Source: 42})
	s.ErrorIs(err, dijkstra.ErrInvalidSourceNode)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues("unknown", metrics.OutcomeInvalid)))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues(runner.AlgoPrim, metrics.OutcomeInvalid))+
		testutil.ToFloat64(s.metrics.Runs.WithLabelValues(runner.AlgoDijkstra, metrics.OutcomeInvalid)))
	s.Contains(s.logs.String(), "run rejected")
}

func (s *RunnerSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.r.Run(ctx, runner.Request{Algorithm: runner.AlgoKruskal, Graph: s.g})
	s.ErrorIs(err, context.Canceled)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

// Reports differ only in their run id.
func TestRun_DeterministicJSON(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithUniformWeight(1, 9)},
		builder.RandomSparse(8, 0.5),
	)
	require.NoError(t, err)
	r := runner.New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)

	for _, algo := range []string{runner.AlgoDijkstra, runner.AlgoPrim, runner.AlgoKruskal} {
		req := runner.Request{Algorithm: algo, Graph: g, CheckpointInterval: 4}
		a, err := r.Run(context.Background(), req)
		require.NoError(t, err, algo)
		b, err := r.Run(context.Background(), req)
		require.NoError(t, err, algo)

		a.RunID, b.RunID = "", ""
		ja, err := json.Marshal(a)
		require.NoError(t, err)
		jb, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, string(ja), string(jb), algo)
	}
}

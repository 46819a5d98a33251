// Command graphtrace runs one trace engine on a graph file and prints the
// recorded steps.
//
//	graphtrace -algo dijkstra -graph g.yaml -source 0
//	graphtrace -algo kruskal -graph g.json -format json
//	graphtrace -algo prim -graph g.yaml -root 2 -watch
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/graphfile"
	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/internal/runner"
)

func main() {
	algo := flag.String("algo", runner.AlgoDijkstra, "Algorithm: dijkstra, prim or kruskal")
	path := flag.String("graph", "", "Path to a graph file (.yaml, .yml or .json)")
	source := flag.Int("source", 0, "Dijkstra source vertex id")
	root := flag.Int("root", 0, "Prim root vertex id")
	directed := flag.Bool("directed", false, "Dijkstra follows edges From→To only")
	format := flag.String("format", "text", "Output format: text or json")
	checkpoint := flag.Int("checkpoint", 0, "Frame checkpoint interval (0 = engine default)")
	dumpMetrics := flag.Bool("metrics", false, "Print Prometheus metrics after the run")
	watch := flag.Bool("watch", false, "Re-run whenever the graph file changes")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *path == "" {
		slog.Error("missing -graph")
		flag.Usage()
		os.Exit(2)
	}
	if *format != "text" && *format != "json" {
		slog.Error("unknown -format", "format", *format)
		os.Exit(2)
	}

	reg := prometheus.NewRegistry()
	r := runner.New(logger, metrics.New(reg))
	base := runner.Request{
		Algorithm:          *algo,
		Source:             *source,
		Root:               *root,
		Directed:           *directed,
		CheckpointInterval: *checkpoint,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runOnce := func(g *core.Graph) error {
		req := base
		req.Graph = g
		rep, err := r.Run(ctx, req)
		if err != nil {
			return err
		}
		if err := write(os.Stdout, rep, *format); err != nil {
			return err
		}
		if *dumpMetrics {
			return dump(os.Stdout, reg)
		}
		return nil
	}

	if *watch {
		slog.Info("watching graph file", "path", *path)
		err := graphfile.Watch(ctx, *path, func(g *core.Graph, err error) {
			if err == nil {
				err = runOnce(g)
			}
			if err != nil {
				slog.Error("run failed", "err", err)
			}
		})
		if err != nil {
			slog.Error("watch failed", "err", err)
			os.Exit(1)
		}
		return
	}

	g, err := graphfile.Load(*path)
	if err != nil {
		slog.Error("failed to load graph", "err", err)
		os.Exit(1)
	}
	if err := runOnce(g); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// write prints rep in the chosen format.
func write(w io.Writer, rep *runner.Report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	for _, s := range rep.Steps {
		if _, err := fmt.Fprintf(w, "%4d  %-13s  %s\n", s.Index, s.Kind, s.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "-- %s: %d steps, total %d (run %s)\n",
		rep.Algorithm, len(rep.Steps), rep.Outcome.Total, rep.RunID)
	return err
}

// dump writes every gathered metric family in text exposition format.
func dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Package algoviz records graph algorithms as replayable step traces.
//
// Every engine runs to completion on an immutable core.Graph and returns a
// trace: an ordered list of typed steps, each carrying a human-readable
// message and the render marks it changes. A viewer can jump to any step,
// rebuild the marks in effect there and walk forward or backward without
// re-running the algorithm.
//
// Packages:
//
//	core/          — Graph, Vertex, Edge and the boundary validator
//	disjoint/      — union-find with path compression and union by rank
//	trace/         — step recorder, frames, checkpoints and scenes
//	dijkstra/      — single-source shortest paths (indexed priority queue)
//	prim_kruskal/  — minimum spanning tree / forest, Prim and Kruskal
//	builder/       — deterministic fixture graphs with layout coordinates
//	internal/      — graph files, metrics and the runner behind the CLI
//	cmd/graphtrace — run one engine on a YAML/JSON graph file
//
// Quick ASCII example:
//
//	A──5──B
//	│    /
//	9   3
//	│ /
//	C
//
// Dijkstra from A records init, extract-min A, evaluate A→B, relax B,
// evaluate A→C, relax C, finish-node A, ... and ends with done, where the
// distance of C is 8 via B.
//
//	go get github.com/katalvlaran/algoviz
package algoviz

// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomSparse      = "RandomSparse"
	methodGrid              = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without self-loops or
// parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest size for a path. A single vertex is a valid
// (edgeless) path, which keeps trivial fixtures expressible.
const MinPathNodes = 1

// MinStarNodes is the smallest meaningful size for a star: one center plus
// at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a cycle of at
// least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for a complete graph.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
const MinGridDim = 1

// MinPartitionSize is the smallest allowed side of a complete bipartite graph.
const MinPartitionSize = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Default Weights, Labels and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided. It is positive, so default fixtures satisfy both
// core weight policies.
const DefaultEdgeWeight int64 = 1

// MinProbability and MaxProbability bound RandomSparse's p, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

//-----------------------------------------------------------------------------
// Layout
//-----------------------------------------------------------------------------

// LayoutSpan is the side of the square every component is laid out in.
const LayoutSpan = 100.0

// componentGap separates consecutive components horizontally.
const componentGap = 20.0

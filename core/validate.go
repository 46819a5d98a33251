// File: validate.go
// Role: Boundary validator run before a graph reaches any engine.
// Policy:
//   - Engines assume a graph that passed Validate and never re-check structure.
//   - Checks run in a fixed order so the first reported defect is deterministic.

package core

import "fmt"

// Validate checks the structural contract every engine relies on.
//
// Checks (in order):
//  1. g is non-nil (ErrNilGraph).
//  2. at least one vertex (ErrEmptyGraph).
//  3. vertex IDs are non-negative (ErrNegativeVertexID) and unique
//     (ErrDuplicateVertex).
//  4. for each edge in input order: both endpoints exist (ErrUnknownVertex),
//     From != To (ErrSelfLoop), the weight satisfies policy
//     (ErrNonPositiveWeight or ErrNegativeWeight), and the running weight
//     sum stays within MaxTotalWeight (ErrWeightOverflow).
//
// Returned errors wrap the sentinel with the offending vertex or edge.
// Complexity: O(V + E).
func Validate(g *Graph, policy WeightPolicy) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(g.vertices) == 0 {
		return ErrEmptyGraph
	}

	seen := make(map[int]struct{}, len(g.vertices))
	for i, v := range g.vertices {
		if v.ID < 0 {
			return fmt.Errorf("%w: id=%d at position %d", ErrNegativeVertexID, v.ID, i)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: id=%d at position %d", ErrDuplicateVertex, v.ID, i)
		}
		seen[v.ID] = struct{}{}
	}

	var total int64
	for i, e := range g.edges {
		if !g.HasVertex(e.From) {
			return fmt.Errorf("%w: edge #%d from=%d", ErrUnknownVertex, i, e.From)
		}
		if !g.HasVertex(e.To) {
			return fmt.Errorf("%w: edge #%d to=%d", ErrUnknownVertex, i, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: edge #%d on vertex %d", ErrSelfLoop, i, e.From)
		}
		switch policy {
		case PositiveWeights:
			if e.Weight <= 0 {
				return fmt.Errorf("%w: edge #%d %d-%d weight=%d", ErrNonPositiveWeight, i, e.From, e.To, e.Weight)
			}
		default:
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge #%d %d→%d weight=%d", ErrNegativeWeight, i, e.From, e.To, e.Weight)
			}
		}
		if e.Weight > MaxTotalWeight-total {
			return fmt.Errorf("%w: edge #%d %d-%d weight=%d after %d", ErrWeightOverflow, i, e.From, e.To, e.Weight, total)
		}
		total += e.Weight
	}

	return nil
}

// ValidateRoot reports ErrVertexNotFound when id is not a vertex of g.
func ValidateRoot(g *Graph, id int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return nil
}

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/algoviz/trace"
)

// Forest is the tree state reconstructed from a trace prefix: accepted edge
// indices in acceptance order and their total weight.
type Forest struct {
	Edges []int `json:"edges"`
	Total int64 `json:"total"`
}

// ReplayPrim folds steps 0..i of a Prim trace, applying each add-to-tree.
// Replaying the whole trace reproduces the final step's Edges and Total.
func ReplayPrim(tr *trace.Trace[PrimStep], i int) (Forest, error) {
	if i < 0 || i >= tr.Len() {
		return Forest{}, fmt.Errorf("%w: %d not in [0,%d)", trace.ErrStepOutOfRange, i, tr.Len())
	}
	var f Forest
	for j := 0; j <= i; j++ {
		if s, ok := tr.At(j).(AddToTree); ok {
			f.Edges = append(f.Edges, s.Edge)
			f.Total += s.Weight
		}
	}

	return f, nil
}

// ReplayKruskal folds steps 0..i of a Kruskal trace, applying each accept.
// Replaying the whole trace reproduces the final step's Edges and Total.
func ReplayKruskal(tr *trace.Trace[KruskalStep], i int) (Forest, error) {
	if i < 0 || i >= tr.Len() {
		return Forest{}, fmt.Errorf("%w: %d not in [0,%d)", trace.ErrStepOutOfRange, i, tr.Len())
	}
	var f Forest
	for j := 0; j <= i; j++ {
		if s, ok := tr.At(j).(Accept); ok {
			f.Edges = append(f.Edges, s.Edge)
			f.Total += s.Weight
		}
	}

	return f, nil
}

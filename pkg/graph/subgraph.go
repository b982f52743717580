package graph

import "slices"

// Subgraph is an ordered, deduplicated sequence of handles: either the
// whole graph or the set of nodes produced by a derivative pass. Handles
// are ascending by construction order, which per the append invariant is a
// topological order, so a Subgraph can be handed directly to Evaluate.
type Subgraph struct {
	handles []Handle
}

// NewSubgraph builds a Subgraph from handles, sorting ascending and
// removing duplicates. The input slice is not modified.
func NewSubgraph(handles []Handle) Subgraph {
	sorted := slices.Clone(handles)
	slices.SortFunc(sorted, func(a, b Handle) int { return a.pos - b.pos })
	return Subgraph{handles: slices.Compact(sorted)}
}

// Handles returns a copy of the handles in ascending order.
func (s Subgraph) Handles() []Handle {
	return slices.Clone(s.handles)
}

// Len returns the number of handles in the subgraph.
func (s Subgraph) Len() int {
	return len(s.handles)
}

package graph

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Derivative appends, for every node currently in the graph, a new node
// representing its derivative with respect to the handles in wrt, and
// returns the derivative handle for of together with the Subgraph of all
// newly appended nodes. Derivative nodes are ordinary nodes; the returned
// Subgraph can be handed straight to Evaluate.
//
// Every existing node is differentiated, not just the ancestors of of: any
// node might be an ancestor, and skipping the reachability pass keeps the
// algorithm a single forward scan. Each original handle maps to exactly one
// derivative handle, so the derivative of a node shared by many parents is
// computed once and referenced by all of them — this structural memoization
// is what keeps differentiation linear on diamond-shaped DAGs.
func (g *Graph) Derivative(of Handle, wrt HandleSet) (Handle, Subgraph, error) {
	existing := len(g.nodes)
	derivatives := make(map[Handle]Handle, existing)
	newHandles := make([]Handle, 0, existing)

	klog.V(4).Infof("differentiating %d nodes wrt %d variables", existing, len(wrt))
	for pos := 0; pos < existing; pos++ {
		old := Handle{pos: pos}
		node, err := g.Node(old).Derivative(old, wrt, derivatives)
		if err != nil {
			return Handle{}, Subgraph{}, fmt.Errorf("differentiating node %v: %w", old, err)
		}
		derivatives[old] = g.Append(node)
		newHandles = append(newHandles, derivatives[old])
	}

	result, ok := derivatives[of]
	if !ok {
		return Handle{}, Subgraph{}, fmt.Errorf("node %v not in graph", of)
	}
	return result, NewSubgraph(newHandles), nil
}

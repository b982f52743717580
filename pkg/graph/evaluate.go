package graph

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Evaluate computes a value for every handle in sub, in ascending order,
// memoizing results into the returned mapping. bindings seeds the mapping
// (typically Variable handles mapped to their input values) and is not
// modified. A computed value overwrites a pre-seeded one for the same
// handle; callers should not pre-seed handles the subgraph also computes.
//
// On success every handle in sub has an entry in the result. Ascending
// order is a correctness requirement, not an optimization: a node at handle
// h only depends on handles before h, so each Value call finds its
// children already computed. One pass, linear in the subgraph size, even
// when the number of paths through the DAG is exponential.
func (g *Graph) Evaluate(sub Subgraph, bindings Values) (Values, error) {
	values := make(Values, len(bindings)+sub.Len())
	for h, v := range bindings {
		values[h] = v
	}

	klog.V(4).Infof("evaluating %d nodes with %d bindings", sub.Len(), len(bindings))
	for _, h := range sub.handles {
		value, err := g.Node(h).Value(h, values)
		if err != nil {
			return nil, fmt.Errorf("evaluating node %v: %w", h, err)
		}
		values[h] = value
	}

	return values, nil
}

// EvaluateAll evaluates every node in the graph.
func (g *Graph) EvaluateAll(bindings Values) (Values, error) {
	return g.Evaluate(g.Subgraph(), bindings)
}

// Package graph models a mathematical expression as a directed acyclic
// graph of scalar computation nodes. A Graph is an append-only store
// addressed by Handle; because a node can only reference handles that
// already exist when it is appended, ascending handle order is always a
// valid topological order, and both evaluation and differentiation run as a
// single forward pass over that order.
package graph

import "slices"

// Graph is an append-only, index-addressed store of nodes. Nodes are never
// removed or mutated after being appended, so a Handle stays valid for the
// lifetime of its Graph. The Graph owns its nodes exclusively.
type Graph struct {
	nodes []Node
}

func New() *Graph {
	return &Graph{}
}

// Append adds node at the next position and returns its handle. It never
// fails. The only handles in existence at append time are those of earlier
// appends, so a node can only reference nodes that precede it; this is what
// guarantees acyclicity.
func (g *Graph) Append(node Node) Handle {
	g.nodes = append(g.nodes, node)
	return Handle{pos: len(g.nodes) - 1}
}

// Node returns the node at h. A handle from another Graph panics if it is
// out of range; an in-range foreign handle is undetectable (caller
// contract).
func (g *Graph) Node(h Handle) Node {
	return g.nodes[h.pos]
}

// Len returns the number of nodes appended so far.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Subgraph returns all current handles in ascending order.
func (g *Graph) Subgraph() Subgraph {
	handles := make([]Handle, len(g.nodes))
	for i := range g.nodes {
		handles[i] = Handle{pos: i}
	}
	return Subgraph{handles: handles}
}

// Constant appends a Constant node.
func (g *Graph) Constant(value float64) Handle {
	return g.Append(Constant(value))
}

// Variable appends a Variable node. Its value must be supplied as a binding
// when evaluating.
func (g *Graph) Variable() Handle {
	return g.Append(Variable{})
}

// Sum appends a Sum node over the given children.
func (g *Graph) Sum(children ...Handle) Handle {
	return g.Append(Sum{Children: slices.Clone(children)})
}

// Product appends a Product node over the given children.
func (g *Graph) Product(children ...Handle) Handle {
	return g.Append(Product{Children: slices.Clone(children)})
}

package graph

// Values maps a node's handle to its scalar value. It serves both as input
// (variable bindings) and as output (memoized results) of an evaluation
// pass; entries only accumulate during a pass, they are never removed.
type Values map[Handle]float64

// Node is the contract every node kind implements. The kind set is open:
// new kinds can be added without modifying Graph, Evaluate, or Derivative.
// Both methods are pure.
type Node interface {
	// Value computes this node's scalar value. values must already hold
	// entries for all of this node's children; a Variable additionally
	// looks up its own handle, because its value is an input rather than
	// something derived. The Evaluate pass guarantees this by visiting
	// handles in ascending order.
	Value(self Handle, values Values) (float64, error)

	// Derivative returns a new, not-yet-appended node representing the
	// derivative of this node with respect to the handles in wrt. It may
	// reference any existing handle as well as the derivative handles of
	// its children, which derivatives already contains because children
	// always precede their parents.
	Derivative(self Handle, wrt HandleSet, derivatives map[Handle]Handle) (Node, error)
}

package graph

import "fmt"

// Constant is a node with a fixed scalar value.
type Constant float64

func (c Constant) Value(_ Handle, _ Values) (float64, error) {
	return float64(c), nil
}

func (c Constant) Derivative(_ Handle, _ HandleSet, _ map[Handle]Handle) (Node, error) {
	return Constant(0), nil
}

// Variable is a node whose value is an external input, supplied as a
// binding when evaluating.
type Variable struct{}

func (v Variable) Value(self Handle, values Values) (float64, error) {
	value, ok := values[self]
	if !ok {
		return 0, fmt.Errorf("variable %v not bound", self)
	}
	return value, nil
}

func (v Variable) Derivative(self Handle, wrt HandleSet, _ map[Handle]Handle) (Node, error) {
	if wrt.Contains(self) {
		return Constant(1), nil
	}
	return Constant(0), nil
}

// Sum is a node whose value is the sum of its children. An empty Sum
// evaluates to 0.
type Sum struct {
	Children []Handle
}

func (s Sum) Value(_ Handle, values Values) (float64, error) {
	total := 0.0
	for _, child := range s.Children {
		v, ok := values[child]
		if !ok {
			return 0, fmt.Errorf("child %v not evaluated", child)
		}
		total += v
	}
	return total, nil
}

// The derivative of a sum is the sum of its children's derivatives.
func (s Sum) Derivative(_ Handle, _ HandleSet, derivatives map[Handle]Handle) (Node, error) {
	children := make([]Handle, len(s.Children))
	for i, child := range s.Children {
		d, ok := derivatives[child]
		if !ok {
			return nil, fmt.Errorf("child %v not differentiated", child)
		}
		children[i] = d
	}
	return Sum{Children: children}, nil
}

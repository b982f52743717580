package graph

import "fmt"

// Product is a node whose value is the product of its children. An empty
// Product evaluates to 1.
type Product struct {
	Children []Handle
}

func (p Product) Value(_ Handle, values Values) (float64, error) {
	total := 1.0
	for _, child := range p.Children {
		v, ok := values[child]
		if !ok {
			return 0, fmt.Errorf("child %v not evaluated", child)
		}
		total *= v
	}
	return total, nil
}

// Derivative applies the product rule: one term per factor, with that
// factor replaced by its derivative. The resulting node references the
// original factor handles, so evaluating it requires values for the
// original nodes too; evaluate the graph's full Subgraph rather than the
// derivative subgraph alone.
func (p Product) Derivative(_ Handle, _ HandleSet, derivatives map[Handle]Handle) (Node, error) {
	terms := make([][]Handle, 0, len(p.Children))
	for i, child := range p.Children {
		d, ok := derivatives[child]
		if !ok {
			return nil, fmt.Errorf("child %v not differentiated", child)
		}
		term := make([]Handle, 0, len(p.Children))
		term = append(term, d)
		term = append(term, p.Children[:i]...)
		term = append(term, p.Children[i+1:]...)
		terms = append(terms, term)
	}
	return sumOfProducts{terms: terms}, nil
}

// sumOfProducts computes Σ over terms of Π over each term's handles. It is
// the shape a product derivative takes, and it is closed under
// differentiation (each term differentiates into one term per factor), so
// derivatives of any order remain a single node and the one-new-node-per-
// existing-node contract of the derivative pass holds.
type sumOfProducts struct {
	terms [][]Handle
}

func (s sumOfProducts) Value(_ Handle, values Values) (float64, error) {
	total := 0.0
	for _, term := range s.terms {
		product := 1.0
		for _, h := range term {
			v, ok := values[h]
			if !ok {
				return 0, fmt.Errorf("node %v not evaluated", h)
			}
			product *= v
		}
		total += product
	}
	return total, nil
}

func (s sumOfProducts) Derivative(_ Handle, _ HandleSet, derivatives map[Handle]Handle) (Node, error) {
	var terms [][]Handle
	for _, term := range s.terms {
		for i, h := range term {
			d, ok := derivatives[h]
			if !ok {
				return nil, fmt.Errorf("node %v not differentiated", h)
			}
			next := make([]Handle, 0, len(term))
			next = append(next, d)
			next = append(next, term[:i]...)
			next = append(next, term[i+1:]...)
			terms = append(terms, next)
		}
	}
	return sumOfProducts{terms: terms}, nil
}

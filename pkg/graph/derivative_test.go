package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d(1 + b)/db = 1.
func TestDerivativeOfSumWrtVariable(t *testing.T) {
	g := New()
	a := g.Constant(1.0)
	b := g.Variable()
	c := g.Sum(a, b)

	dc, sub, err := g.Derivative(c, NewHandleSet(b))
	require.NoError(t, err)

	// Derivative nodes only reference other derivative nodes here, so the
	// new subgraph evaluates on its own with no bindings.
	values, err := g.Evaluate(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, values[dc])
}

// With no variables selected, the derivative is 0 everywhere.
func TestDerivativeEmptyWrt(t *testing.T) {
	g := New()
	a := g.Constant(1.0)
	b := g.Variable()
	c := g.Sum(a, b)

	dc, sub, err := g.Derivative(c, nil)
	require.NoError(t, err)

	values, err := g.Evaluate(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, values[dc])
}

// One new node per existing node, all appended past the old length.
func TestDerivativeIsStructurePreserving(t *testing.T) {
	g := New()
	a := g.Variable()
	b := g.Sum(a, a)
	c := g.Sum(a, b)

	before := g.Len()
	_, sub, err := g.Derivative(c, NewHandleSet(a))
	require.NoError(t, err)

	assert.Equal(t, before, sub.Len())
	assert.Equal(t, 2*before, g.Len())

	originals := g.Subgraph().Handles()[:before]
	for _, h := range sub.Handles() {
		for _, old := range originals {
			assert.True(t, old.Before(h))
		}
	}
}

// The diamond from the path-counting example: every node sums all earlier
// nodes, so the number of paths from a to d is 4, and d(d)/da must equal 4
// through a single shared derivative node per original node.
func TestDerivativeSharesDiamondNodes(t *testing.T) {
	g := New()
	a := g.Variable()
	b := g.Sum(a)
	c := g.Sum(a, b)
	d := g.Sum(a, b, c)

	dd, sub, err := g.Derivative(d, NewHandleSet(a))
	require.NoError(t, err)
	require.Equal(t, 4, sub.Len())

	values, err := g.Evaluate(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, values[dd])
}

// The derivative subgraph is made of ordinary nodes, so it can itself be
// differentiated and evaluated again.
func TestDerivativeOfDerivative(t *testing.T) {
	g := New()
	a := g.Variable()
	b := g.Sum(a, a)

	db, _, err := g.Derivative(b, NewHandleSet(a))
	require.NoError(t, err)

	ddb, sub, err := g.Derivative(db, NewHandleSet(a))
	require.NoError(t, err)

	values, err := g.Evaluate(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, values[ddb])
}

func TestDerivativeForeignTargetFails(t *testing.T) {
	g := New()
	g.Constant(1)

	_, _, err := g.Derivative(Handle{pos: 5}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in graph")
}

func TestDerivativeDenseChainLinear(t *testing.T) {
	const n = 60
	g, v, last := denseChain(n)

	dlast, sub, err := g.Derivative(last, NewHandleSet(v))
	require.NoError(t, err)
	require.Equal(t, n, sub.Len())

	values, err := g.Evaluate(sub, nil)
	require.NoError(t, err)

	// d(v_i)/dv follows the same doubling recurrence as the values.
	want := 1.0
	for i := 0; i < n-2; i++ {
		want *= 2
	}
	assert.Equal(t, want, values[dlast])
}

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/builder"
	"github.com/katalvlaran/lvgrad/topo"
	"github.com/katalvlaran/lvgrad/value"
)

// TestBuild_Guards covers nil graph / nil constructor.
func TestBuild_Guards(t *testing.T) {
	_, err := builder.Build(nil, builder.Chain(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(value.NewGraph(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuild_SizeErrors verifies sentinel errors and that failed
// constructors do not touch the graph.
func TestBuild_SizeErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"chain", builder.Chain(0), builder.ErrBadSize},
		{"sumtree", builder.SumTree(0), builder.ErrBadSize},
		{"diamond", builder.Diamond(-1), builder.ErrBadSize},
		{"neuron empty", builder.Neuron(nil, nil, 0), builder.ErrBadSize},
		{"neuron mismatch", builder.Neuron([]float64{1, 2}, []float64{1}, 0), builder.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := value.NewGraph()
			_, err := builder.Build(g, tc.con)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 0, g.Len())
		})
	}
}

// TestChain checks data, closure size and the op cycle.
func TestChain(t *testing.T) {
	g := value.NewGraph()
	root, err := builder.Build(g, builder.Chain(4), builder.WithLeafFn(builder.ConstantLeafFn(2)))
	require.NoError(t, err)

	// ((2+2)*2-2) = 6, tanh(6)
	assert.Equal(t, math.Tanh(6), root.Data())
	order := topo.Linearize(root)
	assert.Len(t, order, 1+4+3)

	var kinds []value.OpKind
	for _, n := range order {
		if !n.IsLeaf() {
			kinds = append(kinds, n.Kind())
		}
	}
	assert.Equal(t, []value.OpKind{value.OpAdd, value.OpMul, value.OpSub, value.OpTanh}, kinds)
}

// TestSumTree checks the sum and closure size for odd and even n.
func TestSumTree(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 13} {
		g := value.NewGraph()
		root, err := builder.Build(g, builder.SumTree(n))
		require.NoError(t, err)
		assert.Equal(t, float64(n), root.Data(), "n=%d", n)
		assert.Len(t, topo.Linearize(root), 2*n-1, "n=%d", n)
	}
}

// TestDiamond checks that shared operands collapse in the closure.
func TestDiamond(t *testing.T) {
	g := value.NewGraph()
	root, err := builder.Build(g, builder.Diamond(10))
	require.NoError(t, err)

	assert.Equal(t, 1024.0, root.Data())
	assert.Len(t, topo.Linearize(root), 11)

	leafOnly, err := builder.Build(value.NewGraph(), builder.Diamond(0))
	require.NoError(t, err)
	assert.True(t, leafOnly.IsLeaf())
}

// TestNeuron reproduces the classic tanh(x1*w1 + x2*w2 + b) example.
func TestNeuron(t *testing.T) {
	g := value.NewGraph()
	o, err := builder.Build(g, builder.Neuron(
		[]float64{2, 0}, []float64{-3, 1}, 6.8813735870195432))
	require.NoError(t, err)

	assert.Equal(t, value.OpTanh, o.Kind())
	assert.InDelta(t, 0.7071067811865476, o.Data(), 1e-9)
	// x0 w0 x0w0 x1 w1 x1w1 sum b sum+b tanh
	assert.Len(t, topo.Linearize(o), 10)

	leaves := 0
	for _, n := range g.Nodes() {
		if n.IsLeaf() {
			leaves++
		}
	}
	assert.Equal(t, 5, leaves)
}

// TestLeafPolicies verifies seeding determinism and the uniform range.
func TestLeafPolicies(t *testing.T) {
	build := func(opts ...builder.BuilderOption) []float64 {
		g := value.NewGraph()
		_, err := builder.Build(g, builder.SumTree(16), opts...)
		require.NoError(t, err)
		var out []float64
		for _, n := range g.Nodes() {
			if n.IsLeaf() {
				out = append(out, n.Data())
			}
		}
		return out
	}

	uniform := builder.WithLeafFn(builder.UniformLeafFn(-1, 1))
	a := build(uniform, builder.WithSeed(7))
	b := build(uniform, builder.WithRand(rand.New(rand.NewSource(7))))
	assert.Equal(t, a, b)
	for _, x := range a {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}

	// unseeded uniform falls back to min
	for _, x := range build(uniform) {
		assert.Equal(t, -1.0, x)
	}
	// default policy
	for _, x := range build() {
		assert.Equal(t, builder.DefaultLeafValue, x)
	}

	// LeafFn sees consecutive indices
	idx := build(builder.WithLeafFn(func(i int, _ *rand.Rand) float64 { return float64(i) }))
	for i, x := range idx {
		assert.Equal(t, float64(i), x)
	}
}

// TestOptionPanics documents option validation.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithLeafFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.UniformLeafFn(1, 0) })
	assert.NotPanics(t, func() { builder.UniformLeafFn(1, 1) })
}

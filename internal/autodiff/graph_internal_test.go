package autodiff

import (
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagate_MalformedGraph tests nodes that could only come from a
// construction bug: the backward pass must refuse them.
func TestPropagate_MalformedGraph(t *testing.T) {
	tests := []struct {
		name string
		node func(leaf NodeID) Node
	}{
		{"add missing right", func(leaf NodeID) Node {
			return Node{value: 1, op: ops.AddOp{}, left: operand{id: leaf, value: 1, set: true}}
		}},
		{"mul missing left", func(leaf NodeID) Node {
			return Node{value: 1, op: ops.MulOp{}, right: operand{id: leaf, value: 1, set: true}}
		}},
		{"tanh without operand", func(NodeID) Node {
			return Node{value: 0, op: ops.TanhOp{}}
		}},
		{"pow with right operand", func(leaf NodeID) Node {
			return Node{value: 1, op: ops.PowOp{Exponent: 2},
				left:  operand{id: leaf, value: 1, set: true},
				right: operand{id: leaf, value: 1, set: true}}
		}},
		{"div of constants", func(NodeID) Node {
			return Node{value: 1, op: ops.DivOp{},
				left:  operand{id: NoNode, value: 1, set: true},
				right: operand{id: NoNode, value: 1, set: true}}
		}},
		{"leaf with operand", func(leaf NodeID) Node {
			return Node{value: 1, left: operand{id: leaf, value: 1, set: true}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			leaf := g.Leaf(1)
			bad := g.push(tt.node(leaf))

			err := g.Backward(bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedGraph), "%v", err)
		})
	}
}

// TestReverseTopoOrder_Diamond tests Kahn ordering on a diamond with a
// repeated edge (x*x).
func TestReverseTopoOrder_Diamond(t *testing.T) {
	g := NewGraph()
	x := g.Leaf(2)
	sq, err := g.Mul(x, x)
	require.NoError(t, err)
	th, err := g.Tanh(x)
	require.NoError(t, err)
	top, err := g.Add(sq, th)
	require.NoError(t, err)

	assert.Equal(t, []NodeID{top, sq, th, x}, g.reverseTopoOrder(top))
	assert.Equal(t, []NodeID{sq, x}, g.reverseTopoOrder(sq))
}

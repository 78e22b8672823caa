// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Arithmetic on a Graph records every value together with the operation and
// operands that produced it. A backward pass then walks the graph from an
// output node to its inputs in reverse-topological order and accumulates
// gradients with the chain rule.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Leaf(2)
//	    w := g.Leaf(-3)
//
//	    xw, _ := g.Mul(x, w)
//	    y, _ := g.Tanh(xw)
//
//	    // Seed y with gradient 1 and propagate
//	    _ = g.Backward(y)
//	    fmt.Println(g.Grad(x), g.Grad(w))
//	}
//
// Gradients accumulate. Call Graph.ZeroGrad before running another backward
// pass over the same graph.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Graph owns the nodes of a computation.
type Graph = autodiff.Graph

// Node is a read-only view of a graph node.
type Node = autodiff.Node

// NodeID identifies a node in its Graph.
type NodeID = autodiff.NodeID

// Operand is either a NodeID or a Const.
type Operand = autodiff.Operand

// Const is a detached numeric operand that receives no gradient.
type Const = autodiff.Const

// BackwardPass is a seeded, ordered backward traversal.
type BackwardPass = autodiff.BackwardPass

// PassState is the state of a BackwardPass.
type PassState = autodiff.PassState

// Operation is a scalar operation that can be recorded with Graph.Apply.
type Operation = ops.Operation

// Differentiable is an Operation with a local derivative rule.
type Differentiable = ops.Differentiable

// Kind tags the operation that produced a node.
type Kind = ops.Kind

// NoNode is the NodeID of an absent parent.
const NoNode = autodiff.NoNode

// Backward pass states.
const (
	PassReady = autodiff.PassReady
	PassDone  = autodiff.PassDone
)

// Operation kinds.
const (
	KindNone = ops.KindNone
	KindAdd  = ops.KindAdd
	KindMul  = ops.KindMul
	KindDiv  = ops.KindDiv
	KindPow  = ops.KindPow
	KindTanh = ops.KindTanh
)

// Errors reported by graph construction and backward passes.
var (
	ErrMalformedGraph       = autodiff.ErrMalformedGraph
	ErrDivisionByZero       = autodiff.ErrDivisionByZero
	ErrUnsupportedOperation = autodiff.ErrUnsupportedOperation
	ErrInvalidNode          = autodiff.ErrInvalidNode
	ErrNoGraphOperand       = autodiff.ErrNoGraphOperand
	ErrPassDone             = autodiff.ErrPassDone
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

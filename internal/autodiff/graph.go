package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
)

// NodeID identifies a node inside its Graph. IDs are dense indices assigned
// in creation order, so a node's parents always have smaller IDs than the node.
type NodeID int

// NoNode is the NodeID of an absent parent.
const NoNode NodeID = -1

// Operand is an argument of a binary operation: either a NodeID (tracked,
// receives gradient) or a Const (a detached number, receives nothing).
type Operand interface {
	isOperand()
}

// Const is a plain numeric operand. It is stored by value in the consuming
// node and never accumulates gradient.
type Const float32

func (NodeID) isOperand() {}
func (Const) isOperand()  {}

// operand is one operand slot of a node.
type operand struct {
	id    NodeID  // NoNode for constants
	value float32 // forward value of the operand at construction time
	set   bool    // false when the slot is unused
}

func (o operand) isParent() bool {
	return o.set && o.id != NoNode
}

// Node is a scalar value in the computation graph.
//
// Value and topology are fixed at construction; only the gradient changes,
// and only through the backward pass.
type Node struct {
	value float32
	grad  float32
	op    ops.Operation // nil for leaves
	left  operand
	right operand
}

// Value returns the forward value.
func (n Node) Value() float32 { return n.value }

// Grad returns the accumulated gradient.
func (n Node) Grad() float32 { return n.grad }

// Op returns the operation that produced the node, or nil for a leaf.
func (n Node) Op() ops.Operation { return n.op }

// Kind returns the operation tag, ops.KindNone for a leaf.
func (n Node) Kind() ops.Kind {
	if n.op == nil {
		return ops.KindNone
	}
	return n.op.Kind()
}

// Left returns the left parent, if the left operand is a node.
func (n Node) Left() (NodeID, bool) {
	return n.left.id, n.left.isParent()
}

// Right returns the right parent, if the right operand is a node.
func (n Node) Right() (NodeID, bool) {
	return n.right.id, n.right.isParent()
}

// IsLeaf reports whether the node is an input (no operation, no parents).
func (n Node) IsLeaf() bool {
	return n.op == nil
}

// Graph owns every node of a computation and hands out stable NodeIDs.
//
// Usage:
//
//	g := NewGraph()
//	x := g.Leaf(2)
//	y, _ := g.Mul(x, x)
//	_ = g.Backward(y)
//	g.Grad(x) // 4
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 64),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Contains reports whether id belongs to the graph.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a copy of the node. It panics if id is not in the graph.
func (g *Graph) Node(id NodeID) Node {
	return *g.at(id)
}

// Value returns the forward value of a node.
func (g *Graph) Value(id NodeID) float32 {
	return g.at(id).value
}

// Grad returns the gradient accumulated in a node.
func (g *Graph) Grad(id NodeID) float32 {
	return g.at(id).grad
}

// Op returns the operation that produced a node, nil for leaves.
func (g *Graph) Op(id NodeID) ops.Operation {
	return g.at(id).op
}

// Parents returns the node operands of id, left then right.
// Constant operands are not listed.
func (g *Graph) Parents(id NodeID) []NodeID {
	n := g.at(id)
	parents := make([]NodeID, 0, 2)
	if n.left.isParent() {
		parents = append(parents, n.left.id)
	}
	if n.right.isParent() {
		parents = append(parents, n.right.id)
	}
	return parents
}

// Leaves returns the IDs of all leaf nodes in creation order.
func (g *Graph) Leaves() []NodeID {
	var leaves []NodeID
	for i := range g.nodes {
		if g.nodes[i].IsLeaf() {
			leaves = append(leaves, NodeID(i))
		}
	}
	return leaves
}

// ZeroGrad resets every gradient to 0, making the graph ready for a new
// backward pass.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// accumulate adds delta to the gradient of id. It is the only way the
// backward pass writes gradients.
func (g *Graph) accumulate(id NodeID, delta float32) {
	g.nodes[id].grad += delta
}

func (g *Graph) at(id NodeID) *Node {
	if !g.Contains(id) {
		exceptions.Panicf("autodiff: node %d out of range for graph with %d nodes", id, len(g.nodes))
	}
	return &g.nodes[id]
}

func (g *Graph) push(n Node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

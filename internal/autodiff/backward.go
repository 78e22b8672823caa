package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// PassState is the state of a BackwardPass.
type PassState int

const (
	// PassReady means the root is seeded and the order is computed.
	PassReady PassState = iota
	// PassDone means the traversal has run.
	PassDone
)

func (s PassState) String() string {
	switch s {
	case PassReady:
		return "Ready"
	case PassDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// BackwardPass propagates gradients from a root node to all of its ancestors.
//
// Usage:
//
//	pass, err := g.NewBackwardPass(root) // seeds root gradient to 1
//	...
//	err = pass.Run()
//
// Gradients are accumulated, never assigned: running a second pass on the
// same graph without ZeroGrad compounds the contributions of both passes.
type BackwardPass struct {
	graph *Graph
	root  NodeID
	order []NodeID
	state PassState
}

// Backward seeds root with gradient 1 and runs a full backward pass.
func (g *Graph) Backward(root NodeID) error {
	pass, err := g.NewBackwardPass(root)
	if err != nil {
		return err
	}
	return pass.Run()
}

// NewBackwardPass seeds the gradient of root to 1 and computes the
// reverse-topological order of every node reachable from root.
func (g *Graph) NewBackwardPass(root NodeID) (*BackwardPass, error) {
	if !g.Contains(root) {
		return nil, errors.Wrapf(ErrInvalidNode, "backward root %d (graph has %d nodes)", root, len(g.nodes))
	}
	order := g.reverseTopoOrder(root)
	g.nodes[root].grad = 1
	klog.V(2).Infof("backward: root=%d, %d reachable nodes", root, len(order))
	return &BackwardPass{
		graph: g,
		root:  root,
		order: order,
		state: PassReady,
	}, nil
}

// Root returns the node the pass was seeded from.
func (p *BackwardPass) Root() NodeID { return p.root }

// State returns the pass state.
func (p *BackwardPass) State() PassState { return p.state }

// Order returns the traversal order: every node appears before its parents,
// and after all of its consumers reachable from the root.
func (p *BackwardPass) Order() []NodeID {
	return append([]NodeID(nil), p.order...)
}

// Run applies each node's derivative rule in order, accumulating
// contributions into the parents' gradients.
//
// On error the gradients of the graph are partially updated and must not
// be trusted.
func (p *BackwardPass) Run() error {
	if p.state == PassDone {
		return errors.Wrapf(ErrPassDone, "root %d", p.root)
	}
	p.state = PassDone
	for _, id := range p.order {
		if err := p.graph.propagate(id); err != nil {
			return err
		}
	}
	return nil
}

// reverseTopoOrder runs Kahn's algorithm over the subgraph reachable from
// root. A node is emitted only once every reachable consumer has been
// emitted, so its gradient is complete before it propagates.
func (g *Graph) reverseTopoOrder(root NodeID) []NodeID {
	// pending[id] counts edges from reachable consumers into id.
	pending := make(map[NodeID]int)
	visited := map[NodeID]bool{root: true}
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, parent := range g.Parents(id) {
			pending[parent]++
			if !visited[parent] {
				visited[parent] = true
				stack = append(stack, parent)
			}
		}
	}

	order := make([]NodeID, 0, len(visited))
	queue := []NodeID{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, parent := range g.Parents(id) {
			pending[parent]--
			if pending[parent] == 0 {
				queue = append(queue, parent)
			}
		}
	}
	return order
}

// propagate applies the local derivative rule of id.
func (g *Graph) propagate(id NodeID) error {
	n := g.nodes[id]
	if n.op == nil {
		if n.left.set || n.right.set {
			return errors.Wrapf(ErrMalformedGraph, "leaf node %d has operands", id)
		}
		return nil
	}
	if err := n.checkArity(); err != nil {
		return errors.WithMessagef(err, "node %d", id)
	}
	rule, ok := n.op.(ops.Differentiable)
	if !ok {
		return errors.Wrapf(ErrUnsupportedOperation, "node %d: no derivative rule for %s", id, n.op)
	}

	gradA, gradB := rule.Backward(n.grad, n.value, n.left.value, n.right.value)
	if n.left.isParent() {
		g.accumulate(n.left.id, gradA)
		klog.V(3).Infof("backward: %d %s -> left %d += %g", id, n.op, n.left.id, gradA)
	}
	if n.right.isParent() {
		g.accumulate(n.right.id, gradB)
		klog.V(3).Infof("backward: %d %s -> right %d += %g", id, n.op, n.right.id, gradB)
	}
	return nil
}

// checkArity verifies that the operand slots match the operation.
func (n Node) checkArity() error {
	switch n.op.Arity() {
	case 1:
		if !n.left.set {
			return errors.Wrapf(ErrMalformedGraph, "%s is missing its operand", n.op)
		}
		if n.right.set {
			return errors.Wrapf(ErrMalformedGraph, "%s has an unexpected right operand", n.op)
		}
	case 2:
		if !n.left.set || !n.right.set {
			return errors.Wrapf(ErrMalformedGraph, "%s is missing an operand", n.op)
		}
	default:
		return errors.Wrapf(ErrUnsupportedOperation, "%s has arity %d", n.op, n.op.Arity())
	}
	if !n.left.isParent() && !n.right.isParent() {
		return errors.Wrapf(ErrMalformedGraph, "%s has no parent", n.op)
	}
	return nil
}

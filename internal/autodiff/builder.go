package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Leaf adds an input node holding v, with gradient 0.
func (g *Graph) Leaf(v float32) NodeID {
	return g.push(Node{
		value: v,
		left:  operand{id: NoNode},
		right: operand{id: NoNode},
	})
}

// Add records a + b.
func (g *Graph) Add(a, b Operand) (NodeID, error) {
	return g.Apply(ops.AddOp{}, a, b)
}

// Mul records a * b.
func (g *Graph) Mul(a, b Operand) (NodeID, error) {
	return g.Apply(ops.MulOp{}, a, b)
}

// Div records a / b. It returns ErrDivisionByZero, and records nothing,
// when the value of b is zero.
func (g *Graph) Div(a, b Operand) (NodeID, error) {
	return g.Apply(ops.DivOp{}, a, b)
}

// Pow records a raised to the integer power n.
func (g *Graph) Pow(a NodeID, n int) (NodeID, error) {
	return g.Apply(ops.PowOp{Exponent: n}, a, nil)
}

// Tanh records tanh(a).
func (g *Graph) Tanh(a NodeID) (NodeID, error) {
	return g.Apply(ops.TanhOp{}, a, nil)
}

// Neg records -a as a * -1.
func (g *Graph) Neg(a NodeID) (NodeID, error) {
	return g.Mul(a, Const(-1))
}

// Sub records a - b as a + (b * -1). If b is a constant it is negated in place.
func (g *Graph) Sub(a, b Operand) (NodeID, error) {
	switch v := b.(type) {
	case Const:
		return g.Add(a, -v)
	case NodeID:
		neg, err := g.Neg(v)
		if err != nil {
			return NoNode, err
		}
		return g.Add(a, neg)
	default:
		return NoNode, errors.Wrapf(ErrMalformedGraph, "sub: unexpected right operand %T", b)
	}
}

// Apply computes op over the operands and records the result as a new node.
//
// Unary operations take their operand in a and require b to be nil.
// At least one operand must be a NodeID of this graph: constants are
// detached values and an all-constant expression has nothing to differentiate.
func (g *Graph) Apply(op ops.Operation, a, b Operand) (NodeID, error) {
	if op == nil {
		return NoNode, errors.Wrap(ErrMalformedGraph, "nil operation")
	}
	left, err := g.resolve(a)
	if err != nil {
		return NoNode, errors.WithMessagef(err, "%s: left operand", op)
	}
	right, err := g.resolve(b)
	if err != nil {
		return NoNode, errors.WithMessagef(err, "%s: right operand", op)
	}

	switch op.Arity() {
	case 1:
		if !left.set || right.set {
			return NoNode, errors.Wrapf(ErrMalformedGraph, "%s takes exactly one operand", op)
		}
	case 2:
		if !left.set || !right.set {
			return NoNode, errors.Wrapf(ErrMalformedGraph, "%s takes exactly two operands", op)
		}
	default:
		return NoNode, errors.Wrapf(ErrUnsupportedOperation, "%s has arity %d", op, op.Arity())
	}
	if !left.isParent() && !right.isParent() {
		return NoNode, errors.Wrapf(ErrNoGraphOperand, "%s", op)
	}

	value, err := op.Forward(left.value, right.value)
	if err != nil {
		return NoNode, errors.WithMessagef(err, "%s", op)
	}
	return g.push(Node{
		value: value,
		op:    op,
		left:  left,
		right: right,
	}), nil
}

// resolve turns an Operand into an operand slot. A nil Operand is an unused slot.
func (g *Graph) resolve(o Operand) (operand, error) {
	switch v := o.(type) {
	case nil:
		return operand{id: NoNode}, nil
	case Const:
		return operand{id: NoNode, value: float32(v), set: true}, nil
	case NodeID:
		if !g.Contains(v) {
			return operand{}, errors.Wrapf(ErrInvalidNode, "node %d (graph has %d nodes)", v, len(g.nodes))
		}
		return operand{id: v, value: g.nodes[v].value, set: true}, nil
	default:
		return operand{}, errors.Wrapf(ErrMalformedGraph, "unexpected operand type %T", o)
	}
}

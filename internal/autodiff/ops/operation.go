// Package ops defines the scalar operations of the computation graph.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: the output value computed from the operand values
//   - Backward pass (Differentiable): the local derivative rule that turns
//     the output gradient into contributions for each operand
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division (d(a/b)/da = 1/b, d(a/b)/db = -a/b²)
//   - PowOp: integer power (d(aⁿ)/da = n·aⁿ⁻¹)
//   - TanhOp: hyperbolic tangent (d(tanh(a))/da = 1 - tanh²(a))
package ops

import "github.com/pkg/errors"

// ErrDivisionByZero is returned by Forward when an operation would divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Kind tags how a node value was derived.
type Kind int

// Operation kinds. KindNone marks leaf (input) nodes.
const (
	KindNone Kind = iota
	KindAdd
	KindMul
	KindDiv
	KindPow
	KindTanh
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindAdd:
		return "Add"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindPow:
		return "Pow"
	case KindTanh:
		return "Tanh"
	default:
		return "Unknown"
	}
}

// Operation represents a scalar operation in the computation graph.
// Operations are stateless values: the graph stores operand values and the
// output value next to the operation, and passes them back in.
type Operation interface {
	// Kind returns the operation tag.
	Kind() Kind

	// Arity returns the number of operands: 1 (left only) or 2 (left and right).
	Arity() int

	// Forward computes the output value. For unary operations b is ignored.
	Forward(a, b float32) (float32, error)

	// String returns the short symbol used when printing a node, e.g. "+" or "powi(2)".
	String() string
}

// Differentiable is an Operation with a local derivative rule.
//
// The graph dispatches the backward pass through this interface, so an
// Operation that does not implement it cannot be differentiated.
type Differentiable interface {
	Operation

	// Backward returns the contributions to the left and right operands given
	// the output gradient, the output value and the operand values.
	// Unary operations return 0 for gradB.
	//
	// Example for AddOp:
	//   outputGrad: dL/d(a+b)
	//   returns: (dL/d(a+b), dL/d(a+b))
	Backward(outputGrad, output, a, b float32) (gradA, gradB float32)
}

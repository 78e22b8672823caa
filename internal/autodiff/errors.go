package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedGraph reports a node whose operands do not match its
	// operation's arity. It always indicates a bug in graph construction.
	ErrMalformedGraph = errors.New("malformed graph")

	// ErrDivisionByZero is returned by Div (and by Pow with a negative
	// exponent) when the divisor is zero. No node is recorded.
	ErrDivisionByZero = ops.ErrDivisionByZero

	// ErrUnsupportedOperation reports an operation with no derivative rule.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidNode reports a NodeID that does not belong to the graph.
	ErrInvalidNode = errors.New("invalid node")

	// ErrNoGraphOperand reports an operation whose operands are all constants.
	ErrNoGraphOperand = errors.New("operation needs at least one graph node operand")

	// ErrPassDone is returned when Run is called on a finished backward pass.
	ErrPassDone = errors.New("backward pass already run")
)

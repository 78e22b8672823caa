package ops

import "github.com/pkg/errors"

// DivOp represents division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct{}

// Kind returns KindDiv.
func (DivOp) Kind() Kind { return KindDiv }

// Arity returns 2.
func (DivOp) Arity() int { return 2 }

// Forward returns a / b, or ErrDivisionByZero if b is zero.
func (DivOp) Forward(a, b float32) (float32, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%g / %g", a, b)
	}
	return a / b, nil
}

// Backward computes operand gradients for division.
func (DivOp) Backward(outputGrad, _, a, b float32) (gradA, gradB float32) {
	gradA = outputGrad * (1 / b)
	gradB = outputGrad * (-a / (b * b))
	return gradA, gradB
}

func (DivOp) String() string { return "/" }

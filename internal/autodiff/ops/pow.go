package ops

import (
	"fmt"

	"github.com/pkg/errors"
)

// PowOp raises its operand to an integer power: output = aⁿ.
//
// Backward pass:
//   - d(aⁿ)/da = n·aⁿ⁻¹, so grad_a = outputGrad * n * aⁿ⁻¹
type PowOp struct {
	Exponent int
}

// Kind returns KindPow.
func (PowOp) Kind() Kind { return KindPow }

// Arity returns 1.
func (PowOp) Arity() int { return 1 }

// Forward returns aⁿ. A zero base with a negative exponent returns ErrDivisionByZero.
func (op PowOp) Forward(a, _ float32) (float32, error) {
	if a == 0 && op.Exponent < 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "0 raised to %d", op.Exponent)
	}
	return powi(a, op.Exponent), nil
}

// Backward computes the gradient for the integer power.
func (op PowOp) Backward(outputGrad, _, a, _ float32) (gradA, gradB float32) {
	n := op.Exponent
	switch {
	case n == 0:
		return 0, 0
	case n > 0:
		return outputGrad * float32(n) * powi(a, n-1), 0
	default:
		// aⁿ⁻¹ = 1/a^(|n|+1), with the magnitude taken as uint so n-1 cannot wrap.
		return outputGrad * float32(n) / powu(a, uint(-(n+1))+2), 0
	}
}

func (op PowOp) String() string { return fmt.Sprintf("powi(%d)", op.Exponent) }

// powi computes xⁿ by repeated squaring. Negative exponents, math.MinInt
// included, use the magnitude |n| as a uint.
func powi(x float32, n int) float32 {
	if n < 0 {
		return 1 / powu(x, uint(-(n+1))+1)
	}
	return powu(x, uint(n))
}

func powu(x float32, n uint) float32 {
	result := float32(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

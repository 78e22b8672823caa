package ops

import "math"

// TanhOp represents the hyperbolic tangent activation: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
type TanhOp struct{}

// Kind returns KindTanh.
func (TanhOp) Kind() Kind { return KindTanh }

// Arity returns 1.
func (TanhOp) Arity() int { return 1 }

// Forward returns tanh(a).
func (TanhOp) Forward(a, _ float32) (float32, error) {
	return float32(math.Tanh(float64(a))), nil
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
//
// For large |x| the output saturates to ±1 and the gradient vanishes.
func (TanhOp) Backward(outputGrad, output, _, _ float32) (gradA, gradB float32) {
	return outputGrad * (1 - output*output), 0
}

func (TanhOp) String() string { return "tanh" }

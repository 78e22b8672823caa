package ops

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Kind returns KindMul.
func (MulOp) Kind() Kind { return KindMul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (MulOp) Forward(a, b float32) (float32, error) {
	return a * b, nil
}

// Backward computes operand gradients for multiplication.
func (MulOp) Backward(outputGrad, _, a, b float32) (gradA, gradB float32) {
	return outputGrad * b, outputGrad * a
}

func (MulOp) String() string { return "*" }

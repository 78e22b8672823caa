package ops

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Kind returns KindAdd.
func (AddOp) Kind() Kind { return KindAdd }

// Arity returns 2.
func (AddOp) Arity() int { return 2 }

// Forward returns a + b.
func (AddOp) Forward(a, b float32) (float32, error) {
	return a + b, nil
}

// Backward passes the output gradient through unchanged to both operands.
func (AddOp) Backward(outputGrad, _, _, _ float32) (gradA, gradB float32) {
	return outputGrad, outputGrad
}

func (AddOp) String() string { return "+" }

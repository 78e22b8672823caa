package neuron

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_Default tests the canonical neuron end to end.
func TestBuild_Default(t *testing.T) {
	g := autodiff.NewGraph()
	n, err := Build(g, config.Default())
	require.NoError(t, err)
	require.NoError(t, g.Backward(n.Output))

	assert.InDelta(t, 0.7071, g.Value(n.Output), 1e-4)
	assert.InDelta(t, -1.5, g.Grad(n.Inputs[0]), 1e-4)
	assert.InDelta(t, 1.0, g.Grad(n.Weights[0]), 1e-4)
	assert.InDelta(t, 0.5, g.Grad(n.Inputs[1]), 1e-4)
	assert.InDelta(t, 0.0, g.Grad(n.Weights[1]), 1e-4)
	assert.InDelta(t, 0.5, g.Grad(n.Bias), 1e-4)
}

// TestBuild_ThreeInputs tests gradients for a wider neuron.
func TestBuild_ThreeInputs(t *testing.T) {
	cfg := config.Neuron{
		Inputs:  []float32{0.5, -1, 2},
		Weights: []float32{1, 0.25, -0.5},
		Bias:    0.1,
	}
	g := autodiff.NewGraph()
	n, err := Build(g, cfg)
	require.NoError(t, err)
	require.NoError(t, g.Backward(n.Output))

	pre := 0.5*1 + -1*0.25 + 2*-0.5 + 0.1
	out := math.Tanh(pre)
	local := 1 - out*out
	assert.InDelta(t, out, g.Value(n.Output), 1e-5)
	for i := range cfg.Inputs {
		assert.InDelta(t, local*float64(cfg.Weights[i]), g.Grad(n.Inputs[i]), 1e-5)
		assert.InDelta(t, local*float64(cfg.Inputs[i]), g.Grad(n.Weights[i]), 1e-5)
	}
	assert.InDelta(t, local, g.Grad(n.Bias), 1e-5)
}

// TestBuild_Invalid tests that an invalid config adds nothing.
func TestBuild_Invalid(t *testing.T) {
	g := autodiff.NewGraph()
	_, err := Build(g, config.Neuron{Inputs: []float32{1}})
	require.Error(t, err)
	assert.Equal(t, 0, g.Len())
}

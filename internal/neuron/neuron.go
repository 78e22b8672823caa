// Package neuron builds a single tanh neuron on an autodiff graph.
package neuron

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/pkg/errors"
)

// Neuron holds the node IDs of o = tanh(Σ xᵢ·wᵢ + b).
type Neuron struct {
	Inputs  []autodiff.NodeID
	Weights []autodiff.NodeID
	Bias    autodiff.NodeID
	PreAct  autodiff.NodeID // Σ xᵢ·wᵢ + b
	Output  autodiff.NodeID
}

// Build adds the neuron described by cfg to g.
func Build(g *autodiff.Graph, cfg config.Neuron) (*Neuron, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := &Neuron{
		Inputs:  make([]autodiff.NodeID, len(cfg.Inputs)),
		Weights: make([]autodiff.NodeID, len(cfg.Weights)),
	}
	for i := range cfg.Inputs {
		n.Inputs[i] = g.Leaf(cfg.Inputs[i])
		n.Weights[i] = g.Leaf(cfg.Weights[i])
	}
	n.Bias = g.Leaf(cfg.Bias)

	var sum autodiff.NodeID
	for i := range n.Inputs {
		xw, err := g.Mul(n.Inputs[i], n.Weights[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "x%d*w%d", i+1, i+1)
		}
		if i == 0 {
			sum = xw
			continue
		}
		if sum, err = g.Add(sum, xw); err != nil {
			return nil, errors.WithMessagef(err, "sum of x*w up to %d", i+1)
		}
	}

	var err error
	if n.PreAct, err = g.Add(sum, n.Bias); err != nil {
		return nil, errors.WithMessage(err, "adding bias")
	}
	if n.Output, err = g.Tanh(n.PreAct); err != nil {
		return nil, errors.WithMessage(err, "activation")
	}
	return n, nil
}

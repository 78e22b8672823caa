// Package config loads the description of the demonstration neuron.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultBias makes the canonical neuron output tanh(0.8813735870195432) = 1/√2.
const DefaultBias = 6.8813735870195432

// Neuron describes o = tanh(Σ inputs[i]*weights[i] + bias).
type Neuron struct {
	Inputs  []float32 `yaml:"inputs"`
	Weights []float32 `yaml:"weights"`
	Bias    float32   `yaml:"bias"`
}

// Default returns the canonical worked example: x = [2, 0], w = [-3, 1].
func Default() Neuron {
	return Neuron{
		Inputs:  []float32{2, 0},
		Weights: []float32{-3, 1},
		Bias:    DefaultBias,
	}
}

// Load reads a YAML file. Fields missing from the file keep their defaults.
func Load(path string) (Neuron, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Neuron{}, errors.Wrapf(err, "reading config %q", path)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Neuron, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Neuron{}, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Neuron{}, err
	}
	return cfg, nil
}

// Validate checks that the neuron has inputs and one weight per input.
func (n Neuron) Validate() error {
	if len(n.Inputs) == 0 {
		return errors.New("config: neuron needs at least one input")
	}
	if len(n.Inputs) != len(n.Weights) {
		return errors.Errorf("config: %d inputs but %d weights", len(n.Inputs), len(n.Weights))
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float32{2, 0}, cfg.Inputs)
	assert.Equal(t, []float32{-3, 1}, cfg.Weights)
	assert.Equal(t, float32(DefaultBias), cfg.Bias)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("inputs: [1, 2, 3]\nweights: [0.5, -1, 2]\nbias: 0.25\n"))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Inputs)
	assert.Equal(t, []float32{0.5, -1, 2}, cfg.Weights)
	assert.Equal(t, float32(0.25), cfg.Bias)
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("bias: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Inputs, cfg.Inputs)
	assert.Equal(t, float32(1), cfg.Bias)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"mismatch", "inputs: [1]\nweights: [1, 2]\n", "1 inputs but 2 weights"},
		{"empty", "inputs: []\nweights: []\n", "at least one input"},
		{"syntax", "inputs: [1, 2\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuron.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: [3]\nweights: [2]\nbias: -1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, cfg.Inputs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// Package main provides the scalargrad CLI.
//
// It builds small scalar expressions, runs a backward pass over them and
// prints the annotated computation graph.
package main

import (
	"flag"
	"os"

	"github.com/born-ml/scalargrad/internal/config"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	configPath string
	noColor    bool
	neuronCfg  config.Neuron

	rootCmd = &cobra.Command{
		Use:   "scalargrad",
		Short: "Reverse-mode automatic differentiation over scalars",
		Long: `scalargrad builds a scalar computation graph, propagates gradients
from its output back to every input, and prints the annotated graph.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := rootCmd.Execute(); err != nil {
		klog.Errorf("scalargrad: %+v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file describing the neuron (inputs, weights, bias)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(neuronCmd, exprCmd, versionCmd)
}

// loadConfig reads --config, or falls back to the built-in example.
func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		neuronCfg = config.Default()
		return nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	klog.V(1).Infof("loaded config %q: %d inputs", configPath, len(cfg.Inputs))
	neuronCfg = cfg
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/neuron"
	"github.com/born-ml/scalargrad/internal/render"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var neuronCmd = &cobra.Command{
	Use:   "neuron",
	Short: "Differentiate o = tanh(Σ xᵢ·wᵢ + b)",
	Long: `Builds a single neuron from --config (or the built-in example
x = [2, 0], w = [-3, 1], b = 6.8813...), seeds the output gradient to 1,
runs the backward pass and prints the graph and every input gradient.`,
	Args: cobra.NoArgs,
	RunE: runNeuron,
}

func runNeuron(cmd *cobra.Command, args []string) error {
	g := autodiff.NewGraph()
	n, err := neuron.Build(g, neuronCfg)
	if err != nil {
		return err
	}
	if err := g.Backward(n.Output); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := render.New(out, noColor)
	if err := r.PrintTree(out, g, n.Output); err != nil {
		return err
	}

	named := make([]render.Named, 0, 2*len(n.Inputs)+2)
	for i := range n.Inputs {
		named = append(named,
			render.Named{Name: fmt.Sprintf("x%d", i+1), ID: n.Inputs[i]},
			render.Named{Name: fmt.Sprintf("w%d", i+1), ID: n.Weights[i]})
	}
	named = append(named,
		render.Named{Name: "b", ID: n.Bias},
		render.Named{Name: "o", ID: n.Output})
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.GradTable(g, named).String())
	return printSummary(out, r, g)
}

// printSummary writes the node and edge counts of g.
func printSummary(w io.Writer, r *render.Renderer, g *autodiff.Graph) error {
	edges := 0
	for id := autodiff.NodeID(0); int(id) < g.Len(); id++ {
		edges += len(g.Parents(id))
	}
	_, err := fmt.Fprintf(w, "%s %s nodes, %s edges, %s leaves\n", r.Title("graph:"),
		humanize.Comma(int64(g.Len())), humanize.Comma(int64(edges)), humanize.Comma(int64(len(g.Leaves()))))
	return err
}

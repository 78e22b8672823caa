package main

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exprA, exprB, exprE float32

	exprCmd = &cobra.Command{
		Use:   "expr",
		Short: "Differentiate h = tanh(0.01 * (((a + b) + 2) * e))",
		Args:  cobra.NoArgs,
		RunE:  runExpr,
	}
)

func init() {
	exprCmd.Flags().Float32Var(&exprA, "a", 2, "value of a")
	exprCmd.Flags().Float32Var(&exprB, "b", 1, "value of b")
	exprCmd.Flags().Float32Var(&exprE, "e", 10, "value of e")
}

// exprNodes are the named nodes of the expression.
type exprNodes struct {
	a, b, e, h autodiff.NodeID
}

// buildExpr records h = tanh(0.01 * (((a + b) + 2) * e)) on g.
func buildExpr(g *autodiff.Graph, a, b, e float32) (exprNodes, error) {
	var n exprNodes
	n.a, n.b, n.e = g.Leaf(a), g.Leaf(b), g.Leaf(e)

	c, err := g.Add(n.a, n.b)
	if err != nil {
		return n, err
	}
	d, err := g.Add(c, autodiff.Const(2))
	if err != nil {
		return n, err
	}
	f, err := g.Mul(d, n.e)
	if err != nil {
		return n, err
	}
	s, err := g.Mul(autodiff.Const(0.01), f)
	if err != nil {
		return n, err
	}
	n.h, err = g.Tanh(s)
	return n, errors.WithMessage(err, "tanh")
}

func runExpr(cmd *cobra.Command, args []string) error {
	g := autodiff.NewGraph()
	n, err := buildExpr(g, exprA, exprB, exprE)
	if err != nil {
		return err
	}
	if err := g.Backward(n.h); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := render.New(out, noColor)
	if err := r.PrintTree(out, g, n.h); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.GradTable(g, []render.Named{
		{Name: "a", ID: n.a},
		{Name: "b", ID: n.b},
		{Name: "e", ID: n.e},
		{Name: "h", ID: n.h},
	}).String())
	return printSummary(out, r, g)
}

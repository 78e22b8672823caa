// Package render draws computation graphs on a terminal.
//
// It only needs two things per node, a label and the list of parents,
// so it works with any Source and the autodiff core never imports it.
package render

import (
	"fmt"
	"io"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Source exposes the graph structure needed for drawing.
// *autodiff.Graph implements it.
type Source interface {
	// Label returns the text shown for a node.
	Label(id autodiff.NodeID) string
	// Parents returns the operands of a node, left then right.
	Parents(id autodiff.NodeID) []autodiff.NodeID
}

// Gradients exposes node values and gradients for tabular reports.
type Gradients interface {
	Value(id autodiff.NodeID) float32
	Grad(id autodiff.NodeID) float32
}

// Named pairs a node with a display name.
type Named struct {
	Name string
	ID   autodiff.NodeID
}

// Renderer holds the styles used to draw trees and tables for one output.
type Renderer struct {
	lg         *lipgloss.Renderer
	rootStyle  lipgloss.Style
	itemStyle  lipgloss.Style
	enumStyle  lipgloss.Style
	cellStyle  lipgloss.Style
	titleStyle lipgloss.Style
	border     lipgloss.Style
}

// New creates a Renderer writing to w. Colors are disabled when noColor is
// set or w is not a terminal.
func New(w io.Writer, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if noColor || !IsTerminal(w) {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		lg:         lg,
		rootStyle:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		itemStyle:  lg.NewStyle().Foreground(lipgloss.Color("252")),
		enumStyle:  lg.NewStyle().Foreground(lipgloss.Color("99")).MarginRight(1),
		cellStyle:  lg.NewStyle().PaddingLeft(1).PaddingRight(1),
		titleStyle: lg.NewStyle().Bold(true),
		border:     lg.NewStyle().Foreground(lipgloss.Color("99")),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Tree builds the tree rooted at root: each node's parents become its
// children. A node shared by several consumers is drawn under each of them.
func (r *Renderer) Tree(src Source, root autodiff.NodeID) *tree.Tree {
	t := tree.Root(r.rootStyle.Render(src.Label(root))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.enumStyle).
		ItemStyle(r.itemStyle)
	for _, p := range src.Parents(root) {
		if len(src.Parents(p)) == 0 {
			t.Child(src.Label(p))
			continue
		}
		t.Child(r.Tree(src, p))
	}
	return t
}

// GradTable builds a table with the value and gradient of each named node.
func (r *Renderer) GradTable(g Gradients, nodes []Named) *table.Table {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			n.Name,
			fmt.Sprintf("%.4f", g.Value(n.ID)),
			fmt.Sprintf("%.4f", g.Grad(n.ID)),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			return r.cellStyle
		}).
		Headers("node", "value", "grad").
		Rows(rows...)
}

// Title renders a section title.
func (r *Renderer) Title(s string) string {
	return r.titleStyle.Render(s)
}

// PrintTree writes the tree rooted at root to w.
func (r *Renderer) PrintTree(w io.Writer, src Source, root autodiff.NodeID) error {
	_, err := fmt.Fprintln(w, r.Tree(src, root).String())
	return err
}

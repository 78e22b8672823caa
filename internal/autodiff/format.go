package autodiff

import "fmt"

// String renders the node as "Val(value; Δgrad)", followed by "<- op" when
// the node was produced by an operation.
func (n Node) String() string {
	if n.op == nil {
		return fmt.Sprintf("Val(%v; Δ%v)", n.value, n.grad)
	}
	return fmt.Sprintf("Val(%v; Δ%v) <- %s", n.value, n.grad, n.op)
}

// Label returns the textual rendering of a node, see Node.String.
// Together with Parents it is everything a tree renderer needs.
func (g *Graph) Label(id NodeID) string {
	return g.at(id).String()
}

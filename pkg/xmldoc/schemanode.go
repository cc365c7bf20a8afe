package xmldoc

import "github.com/adammathes/xrefcheck/pkg/schema"

// docNode and docWrapper satisfy pkg/schema's Document/Node interfaces
// over a parsed tree, the thin adapter needed between the engine and
// whichever XML library backs it.
type docNode struct{ n *Node }

func (a docNode) XPath(expr string, ns map[string]string) ([]schema.Node, error) {
	nodes, err := a.n.Select(expr, ns)
	if err != nil {
		return nil, err
	}
	return wrapNodes(nodes), nil
}

func (a docNode) Attribute(name string) (string, bool) { return a.n.Attribute(name) }

func (a docNode) Children() []schema.Node { return wrapNodes(a.n.Children()) }

func (a docNode) Text() string { return a.n.Text() }

func (a docNode) Line() int { return a.n.Line() }

func wrapNodes(nodes []*Node) []schema.Node {
	out := make([]schema.Node, len(nodes))
	for i, n := range nodes {
		out[i] = docNode{n}
	}
	return out
}

type docWrapper struct{ d *Document }

func (w docWrapper) XPath(expr string, ns map[string]string) ([]schema.Node, error) {
	nodes, err := w.d.Select(expr, ns)
	if err != nil {
		return nil, err
	}
	return wrapNodes(nodes), nil
}

// AsDocument adapts a parsed Document to schema.Document.
func AsDocument(d *Document) schema.Document { return docWrapper{d} }

// AsNode adapts a single parsed Node to schema.Node.
func AsNode(n *Node) schema.Node { return docNode{n} }

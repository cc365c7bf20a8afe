package xmldoc

import "github.com/antchfx/xpath"

// navigator adapts a Node tree to antchfx/xpath's NodeNavigator, the same
// compiler/context/navigator split other_examples/santhosh-tekuri-xpath__eval.go
// uses over its own DOM. attr is -1 when positioned on an element/text/root
// node, otherwise an index into curr.Attrs.
type navigator struct {
	root *Node
	curr *Node
	attr int
}

func newNavigator(start *Node) *navigator {
	return &navigator{root: start, curr: start, attr: -1}
}

func (n *navigator) NodeType() xpath.NodeType {
	if n.attr != -1 {
		return xpath.AttributeNode
	}
	switch n.curr.Kind {
	case RootKind:
		return xpath.RootNode
	case ElementKind:
		return xpath.ElementNode
	case TextKind:
		return xpath.TextNode
	default:
		return xpath.ElementNode
	}
}

func (n *navigator) LocalName() string {
	if n.attr != -1 {
		return n.curr.Attrs[n.attr].Name.Local
	}
	return n.curr.Name.Local
}

// Prefix is always empty: selection never relies on it. Namespace
// qualifiers are stripped out of expressions before compilation and
// re-checked against Node.Name.Space directly in Go, see xpath.go.
func (n *navigator) Prefix() string { return "" }

func (n *navigator) Value() string {
	if n.attr != -1 {
		return n.curr.Attrs[n.attr].Data
	}
	switch n.curr.Kind {
	case TextKind:
		return n.curr.Data
	case ElementKind, RootKind:
		return textUnder(n.curr)
	default:
		return ""
	}
}

func (n *navigator) Copy() xpath.NodeNavigator {
	n2 := *n
	return &n2
}

func (n *navigator) MoveToRoot() {
	for n.curr.Parent != nil {
		n.curr = n.curr.Parent
	}
	n.attr = -1
}

func (n *navigator) MoveToParent() bool {
	if n.attr != -1 {
		n.attr = -1
		return true
	}
	if n.curr.Parent == nil {
		return false
	}
	n.curr = n.curr.Parent
	return true
}

func (n *navigator) MoveToNextAttribute() bool {
	if n.attr+1 >= len(n.curr.Attrs) {
		return false
	}
	n.attr++
	return true
}

func (n *navigator) MoveToChild() bool {
	if n.attr != -1 || n.curr.FirstChild == nil {
		return false
	}
	n.curr = n.curr.FirstChild
	return true
}

func (n *navigator) MoveToFirst() bool {
	if n.attr != -1 || n.curr.PrevSibling == nil {
		return false
	}
	for n.curr.PrevSibling != nil {
		n.curr = n.curr.PrevSibling
	}
	return true
}

func (n *navigator) MoveToNext() bool {
	if n.attr != -1 || n.curr.NextSibling == nil {
		return false
	}
	n.curr = n.curr.NextSibling
	return true
}

func (n *navigator) MoveToPrevious() bool {
	if n.attr != -1 || n.curr.PrevSibling == nil {
		return false
	}
	n.curr = n.curr.PrevSibling
	return true
}

func (n *navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*navigator)
	if !ok || o.root != n.root {
		return false
	}
	n.curr, n.attr = o.curr, o.attr
	return true
}

func (n *navigator) String() string { return n.Value() }

func textUnder(n *Node) string {
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == TextKind {
			s += c.Data
		} else {
			s += textUnder(c)
		}
	}
	return s
}

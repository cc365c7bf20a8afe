// Package xmldoc parses an XML document into a node tree and exposes
// XPath 1.0 selection over it, with per-node line attribution. It is the
// external collaborator the engine delegates to: pkg/schema only ever
// talks to the Document/Node interface this package implements, never to
// encoding/xml or antchfx/xpath directly.
package xmldoc

import "encoding/xml"

// NodeKind distinguishes the handful of node shapes this package tracks.
// Comments and processing instructions are dropped during parsing; the
// engine never needs them.
type NodeKind int

const (
	RootKind NodeKind = iota
	ElementKind
	AttributeKind
	TextKind
)

// Node is one element, attribute, or text node in a parsed document.
// Zero value is not meaningful; Nodes are only produced by Parse.
type Node struct {
	Kind NodeKind
	Name xml.Name // Local + Space (a resolved namespace URI, not a prefix); empty for TextKind
	Data string   // attribute value for AttributeKind, text content for TextKind

	line int // 1-based line of the opening tag; 0 for AttributeKind (inherits Parent's line)

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
	Attrs       []*Node // AttributeKind children, in document order
}

// Document is a parsed XML document, rooted at a single element.
type Document struct {
	root *Node // RootKind node whose only child is the document element
}

// Root returns the document element (not the synthetic RootKind wrapper).
func (d *Document) Root() *Node {
	return d.root.FirstChild
}

// Line returns the node's 1-based source line, falling back to the
// owning element's line for attribute nodes.
func (n *Node) Line() int {
	if n.Kind == AttributeKind && n.line == 0 {
		return n.Parent.line
	}
	return n.line
}

// Attribute returns the raw (untrimmed) value of the named attribute and
// whether it was present. Namespace prefixes in name are not resolved
// here: name is compared against the attribute's local name only.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Data, true
		}
	}
	return "", false
}

// Children returns the direct child nodes (elements and text, not attributes).
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Text returns the concatenation of all direct text children, untrimmed.
func (n *Node) Text() string {
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == TextKind {
			s += c.Data
		}
	}
	return s
}

func (n *Node) appendChild(c *Node) {
	c.Parent = n
	if n.LastChild == nil {
		n.FirstChild = c
		n.LastChild = c
	} else {
		n.LastChild.NextSibling = c
		c.PrevSibling = n.LastChild
		n.LastChild = c
	}
}

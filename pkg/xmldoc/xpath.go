package xmldoc

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
)

// Select evaluates expr against n using its children and descendants as
// XPath would see them, honoring namespace prefixes declared in ns
// (prefix -> URI). Absolute paths ("/..." or "//...") evaluate from the
// document root regardless of n, matching standard XPath semantics;
// relative paths are evaluated with n as the context node.
func (n *Node) Select(expr string, ns map[string]string) ([]*Node, error) {
	bare, checks, err := prepareExpr(expr, ns)
	if err != nil {
		return nil, err
	}
	compiled, err := xpath.Compile(bare)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: compile %q: %w", expr, err)
	}

	nav := newNavigator(n)
	iter := compiled.Select(nav)
	var out []*Node
	for iter.MoveNext() {
		cur := iter.Current().(*navigator)
		if cur.attr != -1 {
			candidate := cur.curr.Attrs[cur.attr]
			if checks.attrURI != "" && candidate.Name.Space != checks.attrURI {
				continue
			}
			out = append(out, candidate)
			continue
		}
		if checks.elemURI != "" && cur.curr.Name.Space != checks.elemURI {
			continue
		}
		out = append(out, cur.curr)
	}
	return out, nil
}

// Select is the Document-level equivalent of Node.Select, rooted at the
// document element.
func (d *Document) Select(expr string, ns map[string]string) ([]*Node, error) {
	return d.Root().Select(expr, ns)
}

// nsChecks carries the namespace URIs this package could not hand off to
// antchfx/xpath because encoding/xml resolves element/attribute Name.Space
// to a URI, not the prefix the expression text uses. Only the URI of the
// last qualified element step and of the last qualified attribute step
// are kept, and they are checked against the selected nodes themselves
// (element results against the former, attribute results against the
// latter); qualifiers on earlier steps are stripped for structural
// matching and not re-verified. Schemas in this engine always name one target
// element type per handle, so this covers the rule shapes the engine
// actually needs; see DESIGN.md for the full rationale.
type nsChecks struct {
	elemURI string
	attrURI string
}

// prepareExpr strips "prefix:" qualifiers from every step of expr (so the
// antchfx/xpath compiler never has to resolve a prefix itself) and
// records the URI of the last qualified element step and the last
// qualified attribute step for a post-selection check.
func prepareExpr(expr string, ns map[string]string) (string, nsChecks, error) {
	var checks nsChecks
	segments := strings.Split(expr, "/")
	for i, seg := range segments {
		if seg == "" || seg == "text()" || seg == "*" || seg == "." || seg == ".." {
			continue
		}
		isAttr := strings.HasPrefix(seg, "@")
		name := seg
		if isAttr {
			name = seg[1:]
		}
		// Drop a trailing predicate (e.g. "foo[@x='y']") before looking
		// for a prefix; the predicate text is left untouched.
		local := name
		if idx := strings.IndexByte(name, '['); idx >= 0 {
			local = name[:idx]
		}
		colon := strings.IndexByte(local, ':')
		if colon < 0 {
			continue
		}
		prefix, bare := local[:colon], local[colon+1:]
		uri, ok := ns[prefix]
		if !ok {
			return "", checks, fmt.Errorf("xmldoc: unbound namespace prefix %q in %q", prefix, expr)
		}
		rest := name[len(local):]
		stripped := bare + rest
		if isAttr {
			stripped = "@" + stripped
			checks.attrURI = uri
		} else {
			checks.elemURI = uri
		}
		segments[i] = stripped
	}
	return strings.Join(segments, "/"), checks, nil
}

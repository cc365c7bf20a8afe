package schema

import (
	"strings"
)

// XPathHandle pairs an XPath expression with the namespace bindings needed
// to evaluate it, plus the value-kind derived from its trailing suffix.
type XPathHandle struct {
	expression string
	namespaces map[string]string
	kind       ValueKind
	withoutSfx string
	attrName   string
}

// ValueKind classifies how an XPathHandle converts a selected node into a
// comparable string, derived once from the trailing shape of its expression.
type ValueKind int

const (
	ValueOpaque ValueKind = iota
	ValueAttribute
	ValueText
)

// NewXPathHandle builds a handle from expression and its namespace
// bindings, classifying its value-kind from a trailing "/@NAME/text()" or
// "/text()" suffix (the suffix may be the whole expression, as in a rule
// assertion's relative "@id/text()" or bare "text()"). An expression with
// neither suffix is opaque: selection only, no value extraction.
func NewXPathHandle(expression string, namespaces map[string]string) XPathHandle {
	h := XPathHandle{expression: expression, namespaces: cloneNS(namespaces)}
	h.kind, h.withoutSfx, h.attrName = deriveValueKind(expression)
	return h
}

// deriveValueKind inspects the trailing "/@NAME/text()" or "/text()" on
// expression and splits it into a value-kind, the selection path with
// that suffix stripped, and (for attribute-kind) the attribute name. A
// suffix with no element path before it (e.g. "@id/text()", "text()")
// selects the context node itself via ".".
func deriveValueKind(expression string) (kind ValueKind, withoutSfx, attrName string) {
	if expression == "text()" {
		return ValueText, ".", ""
	}

	const suffix = "/text()"
	if !strings.HasSuffix(expression, suffix) {
		return ValueOpaque, expression, ""
	}
	body := strings.TrimSuffix(expression, suffix)

	prefix, lastSeg := "", body
	if idx := strings.LastIndexByte(body, '/'); idx >= 0 {
		prefix, lastSeg = body[:idx], body[idx+1:]
	}

	if strings.HasPrefix(lastSeg, "@") {
		if prefix == "" {
			prefix = "."
		}
		return ValueAttribute, prefix, lastSeg[1:]
	}

	return ValueText, body, ""
}

func cloneNS(ns map[string]string) map[string]string {
	out := make(map[string]string, len(ns))
	for k, v := range ns {
		out[k] = v
	}
	return out
}

// Kind reports the value-kind derived at construction.
func (h XPathHandle) Kind() ValueKind { return h.kind }

// Display returns the full original expression, used verbatim in diagnostics.
func (h XPathHandle) Display() string { return h.expression }

// WithoutValueSuffix returns the expression with its trailing value suffix
// stripped; this is the form used for node selection.
func (h XPathHandle) WithoutValueSuffix() string { return h.withoutSfx }

// Select evaluates the handle's selection path against node, in document order.
func (h XPathHandle) Select(node Node) ([]Node, error) {
	return node.XPath(h.withoutSfx, h.namespaces)
}

// ValueOf extracts the comparable string from a node that Select returned,
// reporting ok=false when no usable value exists (the ⊥ case).
func (h XPathHandle) ValueOf(node Node) (string, bool) {
	switch h.kind {
	case ValueAttribute:
		raw, ok := node.Attribute(h.attrName)
		if !ok {
			return "", false
		}
		v := strings.TrimSpace(raw)
		if v == "" {
			return "", false
		}
		return v, true

	case ValueText:
		// "*" matches only element children under standard XPath axis
		// rules, so a non-empty result means node has element content
		// and therefore cannot be a plain-text value per the engine's
		// mixed-content rule.
		if elems, err := node.XPath("*", nil); err != nil || len(elems) > 0 {
			return "", false
		}
		v := strings.TrimSpace(node.Text())
		if v == "" {
			return "", false
		}
		return v, true

	default:
		return "", false
	}
}

// Compose builds the handle for evaluating other relative to a node
// selected by h: the composed expression is h's selection path joined
// with other's full expression, and the namespace map is the union with
// other's bindings winning on collision. Used only to build the display
// XPaths the engine reports in diagnostics, and to extend a Scope's
// cascading prefix.
func (h XPathHandle) Compose(other XPathHandle) XPathHandle {
	merged := cloneNS(h.namespaces)
	for k, v := range other.namespaces {
		merged[k] = v
	}
	return NewXPathHandle(h.withoutSfx+"/"+other.expression, merged)
}

package schema

// Scope holds a context selector and nested child scopes/rules. It
// cascades a composed display prefix down through its children and
// evaluates its own rules against every node the fully composed path
// selects from the original evaluation node.
type Scope struct {
	Context XPathHandle
	Scopes  []*Scope
	Rules   []*Rule
}

// Validate emits, in order: diagnostics from every nested Scope (against
// node, unchanged, with the extended prefix), then diagnostics from every
// Rule evaluated against each node the extended prefix selects from node.
// The extended prefix labels diagnostics and, selected from node, locates
// the rule anchors; nested scopes are always evaluated against node
// itself, so the path is never applied twice.
func (s *Scope) Validate(node Node, prefix *XPathHandle) ([]Diagnostic, error) {
	newPrefix := qualify(prefix, s.Context)

	var diags []Diagnostic
	for _, child := range s.Scopes {
		d, err := child.Validate(node, &newPrefix)
		if err != nil {
			return nil, err
		}
		diags = append(diags, d...)
	}

	if len(s.Rules) == 0 {
		return diags, nil
	}

	anchors, err := newPrefix.Select(node)
	if err != nil {
		return nil, err
	}
	for _, m := range anchors {
		for _, rule := range s.Rules {
			d, err := rule.Validate(m, &newPrefix)
			if err != nil {
				return nil, err
			}
			diags = append(diags, d...)
		}
	}
	return diags, nil
}

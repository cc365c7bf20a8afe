package schema

// Pattern is a top-level grouping with a root context selector and the
// scopes and rules evaluated once per matching context node.
type Pattern struct {
	Title   string
	Context XPathHandle
	Scopes  []*Scope
	Rules   []*Rule
}

// Validate selects Context against document and evaluates every nested
// scope, then every rule declared directly in the pattern, against each
// matching node with no enclosing display prefix.
func (p *Pattern) Validate(document Document) ([]Diagnostic, error) {
	ctxNodes, err := document.XPath(p.Context.WithoutValueSuffix(), p.Context.namespaces)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for _, ctx := range ctxNodes {
		for _, s := range p.Scopes {
			d, err := s.Validate(ctx, nil)
			if err != nil {
				return nil, err
			}
			diags = append(diags, d...)
		}
		for _, r := range p.Rules {
			d, err := r.Validate(ctx, nil)
			if err != nil {
				return nil, err
			}
			diags = append(diags, d...)
		}
	}
	return diags, nil
}

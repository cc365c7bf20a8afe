package schema

// Rule holds a source selector, an ordered set of child/target assertions,
// a link direction, and a required-ness policy. It builds a fresh
// Validator for each evaluation site.
type Rule struct {
	Source    XPathHandle
	Targets   []Assertion
	Direction Direction
	Required  Required
}

// Validate builds a Validator from the rule and runs it at node, labelling
// its diagnostics with prefix.
func (r *Rule) Validate(node Node, prefix *XPathHandle) ([]Diagnostic, error) {
	v := Validator{
		Source:    r.Source,
		Targets:   r.Targets,
		Direction: r.Direction,
		Required:  r.Required,
	}
	return v.Validate(node, prefix)
}

package schema

// Direction controls which of the forward/backward passes a Validator runs.
type Direction int

const (
	Forward Direction = iota
	Backward
	Both
)

// Required promotes "no link found" from silent to a diagnostic in the
// direction(s) named.
type Required int

const (
	RequiredNone Required = iota
	RequiredForward
	RequiredBackward
	RequiredBoth
)

// Assertion pairs a child selector, evaluated relative to a source node,
// with the target the child's value must resolve to.
type Assertion struct {
	Child  XPathHandle
	Target XPathHandle
}

// Validator checks link integrity for one Rule at one evaluation site.
// It is stateless across calls: the same value can be reused freely.
type Validator struct {
	Source    XPathHandle
	Targets   []Assertion
	Direction Direction
	Required  Required
}

// qualify composes prefix with h; prefix nil (no enclosing scope) leaves h
// unchanged. The Validator uses the result for diagnostic display only;
// Scope also selects its rule anchors with it.
func qualify(prefix *XPathHandle, h XPathHandle) XPathHandle {
	if prefix == nil {
		return h
	}
	return prefix.Compose(h)
}

// Validate runs the forward and/or backward pass against contextNode,
// labelling diagnostics with prefix (nil at the top of a Pattern).
func (v Validator) Validate(contextNode Node, prefix *XPathHandle) ([]Diagnostic, error) {
	var diags []Diagnostic

	if v.Direction == Forward || v.Direction == Both {
		d, err := v.forwardPass(contextNode, prefix)
		if err != nil {
			return nil, err
		}
		diags = append(diags, d...)
	}
	if v.Direction == Backward || v.Direction == Both {
		d, err := v.backwardPass(contextNode, prefix)
		if err != nil {
			return nil, err
		}
		diags = append(diags, d...)
	}
	return diags, nil
}

func (v Validator) forwardPass(contextNode Node, prefix *XPathHandle) ([]Diagnostic, error) {
	var diags []Diagnostic

	sourceNodes, err := v.Source.Select(contextNode)
	if err != nil {
		return nil, err
	}

	for _, sn := range sourceNodes {
		sv, ok := v.Source.ValueOf(sn)
		if !ok {
			diags = append(diags, ValueMissing{XPath: qualify(prefix, v.Source).Display(), Line: sn.Line()})
			continue
		}

		isParent := false

		for _, a := range v.Targets {
			childNodes, err := a.Child.Select(sn)
			if err != nil {
				return nil, err
			}
			for _, cn := range childNodes {
				cv, ok := a.Child.ValueOf(cn)
				if !ok {
					diags = append(diags, ValueMissing{
						XPath: qualify(prefix, v.Source.Compose(a.Child)).Display(),
						Line:  cn.Line(),
					})
					continue
				}
				isParent = true

				targetNodes, err := a.Target.Select(contextNode)
				if err != nil {
					return nil, err
				}
				matched := false
				for _, tn := range targetNodes {
					tv, ok := a.Target.ValueOf(tn)
					if !ok {
						diags = append(diags, ValueMissing{XPath: qualify(prefix, a.Target).Display(), Line: tn.Line()})
						continue
					}
					if tv == cv {
						matched = true
					}
				}

				// A source's own broken link surfaces here whenever a child
				// value exists, independent of Required -- except when
				// Required names backward exclusively, in which case this
				// rule isn't asserting anything about the forward direction
				// and the mismatch is not this source's problem to report.
				if !matched && v.Required != RequiredBackward {
					diags = append(diags, LinkBroken{
						SourceXPath: qualify(prefix, v.Source.Compose(a.Child)).Display(),
						TargetXPath: qualify(prefix, a.Target).Display(),
						Line:        cn.Line(),
						Value:       cv,
					})
				}
			}
		}

		if !isParent && (v.Required == RequiredForward || v.Required == RequiredBoth) {
			for _, a := range v.Targets {
				diags = append(diags, ChildMissing{
					ParentXPath: qualify(prefix, v.Source).Display(),
					ChildXPath:  qualify(prefix, v.Source.Compose(a.Child)).Display(),
					Line:        sn.Line(),
					Value:       sv,
				})
			}
		}
	}

	return diags, nil
}

func (v Validator) backwardPass(contextNode Node, prefix *XPathHandle) ([]Diagnostic, error) {
	var diags []Diagnostic

	for _, a := range v.Targets {
		targetNodes, err := a.Target.Select(contextNode)
		if err != nil {
			return nil, err
		}

		for _, tn := range targetNodes {
			tv, ok := a.Target.ValueOf(tn)
			if !ok {
				diags = append(diags, ValueMissing{XPath: qualify(prefix, a.Target).Display(), Line: tn.Line()})
				continue
			}

			any := false
			for _, b := range v.Targets {
				sourceNodes, err := v.Source.Select(contextNode)
				if err != nil {
					return nil, err
				}
				for _, sn := range sourceNodes {
					if _, ok := v.Source.ValueOf(sn); !ok {
						diags = append(diags, ValueMissing{XPath: qualify(prefix, v.Source).Display(), Line: sn.Line()})
						continue
					}

					childNodes, err := b.Child.Select(sn)
					if err != nil {
						return nil, err
					}
					for _, cn := range childNodes {
						cv, ok := b.Child.ValueOf(cn)
						if !ok {
							diags = append(diags, ValueMissing{
								XPath: qualify(prefix, v.Source.Compose(b.Child)).Display(),
								Line:  cn.Line(),
							})
							continue
						}
						if cv == tv {
							any = true
						}
					}
				}
			}

			if !any && (v.Required == RequiredBackward || v.Required == RequiredBoth) {
				for _, b := range v.Targets {
					diags = append(diags, LinkBroken{
						SourceXPath: qualify(prefix, a.Target).Display(),
						TargetXPath: qualify(prefix, v.Source.Compose(b.Child)).Display(),
						Line:        tn.Line(),
						Value:       tv,
					})
				}
			}
		}
	}

	return diags, nil
}

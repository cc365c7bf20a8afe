package schema

import "fmt"

// Schema is the immutable root of a validation tree: a set of namespace
// bindings and an ordered list of Patterns. Built once by an external
// collaborator (the fluent Builder or the YAML loader) and held immutable
// for the lifetime of a validation run.
type Schema struct {
	Title      string
	Namespaces map[string]string
	Patterns   []*Pattern
}

// Validate runs every pattern in declaration order against document and
// concatenates their diagnostics. An engine fault (malformed XPath, an
// unbound namespace prefix, anything the collaborator's document raises)
// aborts the whole call and discards any findings already collected;
// engine faults never surface through the Diagnostic sequence.
func (s *Schema) Validate(document Document) ([]Diagnostic, error) {
	var diags []Diagnostic
	for _, p := range s.Patterns {
		d, err := p.Validate(document)
		if err != nil {
			return nil, fmt.Errorf("schema: pattern %q: %w", p.Title, err)
		}
		diags = append(diags, d...)
	}
	return diags, nil
}

package schema

// Builder constructs an immutable Schema tree via chained calls, the Go
// analogue of the nested-block construction API in the engine's external
// interface: schema(title) { ns(...)*; pattern(...) { ... }* }.
type Builder struct {
	title    string
	ns       map[string]string
	patterns []*Pattern
}

// NewSchema starts a Builder for a schema titled title.
func NewSchema(title string) *Builder {
	return &Builder{title: title, ns: map[string]string{}}
}

// NS declares a namespace binding visible to every expression built under
// this schema.
func (b *Builder) NS(prefix, uri string) *Builder {
	b.ns[prefix] = uri
	return b
}

// Pattern declares a top-level pattern with root context context, building
// its scopes and rules via build.
func (b *Builder) Pattern(title, context string, build func(*ScopeBuilder)) *Builder {
	sb := &ScopeBuilder{ns: b.ns}
	build(sb)
	b.patterns = append(b.patterns, &Pattern{
		Title:   title,
		Context: NewXPathHandle(context, b.ns),
		Scopes:  sb.scopes,
		Rules:   sb.rules,
	})
	return b
}

// Build finalizes the tree into an immutable Schema.
func (b *Builder) Build() *Schema {
	return &Schema{Title: b.title, Namespaces: cloneNS(b.ns), Patterns: b.patterns}
}

// ScopeBuilder accumulates the nested scopes and rules declared inside a
// pattern or an enclosing scope block.
type ScopeBuilder struct {
	ns     map[string]string
	scopes []*Scope
	rules  []*Rule
}

// Scope declares a nested scope with context context, building its own
// nested scopes and rules via build.
func (sb *ScopeBuilder) Scope(context string, build func(*ScopeBuilder)) *ScopeBuilder {
	inner := &ScopeBuilder{ns: sb.ns}
	build(inner)
	sb.scopes = append(sb.scopes, &Scope{
		Context: NewXPathHandle(context, sb.ns),
		Scopes:  inner.scopes,
		Rules:   inner.rules,
	})
	return sb
}

// Rule declares a link rule with the engine's defaults (direction=forward,
// required=none), collecting its assertions via build.
func (sb *ScopeBuilder) Rule(source string, build func(*RuleBuilder)) *ScopeBuilder {
	return sb.RuleWithOptions(source, Forward, RequiredNone, build)
}

// RuleWithOptions declares a link rule with an explicit direction and
// required-ness, collecting its assertions via build.
func (sb *ScopeBuilder) RuleWithOptions(source string, direction Direction, required Required, build func(*RuleBuilder)) *ScopeBuilder {
	rb := &RuleBuilder{ns: sb.ns}
	build(rb)
	sb.rules = append(sb.rules, &Rule{
		Source:    NewXPathHandle(source, sb.ns),
		Targets:   rb.assertions,
		Direction: direction,
		Required:  required,
	})
	return sb
}

// RuleBuilder accumulates the assert(child, target) pairs declared inside
// a rule block.
type RuleBuilder struct {
	ns         map[string]string
	assertions []Assertion
}

// Assert declares one child/target assertion, evaluated in declaration order.
func (rb *RuleBuilder) Assert(child, target string) *RuleBuilder {
	rb.assertions = append(rb.assertions, Assertion{
		Child:  NewXPathHandle(child, rb.ns),
		Target: NewXPathHandle(target, rb.ns),
	})
	return rb
}

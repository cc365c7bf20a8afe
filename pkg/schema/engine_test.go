package schema_test

import (
	"testing"

	"github.com/adammathes/xrefcheck/pkg/schema"
	"github.com/adammathes/xrefcheck/pkg/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, xml string) schema.Document {
	t.Helper()
	doc, err := xmldoc.ParseBytes([]byte(xml))
	require.NoError(t, err)
	return xmldoc.AsDocument(doc)
}

// single assertion rule shared by S1/S2: source //s/@id/text(), child
// @id/text() on the selected source node, target //t/@id/text().
func idLinkSchema(direction schema.Direction, required schema.Required) *schema.Schema {
	return schema.NewSchema("s-t link").
		Pattern("root", "/", func(sb *schema.ScopeBuilder) {
			sb.RuleWithOptions("//s/@id/text()", direction, required, func(rb *schema.RuleBuilder) {
				rb.Assert("@id/text()", "//t/@id/text()")
			})
		}).
		Build()
}

func TestS1_ResolvableForwardLink(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="1"/><t id="1"/></r>`)
	sc := idLinkSchema(schema.Forward, schema.RequiredForward)

	diags, err := sc.Validate(doc)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestS2_BrokenForwardLink(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="1"/><t id="2"/></r>`)
	sc := idLinkSchema(schema.Forward, schema.RequiredForward)

	diags, err := sc.Validate(doc)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	lb, ok := diags[0].(schema.LinkBroken)
	require.True(t, ok)
	assert.Equal(t, "//s/@id/text()", lb.SourceXPath)
	assert.Equal(t, "//t/@id/text()", lb.TargetXPath)
	assert.Equal(t, "1", lb.Value)
	assert.Equal(t, 1, lb.Line)
}

func TestS3_MissingRequiredChild(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="1"/></r>`)
	sc := schema.NewSchema("missing child").
		Pattern("root", "/", func(sb *schema.ScopeBuilder) {
			sb.RuleWithOptions("//s/@id/text()", schema.Forward, schema.RequiredForward, func(rb *schema.RuleBuilder) {
				rb.Assert("missing/@id/text()", "//t/@id/text()")
			})
		}).
		Build()

	diags, err := sc.Validate(doc)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	cm, ok := diags[0].(schema.ChildMissing)
	require.True(t, ok)
	assert.Equal(t, "1", cm.Value)
	assert.Equal(t, "//s/@id/text()", cm.ParentXPath)
}

func TestS4_EmptyTextValue(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="   "/></r>`)
	sc := schema.NewSchema("empty value").
		Pattern("root", "/", func(sb *schema.ScopeBuilder) {
			sb.Rule("//s/@id/text()", func(rb *schema.RuleBuilder) {
				rb.Assert("@id/text()", "//t/@id/text()")
			})
		}).
		Build()

	diags, err := sc.Validate(doc)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	vm, ok := diags[0].(schema.ValueMissing)
	require.True(t, ok)
	assert.Equal(t, "//s/@id/text()", vm.XPath)
	assert.Equal(t, 1, vm.Line)
}

func TestS5_BackwardRequired(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="A"/><t id="B"/></r>`)
	sc := idLinkSchema(schema.Both, schema.RequiredBackward)

	diags, err := sc.Validate(doc)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	lb, ok := diags[0].(schema.LinkBroken)
	require.True(t, ok)
	assert.Equal(t, "B", lb.Value)
	assert.Equal(t, "//t/@id/text()", lb.SourceXPath)
	assert.Equal(t, "//s/@id/text()", lb.TargetXPath)
}

func TestS6_ScopePrefixInDiagnostic(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><p><s id="1"/><t id="2"/></p></r>`)
	sc := schema.NewSchema("scoped").
		Pattern("root", "/", func(sb *schema.ScopeBuilder) {
			sb.Scope("//p", func(inner *schema.ScopeBuilder) {
				inner.RuleWithOptions("//s/@id/text()", schema.Forward, schema.RequiredForward, func(rb *schema.RuleBuilder) {
					rb.Assert("@id/text()", "//t/@id/text()")
				})
			})
		}).
		Build()

	diags, err := sc.Validate(doc)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	lb, ok := diags[0].(schema.LinkBroken)
	require.True(t, ok)
	assert.True(t, len(lb.SourceXPath) > 3 && lb.SourceXPath[:4] == "//p/", "expected prefix //p/, got %q", lb.SourceXPath)
}

// Validate is a pure function of (schema, document): same inputs, same output.
func TestDeterminism(t *testing.T) {
	doc := parse(t, `<r xmlns="u"><s id="1"/><t id="2"/></r>`)
	sc := idLinkSchema(schema.Forward, schema.RequiredForward)

	first, err := sc.Validate(doc)
	require.NoError(t, err)
	second, err := sc.Validate(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// An empty diagnostic list means the document actually satisfies every rule.
func TestDiagnosticFreeIffValid(t *testing.T) {
	valid := parse(t, `<r xmlns="u"><s id="1"/><t id="1"/></r>`)
	invalid := parse(t, `<r xmlns="u"><s id="1"/><t id="2"/></r>`)
	sc := idLinkSchema(schema.Forward, schema.RequiredForward)

	diags, err := sc.Validate(valid)
	require.NoError(t, err)
	assert.Empty(t, diags)

	diags, err = sc.Validate(invalid)
	require.NoError(t, err)
	assert.NotEmpty(t, diags)
}

// A /text() handle yields a value only for a node whose children are all
// text; element content makes the value missing.
func TestValueOfTextKind(t *testing.T) {
	h := schema.NewXPathHandle("//e/text()", nil)
	assert.Equal(t, schema.ValueText, h.Kind())

	withText := parse(t, `<r xmlns="u"><e>hello</e></r>`)
	withTextRoot, err := withText.XPath("/*", nil)
	require.NoError(t, err)
	require.Len(t, withTextRoot, 1)
	nodes, err := h.Select(withTextRoot[0])
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	v, ok := h.ValueOf(nodes[0])
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	mixed := parse(t, `<r xmlns="u"><e><child/></e></r>`)
	mixedRoot, err := mixed.XPath("/*", nil)
	require.NoError(t, err)
	require.Len(t, mixedRoot, 1)
	nodes, err = h.Select(mixedRoot[0])
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	_, ok = h.ValueOf(nodes[0])
	assert.False(t, ok)
}

// Compose().Display() joins the first handle's selection path (value
// suffix stripped) and the second expression with a slash.
func TestComposeDisplay(t *testing.T) {
	a := schema.NewXPathHandle("//s", nil)
	b := schema.NewXPathHandle("@id/text()", nil)

	composed := a.Compose(b)
	assert.Equal(t, "//s/@id/text()", composed.Display())
}

func TestChildMissingRequiresNoChildAtAll(t *testing.T) {
	// A source with a valid child value that simply fails to link gets
	// LinkBroken, never ChildMissing -- ChildMissing is reserved for the
	// case where the child selector finds no node with a usable value.
	doc := parse(t, `<r xmlns="u"><s id="1"/><t id="2"/></r>`)
	sc := idLinkSchema(schema.Forward, schema.RequiredForward)

	diags, err := sc.Validate(doc)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	_, ok := diags[0].(schema.LinkBroken)
	assert.True(t, ok)
}

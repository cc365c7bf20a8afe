package domainrules_test

import (
	"testing"

	"github.com/adammathes/xrefcheck/internal/domainrules"
	"github.com/adammathes/xrefcheck/pkg/schema"
	"github.com/adammathes/xrefcheck/pkg/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, xml string) []schema.Diagnostic {
	t.Helper()
	doc, err := xmldoc.ParseBytes([]byte(xml))
	require.NoError(t, err)
	diags, err := domainrules.DocBook().Validate(xmldoc.AsDocument(doc))
	require.NoError(t, err)
	return diags
}

func TestDocBookResolvedXref(t *testing.T) {
	diags := validate(t, `<book><chapter id="intro"><para>See <xref linkend="intro"/>.</para></chapter></book>`)
	assert.Empty(t, diags)
}

func TestDocBookBrokenXref(t *testing.T) {
	diags := validate(t, `<book><chapter id="intro"/><para><xref linkend="missing"/></para></book>`)
	require.Len(t, diags, 1)
	lb, ok := diags[0].(schema.LinkBroken)
	require.True(t, ok)
	assert.Equal(t, "missing", lb.Value)
}

func TestDocBookGlossaryKeywordResolves(t *testing.T) {
	// A <keyword> resolves by matching a <glossentry id="..."> directly,
	// not by matching the displayed <glossterm> text.
	diags := validate(t, `<book>
		<para><keyword>widget</keyword></para>
		<glossary><glossentry id="widget"><glossterm>widget</glossterm></glossentry></glossary>
	</book>`)
	assert.Empty(t, diags)
}

func TestDocBookGlossaryKeywordBroken(t *testing.T) {
	diags := validate(t, `<book>
		<para><keyword>gadget</keyword></para>
		<glossary><glossentry id="widget"><glossterm>Widget</glossterm></glossentry></glossary>
	</book>`)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if lb, ok := d.(schema.LinkBroken); ok && lb.Value == "gadget" {
			found = true
		}
	}
	assert.True(t, found)
}

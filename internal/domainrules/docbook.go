// Package domainrules ships one sample schema so the repository has a
// runnable default when the CLI is invoked without --schema. It is not
// part of the engine: it is an ordinary consumer of pkg/schema's Builder,
// the same relationship a validator package has to a concrete check
// catalog hard-coded for one document format.
package domainrules

import "github.com/adammathes/xrefcheck/pkg/schema"

// DocBook returns a cross-reference schema modeled on a DocBook-flavored
// document: <xref linkend="NAME"> elements that must resolve to an
// element carrying id="NAME" anywhere in the document, and
// <keyword>/<glossterm> elements that must resolve to a matching
// <glossentry id="NAME">.
func DocBook() *schema.Schema {
	return schema.NewSchema("docbook cross-reference rules").
		Pattern("cross-references", "/", func(sb *schema.ScopeBuilder) {
			sb.RuleWithOptions("//xref/@linkend/text()", schema.Forward, schema.RequiredForward,
				func(rb *schema.RuleBuilder) {
					rb.Assert("@linkend/text()", "//*[@id]/@id/text()")
				})

			sb.Scope("//glossary", func(inner *schema.ScopeBuilder) {
				inner.RuleWithOptions("//keyword/text()", schema.Forward, schema.RequiredForward,
					func(rb *schema.RuleBuilder) {
						rb.Assert("text()", "//glossentry/@id/text()")
					})
				inner.RuleWithOptions("//glossterm/text()", schema.Forward, schema.RequiredForward,
					func(rb *schema.RuleBuilder) {
						rb.Assert("text()", "//glossentry/@id/text()")
					})
			})
		}).
		Build()
}

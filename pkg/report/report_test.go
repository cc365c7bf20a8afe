package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/adammathes/xrefcheck/pkg/report"
	"github.com/adammathes/xrefcheck/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportIsValidWhenEmpty(t *testing.T) {
	r := report.NewReport()
	assert.True(t, r.IsValid())
	assert.Equal(t, 0, r.Count())
}

func TestReportAddAllPreservesOrder(t *testing.T) {
	r := report.NewReport()
	diags := []schema.Diagnostic{
		schema.ValueMissing{XPath: "//a", Line: 1},
		schema.LinkBroken{SourceXPath: "//b", TargetXPath: "//c", Line: 2, Value: "x"},
	}
	r.AddAll(diags)

	require.Equal(t, 2, r.Count())
	assert.False(t, r.IsValid())
	assert.Equal(t, diags, r.Diagnostics)
}

func TestWriteJSONShape(t *testing.T) {
	r := report.NewReport()
	r.Add(schema.LinkBroken{SourceXPath: "//s", TargetXPath: "//t", Line: 3, Value: "1"})

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.False(t, out.Valid)
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, "LinkBroken", out.Diagnostics[0].Kind)
	assert.Equal(t, 3, out.Diagnostics[0].Line)
}

func TestDiagnosticWireFormat(t *testing.T) {
	lb := schema.LinkBroken{SourceXPath: `//s[@x="y"]`, TargetXPath: "//t", Line: 5, Value: "v"}
	assert.Equal(t,
		`source element "//s[@x=\"y\"]" on line 5: target element "//t" with text "v" is NOT FOUND`,
		lb.String())

	cm := schema.ChildMissing{ParentXPath: "//s", ChildXPath: "//s/c", Line: 2, Value: "1"}
	assert.Equal(t,
		`parent element "//s" on line 2 with text "1": child element "//s/c" IS REQUIRED`,
		cm.String())

	vm := schema.ValueMissing{XPath: "//s/@id/text()", Line: 1}
	assert.Equal(t, `element "//s/@id/text()" on line 1 is REQUIRED`, vm.String())
}

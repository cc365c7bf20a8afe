package report

import (
	"encoding/json"
	"io"

	"github.com/adammathes/xrefcheck/pkg/schema"
)

// jsonDiagnostic is the structured, serializable view of a schema.Diagnostic;
// the interface itself carries no JSON tags since its only required method
// is String().
type jsonDiagnostic struct {
	Kind        string `json:"kind"`
	XPath       string `json:"xpath,omitempty"`
	ParentXPath string `json:"parent_xpath,omitempty"`
	ChildXPath  string `json:"child_xpath,omitempty"`
	SourceXPath string `json:"source_xpath,omitempty"`
	TargetXPath string `json:"target_xpath,omitempty"`
	Line        int    `json:"line"`
	Value       string `json:"value,omitempty"`
	Message     string `json:"message"`
}

// JSONOutput is the JSON structure written to output files.
type JSONOutput struct {
	Valid       bool             `json:"valid"`
	Count       int              `json:"count"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

// WriteJSON writes the report in JSON format to w.
func (r *Report) WriteJSON(w io.Writer) error {
	out := JSONOutput{
		Valid:       r.IsValid(),
		Count:       r.Count(),
		Diagnostics: make([]jsonDiagnostic, 0, len(r.Diagnostics)),
	}
	for _, d := range r.Diagnostics {
		jd := jsonDiagnostic{Message: d.String()}
		switch v := d.(type) {
		case schema.ValueMissing:
			jd.Kind = "ValueMissing"
			jd.XPath = v.XPath
			jd.Line = v.Line
		case schema.ChildMissing:
			jd.Kind = "ChildMissing"
			jd.ParentXPath = v.ParentXPath
			jd.ChildXPath = v.ChildXPath
			jd.Line = v.Line
			jd.Value = v.Value
		case schema.LinkBroken:
			jd.Kind = "LinkBroken"
			jd.SourceXPath = v.SourceXPath
			jd.TargetXPath = v.TargetXPath
			jd.Line = v.Line
			jd.Value = v.Value
		}
		out.Diagnostics = append(out.Diagnostics, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

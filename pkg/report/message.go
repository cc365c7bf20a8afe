// Package report turns the engine's diagnostic sequence into the CLI's
// output: one line per diagnostic in the wire format, plus a JSON form.
package report

import "github.com/adammathes/xrefcheck/pkg/schema"

// Report collects the diagnostics from one or more validation runs (one
// per validated file in batch mode).
type Report struct {
	Diagnostics []schema.Diagnostic
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a single diagnostic to the report.
func (r *Report) Add(d schema.Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// AddAll appends every diagnostic in ds, preserving order.
func (r *Report) AddAll(ds []schema.Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, ds...)
}

// Count returns the number of diagnostics collected.
func (r *Report) Count() int {
	return len(r.Diagnostics)
}

// IsValid reports whether the diagnostic sequence is empty.
func (r *Report) IsValid() bool {
	return len(r.Diagnostics) == 0
}

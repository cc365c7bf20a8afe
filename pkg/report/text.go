package report

import (
	"io"

	"github.com/fatih/color"
)

// WriteText writes one diagnostic per line, in the engine's evaluation
// order, colorized in red, followed by a bold one-line summary.
func (r *Report) WriteText(w io.Writer) {
	bad := color.New(color.FgRed)
	for _, d := range r.Diagnostics {
		bad.Fprintln(w, d.String())
	}
	bold := color.New(color.Bold)
	if r.IsValid() {
		bold.Fprintln(w, "no broken or missing links found")
	} else {
		bold.Fprintf(w, "%d diagnostic(s) found\n", r.Count())
	}
}

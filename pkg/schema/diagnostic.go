package schema

import (
	"fmt"
	"strings"
)

// Diagnostic is a typed record describing one validation failure. The
// three variants below are the only implementations; String renders each
// in the engine's wire format.
type Diagnostic interface {
	String() string
}

// ValueMissing records a selected node that produced no extractable string.
type ValueMissing struct {
	XPath string
	Line  int
}

func (d ValueMissing) String() string {
	return fmt.Sprintf(`element "%s" on line %d is REQUIRED`, escapeQuotes(d.XPath), d.Line)
}

// ChildMissing records a required-forward rule whose source node had no
// child assertion node with a usable value.
type ChildMissing struct {
	ParentXPath string
	ChildXPath  string
	Line        int
	Value       string
}

func (d ChildMissing) String() string {
	return fmt.Sprintf(`parent element "%s" on line %d with text "%s": child element "%s" IS REQUIRED`,
		escapeQuotes(d.ParentXPath), d.Line, escapeQuotes(d.Value), escapeQuotes(d.ChildXPath))
}

// LinkBroken records a value extracted from one side with no matching
// value on the other side.
type LinkBroken struct {
	SourceXPath string
	TargetXPath string
	Line        int
	Value       string
}

func (d LinkBroken) String() string {
	return fmt.Sprintf(`source element "%s" on line %d: target element "%s" with text "%s" is NOT FOUND`,
		escapeQuotes(d.SourceXPath), d.Line, escapeQuotes(d.TargetXPath), escapeQuotes(d.Value))
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

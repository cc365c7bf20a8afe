package xmldoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Parse reads an XML document from r and builds a Node tree. It keeps
// only elements, attributes, and text; comments, PIs, and directives are
// discarded since nothing in pkg/schema ever selects them.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: read: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses an in-memory document; Parse reads its input fully
// and delegates here.
func ParseBytes(data []byte) (*Document, error) {
	newlines := newlineOffsets(data)

	dec := xml.NewDecoder(bytes.NewReader(data))
	root := &Node{Kind: RootKind}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmldoc: parse: %w", err)
		}

		top := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Node{Kind: ElementKind, Name: t.Name, line: lineAt(newlines, dec.InputOffset())}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, &Node{
					Kind:   AttributeKind,
					Name:   a.Name,
					Data:   a.Value,
					Parent: el,
				})
			}
			top.appendChild(el)
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			top.appendChild(&Node{
				Kind: TextKind,
				Data: string(t),
				line: lineAt(newlines, dec.InputOffset()),
			})
		}
	}

	if root.FirstChild == nil {
		return nil, fmt.Errorf("xmldoc: parse: no document element")
	}
	return &Document{root: root}, nil
}

// newlineOffsets returns the byte offset of every '\n' in data, sorted.
func newlineOffsets(data []byte) []int64 {
	var offs []int64
	for i, c := range data {
		if c == '\n' {
			offs = append(offs, int64(i))
		}
	}
	return offs
}

// lineAt converts a decoder byte offset into a 1-based line number using
// a binary search over the precomputed newline offsets; InputOffset()
// points just past the most recently returned token, which for a
// StartElement is the line its closing '>' is on.
func lineAt(newlines []int64, offset int64) int {
	return 1 + sort.Search(len(newlines), func(i int) bool {
		return newlines[i] >= offset
	})
}

package markup

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ByLCY/cvpress/sanitize"
)

// maxLineSize bounds a single source line. Drafted documents keep whole
// paragraphs on one line, so the scanner default of 64KiB is raised.
const maxLineSize = 1 << 20

// Document is the ordered list of blocks classified from one source text.
type Document struct {
	Blocks []Block `json:"-"`
	Issues []Issue `json:"issues,omitempty"`
	Lines  int     `json:"lines"`
}

// Title returns the text of the first Title block, or "".
func (d *Document) Title() string {
	if d == nil {
		return ""
	}
	for _, b := range d.Blocks {
		if t, ok := b.(Title); ok {
			return t.Text
		}
	}
	return ""
}

// Parse reads r line by line, trims and sanitizes each line and classifies it
// in order. Only a failure to read r is returned as an error.
func Parse(r io.Reader, opts Options) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	doc := &Document{}
	var st State
	for sc.Scan() {
		doc.Lines++
		line := sanitize.Text(strings.TrimSpace(sc.Text()))
		out := Classify(Source{Line: doc.Lines, Raw: line}, st, opts)
		st = out.State
		doc.Blocks = append(doc.Blocks, out.Block)
		if out.Issue != nil {
			doc.Issues = append(doc.Issues, *out.Issue)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source line %d: %w", doc.Lines+1, err)
	}
	return doc, nil
}

// ParseString parses a source held in memory.
func ParseString(input string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(input), opts)
}

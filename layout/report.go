package layout

import (
	"fmt"
	"slices"
)

// IssueKind groups the non-fatal problems a render can report.
type IssueKind string

const (
	// IssueClassification is a line whose special markup degraded to a
	// paragraph during classification.
	IssueClassification IssueKind = "classification"
	// IssueLayout is a block the emitter could not fit and drew as a
	// paragraph instead.
	IssueLayout IssueKind = "layout"
	// IssueOverflow is a single word wider than its column.
	IssueOverflow IssueKind = "overflow"
	// IssueEncoding counts characters replaced by the output charset.
	IssueEncoding IssueKind = "encoding"
)

// Issue is one entry of the render report.
type Issue struct {
	Line   int       `json:"line"`
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Kind, i.Detail)
}

// Report summarises one render.
type Report struct {
	Lines     int            `json:"lines"`
	Blocks    map[string]int `json:"blocks"`
	Pages     int            `json:"pages"`
	Fallbacks int            `json:"fallbacks"`
	Issues    []Issue        `json:"issues,omitempty"`
}

func newReport(lines int) *Report {
	return &Report{Lines: lines, Blocks: make(map[string]int)}
}

func (r *Report) add(line int, kind IssueKind, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Line: line, Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// Count returns how many issues of kind were recorded.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, iss := range r.Issues {
		if iss.Kind == kind {
			n++
		}
	}
	return n
}

// Degraded is the number of blocks drawn as a paragraph instead of their
// own kind.
func (r *Report) Degraded() int {
	return r.Count(IssueClassification) + r.Count(IssueLayout)
}

func (r *Report) sort() {
	slices.SortStableFunc(r.Issues, func(a, b Issue) int { return a.Line - b.Line })
}

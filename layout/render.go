package layout

import (
	"errors"
	"fmt"

	"github.com/ByLCY/cvpress/markup"
)

// Render draws every block of doc onto w in order and returns what went
// wrong along the way. A block that cannot be laid out is drawn as a
// paragraph of its source line and recorded in the report; only a missing
// document or writer, or a writer that refuses to start, fails the render.
//
// Render does not finalize w.
func Render(doc *markup.Document, w Writer, th Theme) (*Report, error) {
	if doc == nil {
		return nil, errors.New("render: nil document")
	}
	if w == nil {
		return nil, errors.New("render: nil writer")
	}
	th = th.normalized()

	if err := w.BeginDocument(th.Meta); err != nil {
		return nil, fmt.Errorf("begin document: %w", err)
	}
	w.AddPage()

	rep := newReport(doc.Lines)
	for _, iss := range doc.Issues {
		rep.add(iss.Line, IssueClassification, "%s: %s", iss.Rule, iss.Reason)
	}

	e := &emitter{w: w, th: th, report: rep}
	e.normal()
	for _, b := range doc.Blocks {
		rep.Blocks[b.Kind().String()]++
		if err := e.emit(b); err != nil {
			src := b.Origin()
			rep.add(src.Line, IssueLayout, "%s drawn as paragraph: %v", b.Kind(), err)
			Logger().Warn("block degraded", "line", src.Line, "kind", b.Kind().String(), "err", err)
			e.paragraph(markup.StripBold(src.Raw))
		}
	}
	rep.Pages = w.PageCount()
	rep.sort()

	Logger().Info("document rendered",
		"lines", rep.Lines, "pages", rep.Pages, "issues", len(rep.Issues), "fallbacks", rep.Fallbacks)
	return rep, nil
}

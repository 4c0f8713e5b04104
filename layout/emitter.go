package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByLCY/cvpress/markup"
	"github.com/ByLCY/cvpress/sanitize"
)

// ErrNoRoom is returned for a block whose fixed columns leave no width for
// its text.
var ErrNoRoom = errors.New("no room left on the line")

// emitter turns blocks into cell and line-feed calls on a Writer. It never
// decides page breaks; the writer does.
type emitter struct {
	w      Writer
	th     Theme
	report *Report
	line   int
}

func (e *emitter) font(style TextStyle, weight Weight) {
	e.w.SetFont(e.th.Family, weight, style.Size)
}

func (e *emitter) normal() { e.font(e.th.Body, WeightRegular) }

// text maps s onto the output charset and records any substitutions.
func (e *emitter) text(s string) string {
	out, n := sanitize.ToCharset(s, e.th.Charset)
	if n > 0 {
		e.report.Fallbacks += n
		e.report.add(e.line, IssueEncoding, "%d character(s) replaced for %s", n, e.th.Charset)
		Logger().Debug("charset fallback", "line", e.line, "count", n, "charset", e.th.Charset.String())
	}
	return out
}

// wrap wraps s at width and reports words wider than the column.
func (e *emitter) wrap(s string, width float64) []LineFragment {
	lines := Wrap(s, width, e.w)
	for _, l := range lines {
		if l.Overflows(width) {
			e.report.add(e.line, IssueOverflow, "%q is %.1fmm wide in a %.1fmm column", l.Text, l.Width, width)
			Logger().Warn("line overflows column", "line", e.line, "width", l.Width, "column", width)
		}
	}
	return lines
}

// atLeastOne keeps a block with an empty value one line tall.
func atLeastOne(lines []LineFragment) []LineFragment {
	if len(lines) == 0 {
		return []LineFragment{{}}
	}
	return lines
}

func (e *emitter) emit(b markup.Block) error {
	e.line = b.Origin().Line
	switch b := b.(type) {
	case markup.Title:
		e.heading(b.Text, e.th.Title, AlignCenter)
	case markup.SectionHeader:
		e.heading(b.Text, e.th.Section, AlignLeft)
	case markup.SubsectionHeader:
		e.heading(b.Text, e.th.Subsection, AlignLeft)
	case markup.Field:
		return e.field(b)
	case markup.BulletItem:
		return e.bullet(b)
	case markup.MultiColumnRow:
		return e.row(b)
	case markup.EducationEntry:
		return e.education(b)
	case markup.Paragraph:
		e.paragraph(b.Text)
	case markup.Spacer:
		e.w.LineFeed(e.th.Gaps.Spacer)
	default:
		return fmt.Errorf("unsupported block %T", b)
	}
	return nil
}

func (e *emitter) heading(text string, style TextStyle, align Align) {
	e.font(style, WeightBold)
	eff := e.w.EffectiveWidth()
	for _, l := range e.wrap(e.text(text), eff) {
		e.w.Cell(eff, style.LineHeight, l.Text, align, AdvanceNextLine)
	}
	e.w.LineFeed(style.GapAfter)
	e.normal()
}

func (e *emitter) paragraph(text string) {
	e.normal()
	eff := e.w.EffectiveWidth()
	lh := e.th.Body.LineHeight
	for _, l := range e.wrap(e.text(text), eff) {
		e.w.Cell(eff, lh, l.Text, AlignLeft, AdvanceNextLine)
	}
	e.w.LineFeed(e.th.Gaps.Paragraph)
}

func (e *emitter) field(b markup.Field) error {
	labelW := e.th.Columns.Label
	valueW := math.Min(e.th.Columns.Value, e.w.EffectiveWidth()-labelW)
	if valueW <= 0 {
		return fmt.Errorf("field value column: %w", ErrNoRoom)
	}
	lh := e.th.Body.LineHeight

	e.font(e.th.Body, WeightBold)
	label := e.text(b.Label)
	if lw := e.w.MeasureText(label); lw > labelW {
		e.report.add(e.line, IssueOverflow, "label %q is %.1fmm wide in a %.1fmm column", label, lw, labelW)
	}
	e.w.Cell(labelW, lh, label, AlignLeft, AdvanceRight)
	e.normal()

	for i, l := range atLeastOne(e.wrap(e.text(b.Value), valueW)) {
		if i > 0 {
			e.w.Cell(labelW, lh, "", AlignLeft, AdvanceRight)
		}
		e.w.Cell(valueW, lh, l.Text, AlignLeft, AdvanceNextLine)
	}
	e.w.LineFeed(e.th.Gaps.Field)
	return nil
}

func (e *emitter) bullet(b markup.BulletItem) error {
	indent := e.th.Columns.Indent
	width := e.w.EffectiveWidth() - indent
	if width <= 0 {
		return fmt.Errorf("bullet text column: %w", ErrNoRoom)
	}
	lh := e.th.Body.LineHeight
	e.normal()
	for _, l := range e.wrap(e.text(e.th.Bullet+" "+b.Text), width) {
		e.w.Cell(indent, lh, "", AlignLeft, AdvanceRight)
		e.w.Cell(width, lh, l.Text, AlignLeft, AdvanceNextLine)
	}
	e.w.LineFeed(e.th.Gaps.Bullet)
	return nil
}

// column is one wrapped row cell, with an optional bold label in front.
type column struct {
	label  string
	labelW float64
	lines  []LineFragment
}

func (c column) line(k int) string {
	if k < len(c.lines) {
		return c.lines[k].Text
	}
	return ""
}

func (e *emitter) row(b markup.MultiColumnRow) error {
	n := len(b.Cells)
	if n == 0 {
		return fmt.Errorf("row without cells: %w", ErrNoRoom)
	}
	sep := e.th.Columns.Separator
	colW := (e.w.EffectiveWidth() - sep*float64(n-1)) / float64(n)
	if colW <= 0 {
		return fmt.Errorf("%d columns: %w", n, ErrNoRoom)
	}
	lh := e.th.Body.LineHeight

	cols := make([]column, n)
	rows := 1
	for i, c := range b.Cells {
		cols[i] = e.cell(e.text(c.Text), colW)
		rows = max(rows, len(cols[i].lines))
	}

	sepText := e.text(e.th.RowSep)
	for k := 0; k < rows; k++ {
		for i, col := range cols {
			if i > 0 {
				s := ""
				if k == 0 {
					s = sepText
				}
				e.w.Cell(sep, lh, s, AlignCenter, AdvanceRight)
			}
			if col.labelW > 0 {
				if k == 0 {
					e.font(e.th.Body, WeightBold)
					e.w.Cell(col.labelW, lh, col.label, AlignLeft, AdvanceRight)
					e.normal()
				} else {
					e.w.Cell(col.labelW, lh, "", AlignLeft, AdvanceRight)
				}
			}
			e.w.Cell(colW-col.labelW, lh, col.line(k), AlignLeft, AdvanceRight)
		}
		e.w.LineFeed(lh)
	}
	e.w.LineFeed(e.th.Gaps.Row)
	return nil
}

// cell lays out one row cell. A cell shaped like "label: value" draws its
// label in bold, measured as "label: ", when the label leaves room for text.
func (e *emitter) cell(text string, colW float64) column {
	if label, value, ok := markup.SplitField(text, e.th.Markup.LabelMaxLen); ok {
		e.font(e.th.Body, WeightBold)
		lw := e.w.MeasureText(label + ": ")
		e.normal()
		if lw < colW {
			return column{label: label + ":", labelW: lw, lines: e.wrap(value, colW-lw)}
		}
	}
	return column{lines: e.wrap(text, colW)}
}

func (e *emitter) education(b markup.EducationEntry) error {
	lh := e.th.Body.LineHeight
	e.font(e.th.Body, WeightBold)
	degree := e.text(b.Degree)
	degreeW := e.w.MeasureText(degree + " ")
	rest := e.w.EffectiveWidth() - degreeW
	if rest <= 0 {
		e.normal()
		return fmt.Errorf("degree %q leaves no width: %w", degree, ErrNoRoom)
	}
	e.w.Cell(degreeW, lh, degree, AlignLeft, AdvanceRight)
	e.normal()

	for i, l := range atLeastOne(e.wrap(e.text(b.InstitutionAndDate), rest)) {
		if i > 0 {
			e.w.Cell(degreeW, lh, "", AlignLeft, AdvanceRight)
		}
		e.w.Cell(rest, lh, l.Text, AlignLeft, AdvanceNextLine)
	}
	e.w.LineFeed(e.th.Gaps.Education)
	return nil
}

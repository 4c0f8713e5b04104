package layout

import "io"

// Measurer reports the rendered width of text in millimetres for the
// current font.
type Measurer interface {
	MeasureText(s string) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(s string) float64

func (f MeasureFunc) MeasureText(s string) float64 { return f(s) }

// Writer is the page-description backend the emitter draws on. It owns the
// page geometry, the font metrics and the vertical cursor, and it starts a new
// page on its own when a cell would cross the bottom margin.
type Writer interface {
	Measurer
	BeginDocument(meta DocumentMeta) error
	AddPage()
	SetFont(family string, weight Weight, size float64)
	Cell(width, height float64, text string, align Align, adv Advance)
	LineFeed(height float64)
	EffectiveWidth() float64
	PageCount() int
	// Finalize serializes the document to w. It is called once.
	Finalize(w io.Writer) error
}

// Package fpdfrenderer draws documents with the PDF core fonts through
// go-pdf/fpdf. Text is encoded as CP1252; fpdf paginates on its own.
package fpdfrenderer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

// DefaultCoreFont is used for theme families without a core font mapping.
const DefaultCoreFont = "Helvetica"

// Options configures the fpdf backend.
type Options struct {
	// CoreFonts maps theme family names to PDF core fonts (Helvetica, Times,
	// Courier).
	CoreFonts map[string]string
}

// Writer implements layout.Writer on top of an fpdf document.
type Writer struct {
	pdf     *fpdf.Fpdf
	spec    layout.PageSpec
	opts    Options
	tr      func(string) string
	started bool
}

var _ layout.Writer = (*Writer)(nil)

// New creates a writer for pages of the given geometry in millimetres.
func New(spec layout.PageSpec, opts Options) *Writer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: spec.Width, Ht: spec.Height},
	})
	pdf.SetMargins(spec.Margin.Left, spec.Margin.Top, spec.Margin.Right)
	pdf.SetAutoPageBreak(true, spec.Margin.Bottom)
	return &Writer{
		pdf:  pdf,
		spec: spec,
		opts: opts,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *Writer) BeginDocument(meta layout.DocumentMeta) error {
	if w.started {
		return renderer.ErrAlreadyStarted
	}
	w.started = true
	w.pdf.SetTitle(meta.Title, true)
	w.pdf.SetAuthor(meta.Author, true)
	w.pdf.SetSubject(meta.Subject, true)
	w.pdf.SetCreator(meta.Creator, true)
	if len(meta.Keywords) > 0 {
		w.pdf.SetKeywords(strings.Join(meta.Keywords, " "), true)
	}
	return w.pdf.Error()
}

func (w *Writer) AddPage() { w.pdf.AddPage() }

func (w *Writer) SetFont(family string, weight layout.Weight, size float64) {
	style := ""
	if weight == layout.WeightBold {
		style = "B"
	}
	w.pdf.SetFont(w.coreFont(family), style, size)
}

func (w *Writer) coreFont(family string) string {
	if core, ok := w.opts.CoreFonts[family]; ok && core != "" {
		return core
	}
	return DefaultCoreFont
}

func (w *Writer) MeasureText(s string) float64 {
	if s == "" {
		return 0
	}
	return w.pdf.GetStringWidth(w.tr(s))
}

func (w *Writer) Cell(width, height float64, text string, align layout.Align, adv layout.Advance) {
	w.pdf.CellFormat(width, height, w.tr(text), "", lnFor(adv), alignFor(align), false, 0, "")
}

func (w *Writer) LineFeed(height float64) { w.pdf.Ln(height) }

func (w *Writer) EffectiveWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

func (w *Writer) PageCount() int { return w.pdf.PageCount() }

// Finalize writes the PDF to out.
func (w *Writer) Finalize(out io.Writer) error {
	if err := w.pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if w.pdf.PageCount() == 0 {
		return errors.New("no pages to render")
	}
	if err := w.pdf.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func lnFor(adv layout.Advance) int {
	switch adv {
	case layout.AdvanceNextLine:
		return 1
	case layout.AdvanceBelow:
		return 2
	default:
		return 0
	}
}

func alignFor(a layout.Align) string {
	switch a {
	case layout.AlignCenter:
		return "C"
	case layout.AlignRight:
		return "R"
	default:
		return "L"
	}
}

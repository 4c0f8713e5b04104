package canvasrenderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

func newWriter() *Writer {
	return New(layout.A4(), Options{})
}

func TestMeasureUsesFontSizeAndWeight(t *testing.T) {
	w := newWriter()
	w.SetFont("Body", layout.WeightRegular, 9)
	small := w.MeasureText("Experience")
	if small <= 0 {
		t.Fatalf("expected positive width, got %g", small)
	}
	w.SetFont("Body", layout.WeightRegular, 18)
	if big := w.MeasureText("Experience"); big <= small*1.9 || big >= small*2.1 {
		t.Fatalf("width at 18pt = %g, want about twice %g", big, small)
	}
	w.SetFont("Body", layout.WeightBold, 9)
	if bold := w.MeasureText("Experience"); bold <= small {
		t.Fatalf("bold width %g should exceed regular %g", bold, small)
	}
}

func TestWrapWithFontMetricsStaysInColumn(t *testing.T) {
	w := newWriter()
	w.SetFont("Body", layout.WeightRegular, 9)
	limit := 30.0
	text := "Designed and shipped a distributed build cache used by every team in the company"
	lines := layout.Wrap(text, limit, w)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if len(ln.Words) > 1 && ln.Width-limit > 1e-6 {
			t.Fatalf("line %d width %g exceeds %g", i, ln.Width, limit)
		}
	}
}

// A line exactly as wide as the column fits without spilling its last word.
func TestWrapEqualWidthFits(t *testing.T) {
	w := newWriter()
	w.SetFont("Body", layout.WeightRegular, 12)
	first := "SAMPLE A"
	limit := w.MeasureText("SAMPLE") + w.MeasureText(" ") + w.MeasureText("A")
	lines := layout.Wrap(first+" SAMPLE-B", limit, w)
	if len(lines) != 2 || lines[0].Text != first || lines[1].Text != "SAMPLE-B" {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestFinalizeWritesPDF(t *testing.T) {
	w := newWriter()
	if err := w.BeginDocument(layout.DocumentMeta{Title: "Jane Doe", Creator: "cvpress"}); err != nil {
		t.Fatal(err)
	}
	w.AddPage()
	w.SetFont("Body", layout.WeightBold, 14)
	w.Cell(w.EffectiveWidth(), 10, "Jane Doe", layout.AlignCenter, layout.AdvanceNextLine)
	w.SetFont("Body", layout.WeightRegular, 9)
	w.Cell(40, 6, "Email:", layout.AlignLeft, layout.AdvanceRight)
	w.Cell(100, 6, "jane@doe.com", layout.AlignLeft, layout.AdvanceNextLine)

	var buf bytes.Buffer
	if err := w.Finalize(&buf); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Fatalf("output is not a PDF: %q", buf.String()[:min(16, buf.Len())])
	}
}

func TestRenderWithoutPagesFails(t *testing.T) {
	if _, err := newWriter().Render(&layout.Result{}); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestMissingFontFileFallsBackButFailsRender(t *testing.T) {
	w := New(layout.A4(), Options{
		BaseDir: t.TempDir(),
		Fonts:   map[string]FontSources{"Body": {Regular: "missing.ttf"}},
	})
	w.SetFont("Body", layout.WeightRegular, 9)
	if got := w.MeasureText("abc"); got <= 0 {
		t.Fatalf("fallback font should still measure, got %g", got)
	}
	w.AddPage()
	w.Cell(20, 6, "abc", layout.AlignLeft, layout.AdvanceNextLine)
	if err := w.Finalize(&bytes.Buffer{}); err == nil {
		t.Fatal("expected font error at finalize")
	}
}

func TestTextWidthImplementsMetrics(t *testing.T) {
	var m renderer.Metrics = newWriter()
	if m.TextWidth(renderer.Font{Family: "Body", Size: 9}, "") != 0 {
		t.Fatal("empty string should be zero width")
	}
}

package fpdfrenderer

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

func TestEffectiveWidthMatchesPage(t *testing.T) {
	w := New(layout.A4(), Options{})
	if got := w.EffectiveWidth(); math.Abs(got-194) > 1e-6 {
		t.Fatalf("effective width = %g, want 194", got)
	}
}

func TestMeasureBoldIsWider(t *testing.T) {
	w := New(layout.A4(), Options{})
	w.AddPage()
	w.SetFont("Body", layout.WeightRegular, 9)
	regular := w.MeasureText("Education")
	w.SetFont("Body", layout.WeightBold, 9)
	bold := w.MeasureText("Education")
	if regular <= 0 || bold <= regular {
		t.Fatalf("regular=%g bold=%g", regular, bold)
	}
}

func TestAutoPageBreak(t *testing.T) {
	w := New(layout.A4(), Options{})
	if err := w.BeginDocument(layout.DocumentMeta{Title: "Jane"}); err != nil {
		t.Fatal(err)
	}
	if err := w.BeginDocument(layout.DocumentMeta{}); !errors.Is(err, renderer.ErrAlreadyStarted) {
		t.Fatalf("second begin: %v", err)
	}
	w.AddPage()
	w.SetFont("Body", layout.WeightRegular, 9)
	// 267mm of usable height holds 44 lines of 6mm.
	for i := 0; i < 50; i++ {
		w.Cell(w.EffectiveWidth(), 6, "line", layout.AlignLeft, layout.AdvanceNextLine)
	}
	if w.PageCount() != 2 {
		t.Fatalf("pages = %d, want 2", w.PageCount())
	}

	var buf bytes.Buffer
	if err := w.Finalize(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Fatal("output is not a PDF")
	}
}

func TestFinalizeWithoutPagesFails(t *testing.T) {
	w := New(layout.A4(), Options{})
	if err := w.Finalize(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestCoreFontMapping(t *testing.T) {
	w := New(layout.A4(), Options{CoreFonts: map[string]string{"Mono": "Courier"}})
	if got := w.coreFont("Mono"); got != "Courier" {
		t.Fatalf("core font = %s", got)
	}
	if got := w.coreFont("Body"); got != DefaultCoreFont {
		t.Fatalf("core font = %s", got)
	}
	if lnFor(layout.AdvanceRight) != 0 || lnFor(layout.AdvanceNextLine) != 1 || lnFor(layout.AdvanceBelow) != 2 {
		t.Fatal("advance mapping")
	}
	if alignFor(layout.AlignCenter) != "C" || alignFor(layout.AlignLeft) != "L" || alignFor(layout.AlignRight) != "R" {
		t.Fatal("align mapping")
	}
}

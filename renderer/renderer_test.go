package renderer

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/ByLCY/cvpress/layout"
)

type runeMetrics float64

func (m runeMetrics) TextWidth(_ Font, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * float64(m)
}

func smallPage() layout.PageSpec {
	return layout.PageSpec{Width: 100, Height: 50, Margin: layout.Margin{Top: 10, Right: 5, Bottom: 10, Left: 5}}
}

func TestPagedAdvances(t *testing.T) {
	p := NewPaged(smallPage(), runeMetrics(2))
	p.AddPage()
	p.Cell(20, 6, "a", layout.AlignLeft, layout.AdvanceRight)
	if x, y := p.Cursor(); x != 25 || y != 10 {
		t.Fatalf("after right: (%g,%g)", x, y)
	}
	p.Cell(20, 6, "b", layout.AlignLeft, layout.AdvanceBelow)
	if x, y := p.Cursor(); x != 25 || y != 16 {
		t.Fatalf("after below: (%g,%g)", x, y)
	}
	p.Cell(20, 6, "c", layout.AlignLeft, layout.AdvanceNextLine)
	if x, y := p.Cursor(); x != 5 || y != 22 {
		t.Fatalf("after next line: (%g,%g)", x, y)
	}
	p.LineFeed(3)
	if _, y := p.Cursor(); y != 25 {
		t.Fatalf("after line feed: y=%g", y)
	}
	if got := p.EffectiveWidth(); got != 90 {
		t.Fatalf("effective width = %g", got)
	}
}

func TestPagedBreaksBeforeOverflowingCell(t *testing.T) {
	p := NewPaged(smallPage(), runeMetrics(2))
	p.AddPage()
	// break trigger is 40mm: 10 + 5*6 = 40 fits, the sixth line does not.
	for i := 0; i < 6; i++ {
		p.Cell(20, 6, "line", layout.AlignLeft, layout.AdvanceNextLine)
	}
	if p.PageCount() != 2 {
		t.Fatalf("pages = %d, want 2", p.PageCount())
	}
	res := p.Result()
	if len(res.Pages[0].Texts) != 5 || len(res.Pages[1].Texts) != 1 {
		t.Fatalf("texts per page = %d/%d", len(res.Pages[0].Texts), len(res.Pages[1].Texts))
	}
	if y := res.Pages[1].Texts[0].Y; y != 10 {
		t.Fatalf("first cell on new page at y=%g, want top margin", y)
	}
}

func TestPagedBreakKeepsX(t *testing.T) {
	p := NewPaged(smallPage(), runeMetrics(2))
	p.AddPage()
	p.LineFeed(24)
	p.Cell(30, 6, "label", layout.AlignLeft, layout.AdvanceRight)
	p.Cell(30, 7, "value", layout.AlignLeft, layout.AdvanceNextLine)
	res := p.Result()
	if len(res.Pages) != 2 {
		t.Fatalf("pages = %d", len(res.Pages))
	}
	tb := res.Pages[1].Texts[0]
	if tb.Content != "value" || tb.X != 35 || tb.Y != 10 {
		t.Fatalf("unexpected cell %+v", tb)
	}
}

func TestPagedTallCellAtTopDoesNotLoop(t *testing.T) {
	p := NewPaged(smallPage(), runeMetrics(2))
	p.AddPage()
	p.Cell(20, 45, "tall", layout.AlignLeft, layout.AdvanceNextLine)
	if p.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", p.PageCount())
	}
}

func TestPagedRecordsFont(t *testing.T) {
	p := NewPaged(smallPage(), runeMetrics(2))
	if err := p.BeginDocument(layout.DocumentMeta{Title: "T"}); err != nil {
		t.Fatal(err)
	}
	if err := p.BeginDocument(layout.DocumentMeta{}); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second begin: %v", err)
	}
	p.SetFont("Body", layout.WeightBold, 10)
	if w := p.MeasureText("abc"); w != 6 {
		t.Fatalf("measure = %g", w)
	}
	p.Cell(20, 6, "x", layout.AlignCenter, layout.AdvanceRight)
	tb := p.Result().Pages[0].Texts[0]
	if tb.Weight != layout.WeightBold || tb.FontSize != 10 || tb.Align != layout.AlignCenter || tb.Font != "Body" {
		t.Fatalf("unexpected cell %+v", tb)
	}
	if p.Result().Meta.Title != "T" {
		t.Fatal("meta not kept")
	}
}

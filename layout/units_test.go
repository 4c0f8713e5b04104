package layout

import (
	"math"
	"testing"
)

func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 9, 14.4, 72, 144, 1000}
	for _, pt := range samples {
		back := Length{Value: pt, Unit: UnitPT}.ToMM() * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt->mm->pt drift: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
	for _, mm := range samples {
		back := Length{Value: mm, Unit: UnitMM}.ToPT() * PtToMm
		if diff := math.Abs(back - mm); diff > 1e-9 {
			t.Fatalf("mm->pt->mm drift: in=%gmm back=%g diff=%g", mm, back, diff)
		}
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		mm   float64
		unit Unit
	}{
		{"15mm", 15, UnitMM},
		{" 1.5CM ", 15, UnitCM},
		{"1in", 25.4, UnitIN},
		{"10pt", 10 * PtToMm, UnitPT},
		{"43.8003111111111", 43.8003111111111, UnitNone},
	}
	for _, c := range cases {
		l, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", c.in, err)
		}
		if l.Unit != c.unit {
			t.Fatalf("ParseLength(%q) unit = %v, want %v", c.in, l.Unit, c.unit)
		}
		if diff := math.Abs(l.ToMM() - c.mm); diff > 1e-9 {
			t.Fatalf("ParseLength(%q) = %gmm, want %gmm", c.in, l.ToMM(), c.mm)
		}
	}
	for _, bad := range []string{"", "mm", "abc", "-3mm"} {
		if _, err := ParseLength(bad); err == nil {
			t.Fatalf("ParseLength(%q) expected error", bad)
		}
	}
	if got := ParseRawLengthStr("oops"); !got.IsZero() {
		t.Fatalf("ParseRawLengthStr(oops) = %v, want zero", got)
	}
}

func TestLineHeightResolve(t *testing.T) {
	lh, err := ParseLineHeight("1.2x")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := lh.ResolveMM(12), 12*1.2*PtToMm; math.Abs(got-want) > 1e-9 {
		t.Fatalf("1.2x at 12pt = %g, want %g", got, want)
	}

	lh, err = ParseLineHeight("18pt")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := lh.ResolveMM(12), 18*PtToMm; math.Abs(got-want) > 1e-9 {
		t.Fatalf("18pt = %g, want %g", got, want)
	}

	lh, err = ParseLineHeight("6mm")
	if err != nil {
		t.Fatal(err)
	}
	if got := lh.ResolveMM(9); math.Abs(got-6) > 1e-9 {
		t.Fatalf("6mm = %g", got)
	}

	if _, err := ParseLineHeight("0x"); err == nil {
		t.Fatal("zero factor should fail")
	}
}

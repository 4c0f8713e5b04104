package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// perRune measures every rune as one unit, so widths are character counts.
var perRune = MeasureFunc(func(s string) float64 { return float64(utf8.RuneCountInString(s)) })

func TestWrapGreedy(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15, perRune)
	want := []string{"the quick brown", "fox jumps over", "the lazy dog"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, l := range lines {
		if l.Text != want[i] {
			t.Fatalf("line %d = %q, want %q", i, l.Text, want[i])
		}
		if l.Width != float64(len(want[i])) {
			t.Fatalf("line %d width = %g", i, l.Width)
		}
	}
}

func TestWrapInvariants(t *testing.T) {
	inputs := []string{
		"  leading and   trailing   whitespace\tand\ttabs  ",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh iiiiiiiii",
		"supercalifragilisticexpialidocious is long",
		strings.Repeat("word ", 40),
	}
	for _, in := range inputs {
		for _, limit := range []float64{1, 5, 8, 12, 30} {
			lines := Wrap(in, limit, perRune)
			var words []string
			for _, l := range lines {
				if l.Text == "" {
					t.Fatalf("empty fragment for %q at %g", in, limit)
				}
				if l.Width > limit && len(l.Words) != 1 {
					t.Fatalf("fragment %q (%g) exceeds %g with %d words", l.Text, l.Width, limit, len(l.Words))
				}
				if l.Text != strings.Join(l.Words, " ") {
					t.Fatalf("text %q does not match words %v", l.Text, l.Words)
				}
				words = append(words, l.Words...)
			}
			if got, want := strings.Join(words, " "), strings.Join(strings.Fields(in), " "); got != want {
				t.Fatalf("rejoined %q, want %q", got, want)
			}
		}
	}
}

func TestWrapEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if lines := Wrap(in, 10, perRune); len(lines) != 0 {
			t.Fatalf("Wrap(%q) = %+v, want none", in, lines)
		}
	}
}

func TestWrapOverwideWordStandsAlone(t *testing.T) {
	token := strings.Repeat("x", 200)
	lines := Wrap("before "+token+" after", 50, perRune)
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[1].Text != token || !lines[1].Overflows(50) {
		t.Fatalf("middle line should be the lone overflowing token: %+v", lines[1])
	}
	if lines[0].Overflows(50) || lines[2].Overflows(50) {
		t.Fatal("neighbours must not overflow")
	}
}

func TestWrapExactFit(t *testing.T) {
	lines := Wrap("abc def", 7, perRune)
	if len(lines) != 1 || lines[0].Text != "abc def" {
		t.Fatalf("exact fit should stay on one line: %+v", lines)
	}
	lines = Wrap("abc defg", 7, perRune)
	if len(lines) != 2 {
		t.Fatalf("one over should wrap: %+v", lines)
	}
}

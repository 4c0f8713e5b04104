// Package sanitize maps typographic and mathematical symbols onto ASCII-safe
// text and provides the write-time fallback that forces strings into the
// narrow character set a page backend can draw.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// translations is applied in order. Every replacement is plain ASCII so that
// running Text twice never finds anything new to replace.
var translations = [][2]string{
	{"’", "'"},   // right single quote
	{"‘", "'"},   // left single quote
	{"‚", "'"},   // low single quote
	{"”", `"`},   // right double quote
	{"“", `"`},   // left double quote
	{"„", `"`},   // low double quote
	{"′", "'"},   // prime
	{"″", `"`},   // double prime
	{"—", "-"},   // em dash
	{"–", "-"},   // en dash
	{"‒", "-"},   // figure dash
	{"−", "-"},   // minus sign
	{"…", "..."}, // ellipsis
	{"•", "*"},   // bullet
	{"\u00a0", " "}, // no-break space
	{"©", "(c)"},
	{"®", "(R)"},
	{"™", "(TM)"},
	{"°", " degrees"},
	{"±", "+/-"},
	{"×", "x"},
	{"÷", "/"},
	{"≤", "<="},
	{"≥", ">="},
	{"≠", "!="},
	{"≈", "~"},
	{"∞", "infinity"},
	{"∑", "sum"},
	{"∏", "product"},
	{"∆", "delta"},
	{"∂", "d"},
	{"√", "sqrt"},
	{"∫", "integral"},
	{"∴", "therefore"},
	{"∵", "because"},
	{"∼", "~"},
	{"≅", "~="},
	{"≡", "==="},
	{"⊂", "subset of"},
	{"⊃", "superset of"},
	{"⊆", "subset or equal"},
	{"⊇", "superset or equal"},
	{"⊕", "(+)"},
	{"⊗", "(x)"},
	{"⊥", "_|_"},
	{"‖", "||"},
	{"∠", "angle"},
	{"∧", "and"},
	{"∨", "or"},
	{"¬", "not"},
	{"∃", "exists"},
	{"∀", "for all"},
	{"∈", "in"},
	{"∉", "not in"},
	{"∋", "contains"},
	{"∌", "does not contain"},
	{"∩", "intersection"},
	{"∪", "union"},
	{"∅", "empty set"},
	{"∇", "nabla"},
	{"∎", "QED"},
}

var replacer = newReplacer()

func newReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(translations)*2)
	for _, t := range translations {
		pairs = append(pairs, t[0], t[1])
	}
	return strings.NewReplacer(pairs...)
}

// Text normalizes s to NFC and replaces every symbol of the translation table
// with its ASCII equivalent. Characters outside the table are left alone; the
// charset fallback in ToCharset deals with whatever remains unrepresentable.
//
// A replacement can expose a new composition (an ASCII base followed by a
// combining mark), so normalization and replacement repeat until the text is
// stable. A round that changes the text either replaces a symbol or composes
// two runes into one.
func Text(s string) string {
	if s == "" {
		return s
	}
	out := norm.NFC.String(s)
	for {
		next := norm.NFC.String(replacer.Replace(out))
		if next == out {
			return out
		}
		out = next
	}
}

// Translations returns a copy of the translation table as (symbol, ascii) pairs.
func Translations() [][2]string {
	out := make([][2]string, len(translations))
	copy(out, translations)
	return out
}

package layout

import "strings"

// LineFragment is one wrapped physical line.
type LineFragment struct {
	Text  string
	Words []string
	// Width is the summed width of the words and the single spaces between
	// them.
	Width float64
}

// Wrap splits text on whitespace and packs words greedily into lines no
// wider than maxWidth. A word that alone exceeds maxWidth is placed on its
// own line and never broken. Empty or blank input yields no lines.
//
// Joining the fragments with single spaces gives back the
// whitespace-collapsed input.
func Wrap(text string, maxWidth float64, m Measurer) []LineFragment {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	space := m.MeasureText(" ")

	var (
		out   []LineFragment
		cur   []string
		width float64
	)
	for _, word := range words {
		ww := m.MeasureText(word)
		if len(cur) == 0 {
			cur, width = []string{word}, ww
			continue
		}
		if width+space+ww <= maxWidth {
			cur = append(cur, word)
			width += space + ww
			continue
		}
		out = append(out, LineFragment{Text: strings.Join(cur, " "), Words: cur, Width: width})
		cur, width = []string{word}, ww
	}
	return append(out, LineFragment{Text: strings.Join(cur, " "), Words: cur, Width: width})
}

// Overflows reports whether the fragment is wider than maxWidth. Only a
// single-word fragment can overflow.
func (f LineFragment) Overflows(maxWidth float64) bool {
	return f.Width > maxWidth
}

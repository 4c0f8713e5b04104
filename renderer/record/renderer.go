// Package recordrenderer is a layout.Writer with fixed-pitch metrics. It
// serializes the page description as JSON instead of PDF, which makes
// layouts reproducible across machines and fonts.
package recordrenderer

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

// DefaultCharWidth is the width of one rune at 9pt, in mm.
const DefaultCharWidth = 1.8

// Writer measures every rune as CharWidth scaled by font size relative to 9pt.
// Bold text is BoldFactor wider.
type Writer struct {
	*renderer.Paged
	CharWidth  float64
	BoldFactor float64
}

var _ layout.Writer = (*Writer)(nil)

// New creates a recording writer for pages of the given geometry.
func New(spec layout.PageSpec) *Writer {
	w := &Writer{CharWidth: DefaultCharWidth, BoldFactor: 1}
	w.Paged = renderer.NewPaged(spec, w)
	return w
}

// TextWidth implements renderer.Metrics.
func (w *Writer) TextWidth(f renderer.Font, s string) float64 {
	width := float64(utf8.RuneCountInString(s)) * w.CharWidth
	if f.Size > 0 {
		width *= f.Size / layout.DefaultBodySize
	}
	if f.Weight == layout.WeightBold && w.BoldFactor > 0 {
		width *= w.BoldFactor
	}
	return width
}

// Finalize writes the page description as indented JSON.
func (w *Writer) Finalize(out io.Writer) error {
	if err := layout.WriteDebugJSON(w.Result(), out); err != nil {
		return fmt.Errorf("write page dump: %w", err)
	}
	return nil
}

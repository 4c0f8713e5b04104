package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

// cellPadding is the horizontal inset of text inside a cell, in mm.
const cellPadding = 1.0

// FontSources names the regular and bold font files of a family. Sources
// are "builtin:<name>" or paths relative to Options.BaseDir. Without a bold
// file the regular face is emboldened.
type FontSources struct {
	Regular string
	Bold    string
}

// DefaultFontSources are the built-in Go fonts.
var DefaultFontSources = FontSources{Regular: "builtin:regular", Bold: "builtin:bold"}

// Options configures the canvas backend.
type Options struct {
	BaseDir string
	// Fonts maps theme family names to their files. Unknown families use
	// DefaultFontSources.
	Fonts map[string]FontSources
	Color color.Color
}

// Writer measures text with tdewolff/canvas font faces and writes PDF via
// its pdf renderer. Pagination is done by the embedded renderer.Paged.
type Writer struct {
	*renderer.Paged
	opts Options

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
	fontErr  error
}

var (
	_ layout.Writer     = (*Writer)(nil)
	_ renderer.Renderer = (*Writer)(nil)
)

// New creates a canvas writer for pages of the given geometry.
func New(spec layout.PageSpec, opts Options) *Writer {
	if opts.Color == nil {
		opts.Color = canvas.Black
	}
	w := &Writer{opts: opts, families: map[string]*canvas.FontFamily{}}
	w.Paged = renderer.NewPaged(spec, w)
	return w
}

// TextWidth implements renderer.Metrics.
func (w *Writer) TextWidth(f renderer.Font, s string) float64 {
	if s == "" {
		return 0
	}
	face, err := w.face(f)
	if err != nil {
		return 0
	}
	return face.TextWidth(s)
}

// Finalize renders the collected pages to PDF and writes them to out.
func (w *Writer) Finalize(out io.Writer) error {
	data, err := w.Render(w.Result())
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Render renders a page description into PDF bytes.
func (w *Writer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("no pages to render")
	}
	if err := w.fontError(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // origin at the top-left like the layout

		for _, tb := range page.Texts {
			if err := w.drawTextBox(ctx, tb); err != nil {
				return nil, err
			}
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)
}

// drawTextBox draws one cell. The baseline sits at the vertical middle of
// the cell plus 0.3 of the font size.
func (w *Writer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	face, err := w.face(renderer.Font{Family: tb.Font, Weight: tb.Weight, Size: tb.FontSize})
	if err != nil {
		return err
	}

	var (
		align   canvas.TextAlign
		anchorX float64
	)
	switch tb.Align {
	case layout.AlignCenter:
		align, anchorX = canvas.Center, tb.X+tb.Width/2
	case layout.AlignRight:
		align, anchorX = canvas.Right, tb.X+tb.Width-cellPadding
	default:
		align, anchorX = canvas.Left, tb.X+cellPadding
	}
	baseline := tb.Y + tb.Height/2 + 0.3*tb.FontSize*layout.PtToMm
	ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, tb.Content, align))
	return nil
}

func (w *Writer) face(f renderer.Font) (*canvas.FontFace, error) {
	family, err := w.family(f.Family)
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if f.Weight == layout.WeightBold {
		style = canvas.FontBold
	}
	size := f.Size
	if size <= 0 {
		size = layout.DefaultBodySize
	}
	return family.Face(size, w.opts.Color, style, canvas.FontNormal), nil
}

// family loads a font family once. A family whose files cannot be loaded
// falls back to the built-in fonts; the load error is kept and returned by
// Render.
func (w *Writer) family(name string) (*canvas.FontFamily, error) {
	w.fontMu.Lock()
	defer w.fontMu.Unlock()

	if fam, ok := w.families[name]; ok {
		return fam, nil
	}
	src, ok := w.opts.Fonts[name]
	if !ok {
		src = DefaultFontSources
	}
	fam, err := w.loadFamily(name, src)
	if err != nil {
		layout.Logger().Warn("font family unavailable, using built-in fonts", "family", name, "err", err)
		if w.fontErr == nil {
			w.fontErr = err
		}
		if fam, err = w.loadFamily(name, DefaultFontSources); err != nil {
			return nil, err
		}
	}
	w.families[name] = fam
	return fam, nil
}

func (w *Writer) loadFamily(name string, src FontSources) (*canvas.FontFamily, error) {
	if src.Regular == "" {
		return nil, fmt.Errorf("font family %s: no regular font", name)
	}
	fam := canvas.NewFontFamily(name)
	for _, f := range []struct {
		src   string
		style canvas.FontStyle
	}{{src.Regular, canvas.FontRegular}, {src.Bold, canvas.FontBold}} {
		if f.src == "" {
			continue
		}
		data, err := fonts.Load(f.src, w.opts.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("font family %s: %w", name, err)
		}
		if err := fam.LoadFont(data, 0, f.style); err != nil {
			return nil, fmt.Errorf("font family %s: load %s: %w", name, f.src, err)
		}
	}
	return fam, nil
}

func (w *Writer) fontError() error {
	w.fontMu.Lock()
	defer w.fontMu.Unlock()
	return w.fontErr
}
